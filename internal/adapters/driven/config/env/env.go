// Package env reads LOGMAIL_* environment overrides, optionally seeded from
// .env files, and applies them over file-based settings.
package env

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// Prefix is prepended to every variable name, e.g. LOGMAIL_SMTP_HOST.
const Prefix = "LOGMAIL"

// Overrides holds settings taken from the environment.
// Zero values mean the variable was not set.
type Overrides struct {
	From    string   `envconfig:"FROM"`
	To      []string `envconfig:"TO"`
	Subject string   `envconfig:"SUBJECT"`

	SMTPHost       string `envconfig:"SMTP_HOST"`
	SMTPPort       int    `envconfig:"SMTP_PORT"`
	SMTPUsername   string `envconfig:"SMTP_USERNAME"`
	SMTPPassword   string `envconfig:"SMTP_PASSWORD"`
	SMTPEncryption string `envconfig:"SMTP_ENCRYPTION"`

	DataDir string   `envconfig:"DATA_DIR"`
	Readers []string `envconfig:"READERS"`
}

// LoadDotEnv loads each existing file into the process environment.
// Missing files are skipped; variables already set are never replaced.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", path, err)
		}
	}
	return nil
}

// Load decodes LOGMAIL_* variables.
func Load() (*Overrides, error) {
	var o Overrides
	if err := envconfig.Process(Prefix, &o); err != nil {
		return nil, fmt.Errorf("loading environment: %w", err)
	}
	return &o, nil
}

// Apply copies every set override into settings.
func (o *Overrides) Apply(settings *domain.Settings) {
	if o == nil || settings == nil {
		return
	}

	setString(&settings.Recipient.From, o.From)
	setString(&settings.Recipient.Subject, o.Subject)
	if to := trimAll(o.To); len(to) > 0 {
		settings.Recipient.To = to
	}

	setString(&settings.SMTP.Host, o.SMTPHost)
	if o.SMTPPort != 0 {
		settings.SMTP.Port = o.SMTPPort
	}
	setString(&settings.SMTP.Username, o.SMTPUsername)
	setString(&settings.SMTP.Password, o.SMTPPassword)
	setString(&settings.SMTP.Encryption, strings.ToLower(o.SMTPEncryption))

	setString(&settings.DataDir, o.DataDir)
	if readers := trimAll(o.Readers); len(readers) > 0 {
		settings.Readers = readers
	}
}

func setString(dst *string, val string) {
	if val != "" {
		*dst = val
	}
}

func trimAll(items []string) []string {
	var out []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

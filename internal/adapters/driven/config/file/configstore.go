package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/logmail/internal/adapters/driven/config"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// ConfigFile is the name of the configuration file inside the config directory.
const ConfigFile = "config.toml"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// document is the layout of config.toml. Pointer fields tell an unset key
// from an empty one; list fields take an array or a comma-separated string.
type document struct {
	Mail    mailTable    `toml:"mail,omitempty"`
	SMTP    smtpTable    `toml:"smtp,omitempty"`
	Storage storageTable `toml:"storage,omitempty"`
	Readers readersTable `toml:"readers,omitempty"`
}

type mailTable struct {
	From    *string `toml:"from,omitempty"`
	To      any     `toml:"to,omitempty"`
	Subject *string `toml:"subject,omitempty"`
}

type smtpTable struct {
	Host       *string `toml:"host,omitempty"`
	Port       *int64  `toml:"port,omitempty"`
	Username   *string `toml:"username,omitempty"`
	Password   *string `toml:"password,omitempty"`
	Encryption *string `toml:"encryption,omitempty"`
}

type storageTable struct {
	DataDir *string `toml:"data_dir,omitempty"`
}

type readersTable struct {
	Order any `toml:"order,omitempty"`
}

// field returns the document field behind a dot-notation key.
// The result is a **string, **int64 or *any.
func (d *document) field(key string) any {
	switch key {
	case "mail.from":
		return &d.Mail.From
	case "mail.to":
		return &d.Mail.To
	case "mail.subject":
		return &d.Mail.Subject
	case "smtp.host":
		return &d.SMTP.Host
	case "smtp.port":
		return &d.SMTP.Port
	case "smtp.username":
		return &d.SMTP.Username
	case "smtp.password":
		return &d.SMTP.Password
	case "smtp.encryption":
		return &d.SMTP.Encryption
	case "storage.data_dir":
		return &d.Storage.DataDir
	case "readers.order":
		return &d.Readers.Order
	}
	return nil
}

// set stores a value already accepted by config.Check.
func (d *document) set(key string, value any) {
	switch f := d.field(key).(type) {
	case **string:
		s := value.(string)
		*f = &s
	case **int64:
		var n int64
		switch v := value.(type) {
		case int:
			n = int64(v)
		case int64:
			n = v
		}
		*f = &n
	case *any:
		*f = value
	}
}

// values flattens the keys present in the document.
func (d *document) values() config.Values {
	out := make(config.Values)
	for _, key := range config.Keys() {
		switch f := d.field(key).(type) {
		case **string:
			if *f != nil {
				out[key] = **f
			}
		case **int64:
			if *f != nil {
				out[key] = **f
			}
		case *any:
			if *f != nil {
				out[key] = *f
			}
		}
	}
	return out
}

// ConfigStore keeps settings in a TOML file within the logmail config
// directory. Only the mail, smtp, storage and readers keys are kept; other
// entries in the file are ignored and dropped on the next save.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	doc      document
	values   config.Values
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.logmail/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".logmail")
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, ConfigFile),
		values:   make(config.Values),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.values[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.String(key)
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.Int(key)
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values.StringSlice(key)
}

// Set stores a configuration value and persists immediately.
// Unknown keys and values of the wrong kind are rejected with
// domain.ErrInvalidInput and leave the file untouched.
func (s *ConfigStore) Set(key string, value any) error {
	if err := config.Check(key, value); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.doc
	next.set(key, value)
	if err := s.save(&next); err != nil {
		return err
	}

	s.doc = next
	s.values = next.values()
	return nil
}

// save writes doc to the TOML file (caller must hold lock).
func (s *ConfigStore) save(doc *document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ConfigFile, err)
	}

	// The file may hold the SMTP password.
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file. A missing file is an empty
// configuration.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var doc document
	data, err := os.ReadFile(s.filePath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return err
	default:
		if err := toml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("parse %s: %w", s.filePath, err)
		}
	}

	// List fields decode into any, so their shape is only known here.
	values := doc.values()
	for key, v := range values {
		if err := config.Check(key, v); err != nil {
			return fmt.Errorf("parse %s: %w", s.filePath, err)
		}
	}

	s.doc = doc
	s.values = values
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

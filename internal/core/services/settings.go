package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyMailFrom       = "mail.from"
	KeyMailTo         = "mail.to"
	KeyMailSubject    = "mail.subject"
	KeySMTPHost       = "smtp.host"
	KeySMTPPort       = "smtp.port"
	KeySMTPUsername   = "smtp.username"
	KeySMTPPassword   = "smtp.password"
	KeySMTPEncryption = "smtp.encryption"
	KeyDataDir        = "storage.data_dir"
	KeyReadersOrder   = "readers.order"
)

var settingKeys = []string{
	KeyMailFrom, KeyMailTo, KeyMailSubject,
	KeySMTPHost, KeySMTPPort, KeySMTPUsername, KeySMTPPassword, KeySMTPEncryption,
	KeyDataDir, KeyReadersOrder,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	to := s.configStore.GetStringSlice(KeyMailTo)
	if len(to) == 0 {
		to = defaults.Recipient.To
	}

	settings := &domain.Settings{
		Recipient: domain.Recipient{
			From:    s.getString(KeyMailFrom, defaults.Recipient.From),
			To:      to,
			Subject: s.getString(KeyMailSubject, defaults.Recipient.Subject),
		},
		SMTP: domain.SMTPSettings{
			Host:       s.getString(KeySMTPHost, defaults.SMTP.Host),
			Port:       s.getInt(KeySMTPPort, defaults.SMTP.Port),
			Username:   s.configStore.GetString(KeySMTPUsername),
			Password:   s.configStore.GetString(KeySMTPPassword),
			Encryption: s.getEncryption(defaults.SMTP.Encryption),
		},
		DataDir: s.configStore.GetString(KeyDataDir),
		Readers: s.configStore.GetStringSlice(KeyReadersOrder),
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}

	values := []struct {
		key   string
		value any
	}{
		{KeyMailFrom, settings.Recipient.From},
		{KeyMailTo, settings.Recipient.To},
		{KeyMailSubject, settings.Recipient.Subject},
		{KeySMTPHost, settings.SMTP.Host},
		{KeySMTPPort, settings.SMTP.Port},
		{KeySMTPUsername, settings.SMTP.Username},
		{KeySMTPEncryption, settings.SMTP.Encryption},
		{KeyDataDir, settings.DataDir},
		{KeyReadersOrder, settings.Readers},
	}
	for _, v := range values {
		if err := s.configStore.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save %s: %w", v.key, err)
		}
	}

	// Only persist the password when one is set.
	if settings.SMTP.Password != "" {
		if err := s.configStore.Set(KeySMTPPassword, settings.SMTP.Password); err != nil {
			return fmt.Errorf("save %s: %w", KeySMTPPassword, err)
		}
	}
	return nil
}

// SetValue parses and stores a single setting.
func (s *SettingsService) SetValue(key, value string) error {
	var parsed any
	switch key {
	case KeySMTPPort:
		port, err := strconv.Atoi(value)
		if err != nil || port < 1 || port > 65535 {
			return fmt.Errorf("%w: %s must be a port number, got %q", domain.ErrInvalidInput, key, value)
		}
		parsed = port
	case KeySMTPEncryption:
		if !domain.ValidEncryption(value) {
			return fmt.Errorf("%w: %s must be one of %s, %s, %s", domain.ErrInvalidInput, key,
				domain.EncryptionNone, domain.EncryptionSTARTTLS, domain.EncryptionSSLTLS)
		}
		parsed = value
	case KeyMailTo, KeyReadersOrder:
		parsed = splitList(value)
	case KeyMailFrom, KeyMailSubject, KeySMTPHost, KeySMTPUsername, KeySMTPPassword, KeyDataDir:
		parsed = value
	default:
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns the config keys accepted by SetValue.
func (s *SettingsService) Keys() []string {
	return SettingKeys()
}

// SettingKeys returns the config keys accepted by SetValue.
func SettingKeys() []string {
	out := make([]string, len(settingKeys))
	copy(out, settingKeys)
	return out
}

// Validate checks settings for values the dispatcher cannot use.
func (s *SettingsService) Validate(settings *domain.Settings) error {
	if settings == nil {
		return domain.ErrInvalidInput
	}
	if settings.Recipient.From == "" {
		return fmt.Errorf("%w: sender address is empty", domain.ErrInvalidInput)
	}
	if len(settings.Recipient.To) == 0 {
		return fmt.Errorf("%w: no recipients configured", domain.ErrInvalidInput)
	}
	if settings.SMTP.Host == "" {
		return fmt.Errorf("%w: SMTP host is empty", domain.ErrInvalidInput)
	}
	if settings.SMTP.Port < 1 || settings.SMTP.Port > 65535 {
		return fmt.Errorf("%w: SMTP port %d out of range", domain.ErrInvalidInput, settings.SMTP.Port)
	}
	if !domain.ValidEncryption(settings.SMTP.Encryption) {
		return fmt.Errorf("%w: unknown encryption %q", domain.ErrInvalidInput, settings.SMTP.Encryption)
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.Settings {
	return domain.DefaultSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getEncryption(defaultVal string) string {
	val := strings.ToLower(s.configStore.GetString(KeySMTPEncryption))
	if !domain.ValidEncryption(val) {
		return defaultVal
	}
	return val
}

// splitList splits a comma-separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

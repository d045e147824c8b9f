package driving

import "github.com/custodia-labs/logmail/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get resolves settings from the config store over built-in defaults.
	Get() (*domain.Settings, error)

	// Save persists settings to the config store.
	Save(settings *domain.Settings) error

	// SetValue parses and stores a single setting by config key.
	// Returns ErrInvalidInput for unknown keys or malformed values.
	SetValue(key, value string) error

	// Keys returns the config keys accepted by SetValue.
	Keys() []string

	// Validate checks settings for values the dispatcher cannot use.
	Validate(settings *domain.Settings) error

	// GetDefaults returns default settings.
	GetDefaults() domain.Settings
}

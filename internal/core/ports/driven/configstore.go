package driven

// ConfigStore provides access to application configuration.
// Keys use dot notation matching the nesting of the config file
// (e.g., "smtp.host" for host under [smtp]).
type ConfigStore interface {
	// Get retrieves a configuration value by key.
	// Returns the value and a boolean indicating if the key exists.
	Get(key string) (any, bool)

	// GetString returns "" if the key doesn't exist or isn't a string.
	GetString(key string) string

	// GetInt returns 0 if the key doesn't exist or isn't an integer.
	GetInt(key string) int

	// GetStringSlice accepts a TOML array or a comma-separated string.
	// Returns nil if the key doesn't exist.
	GetStringSlice(key string) []string

	// Set stores a configuration value and persists immediately.
	Set(key string, value any) error

	// Load reads configuration from storage.
	Load() error

	// Path returns the configuration file path.
	Path() string
}

// Package cli provides the cobra command tree for logmail.
package cli

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/logmail/internal/adapters/driven/config/env"
	"github.com/custodia-labs/logmail/internal/adapters/driven/config/file"
	"github.com/custodia-labs/logmail/internal/adapters/driven/notify/console"
	"github.com/custodia-labs/logmail/internal/adapters/driven/notify/smtp"
	"github.com/custodia-labs/logmail/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
	"github.com/custodia-labs/logmail/internal/core/services"
	"github.com/custodia-labs/logmail/internal/logger"
	"github.com/custodia-labs/logmail/internal/readers"
	"github.com/custodia-labs/logmail/internal/sources"
	"github.com/custodia-labs/logmail/internal/sources/filesystem"
)

// version is set at build time via ldflags.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// buildOptions carries per-command overrides into service construction.
type buildOptions struct {
	dryRun   bool
	to       []string
	subject  string
	interval time.Duration
}

// serviceSet holds the driving ports a command runs against.
type serviceSet struct {
	sender  driving.LogSender
	logs    driving.LogService
	watcher driving.WatchService
	close   func() error
}

// Close releases the resources opened for the command.
func (s *serviceSet) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}

// Replaced in tests.
var (
	newSettingsService = openSettingsService
	loadSettings       = resolveSettings
	newServices        = buildServices
)

var rootCmd = &cobra.Command{
	Use:   "logmail",
	Short: "Send log files as email",
	Long: `logmail reads a log file, works out how it is encoded and emails its
message body to a fixed recipient.

Files are decoded by the first matching reader (html, xml, json, eml, then
plain text). Log bodies imported into the log database can be sent later
with a sqlite:// origin.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default ~/.logmail)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Log database directory (default ~/.logmail/data)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// openSettingsService opens the TOML config store in the configured directory.
func openSettingsService() (driving.SettingsService, string, error) {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, "", err
	}
	return services.NewSettingsService(store), filepath.Dir(store.Path()), nil
}

// resolveSettings layers defaults, the config file, .env files,
// LOGMAIL_* variables and global flags, in that order.
func resolveSettings() (*domain.Settings, error) {
	settingsService, dir, err := newSettingsService()
	if err != nil {
		return nil, err
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, err
	}

	if err := env.LoadDotEnv(".env", filepath.Join(dir, ".env")); err != nil {
		return nil, err
	}
	overrides, err := env.Load()
	if err != nil {
		return nil, err
	}
	overrides.Apply(settings)

	if dataDir != "" {
		settings.DataDir = dataDir
	}

	if err := settingsService.Validate(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// buildServices wires adapters into the core services for one command.
func buildServices(opts buildOptions) (*serviceSet, error) {
	settings, err := loadSettings()
	if err != nil {
		return nil, err
	}

	// Validate the order once so a bad name fails before any work is done.
	if _, err := readers.NewRegistry(settings.Readers...); err != nil {
		return nil, err
	}
	newRegistry := func() driven.ReaderRegistry {
		registry, _ := readers.NewRegistry(settings.Readers...)
		return registry
	}

	recipient := settings.Recipient
	if len(opts.to) > 0 {
		recipient.To = opts.to
	}
	if opts.subject != "" {
		recipient.Subject = opts.subject
	}

	var dispatcher driven.NotificationDispatcher
	if opts.dryRun {
		dispatcher = console.New(rootCmd.OutOrStdout())
	} else {
		dispatcher = smtp.New(smtp.ConfigFromSettings(settings.SMTP))
	}

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return nil, err
	}
	logger.Debug("using log database %s", store.Path())

	factory := sources.NewFactory()
	sender := services.NewSenderService(factory, newRegistry, dispatcher, recipient, store.DeliveryStore())

	return &serviceSet{
		sender: sender,
		logs:   services.NewLogService(factory, newRegistry, store.LogStore(), store.DeliveryStore()),
		watcher: services.NewWatchService(sender, func(path string) (driven.SourceWatcher, error) {
			return filesystem.NewWatcher(path, opts.interval), nil
		}),
		close: store.Close,
	}, nil
}

// withServices builds the services, runs fn and releases them.
func withServices(opts buildOptions, fn func(*serviceSet) error) error {
	set, err := newServices(opts)
	if err != nil {
		return userError(err)
	}
	defer func() {
		if cerr := set.Close(); cerr != nil {
			logger.Warn("closing services: %v", cerr)
		}
	}()

	if err := fn(set); err != nil {
		return userError(err)
	}
	return nil
}

var errNotConfigured = errors.New("service not configured")

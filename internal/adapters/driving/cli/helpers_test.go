package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/logmail/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
	"github.com/custodia-labs/logmail/internal/core/services"
)

type stubSender struct {
	status  string
	err     error
	origins []string
}

func (s *stubSender) SendLog(_ context.Context, origin string) (string, error) {
	s.origins = append(s.origins, origin)
	if s.err != nil {
		return "", s.err
	}
	return s.status, nil
}

type stubLogService struct {
	imported   *domain.LogRecord
	records    []domain.LogRecord
	deliveries []domain.Delivery
	err        error
	lastLimit  int
}

func (s *stubLogService) Import(_ context.Context, path string) (*domain.LogRecord, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.imported != nil {
		return s.imported, nil
	}
	return &domain.LogRecord{ID: "log-1", Origin: path}, nil
}

func (s *stubLogService) List(_ context.Context, limit int) ([]domain.LogRecord, error) {
	s.lastLimit = limit
	return s.records, s.err
}

func (s *stubLogService) History(_ context.Context, limit int) ([]domain.Delivery, error) {
	s.lastLimit = limit
	return s.deliveries, s.err
}

type watchEvent struct {
	status string
	err    error
}

type stubWatchService struct {
	events []watchEvent
	err    error
	origin string
}

func (s *stubWatchService) Watch(_ context.Context, origin string, report func(string, error)) error {
	s.origin = origin
	for _, e := range s.events {
		report(e.status, e.err)
	}
	return s.err
}

// testEnv captures what commands asked the service builder for.
type testEnv struct {
	opts   []buildOptions
	closed int
	config *memory.ConfigStore
}

// setupTestServices swaps the service builders for stubs and restores
// them, along with flag values, when the test ends.
func setupTestServices(t *testing.T, set *serviceSet) *testEnv {
	t.Helper()

	env := &testEnv{config: memory.NewConfigStore()}
	settingsService := services.NewSettingsService(env.config)

	origNewServices := newServices
	origLoadSettings := loadSettings
	origNewSettings := newSettingsService

	newServices = func(opts buildOptions) (*serviceSet, error) {
		env.opts = append(env.opts, opts)
		copied := *set
		copied.close = func() error {
			env.closed++
			return nil
		}
		return &copied, nil
	}
	loadSettings = func() (*domain.Settings, error) {
		return settingsService.Get()
	}
	newSettingsService = func() (driving.SettingsService, string, error) {
		return settingsService, t.TempDir(), nil
	}

	t.Cleanup(func() {
		newServices = origNewServices
		loadSettings = origLoadSettings
		newSettingsService = origNewSettings
		resetFlags()
	})
	return env
}

// resetFlags returns flag-bound variables to their defaults.
func resetFlags() {
	verbose = false
	configDir = ""
	dataDir = ""
	sendDryRun = false
	sendTo = nil
	sendSubject = ""
	logListLimit = 20
	historyLimit = 20
	watchDryRun = false
	watchInterval = defaultWatchInterval
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

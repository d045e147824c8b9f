package driving

import (
	"context"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// LogSender is the "send log as email" operation.
type LogSender interface {
	// SendLog retrieves the body from the origin descriptor, dispatches it
	// and returns a human-readable status ("Sent email with body: ...").
	SendLog(ctx context.Context, origin string) (string, error)
}

// LogService manages the log database and delivery history.
type LogService interface {
	// Import extracts the body of a file and stores it as a log record.
	Import(ctx context.Context, path string) (*domain.LogRecord, error)

	// List returns up to limit log records, newest first.
	List(ctx context.Context, limit int) ([]domain.LogRecord, error)

	// History returns up to limit deliveries, newest first.
	History(ctx context.Context, limit int) ([]domain.Delivery, error)
}

// WatchService resends a log every time it changes.
type WatchService interface {
	// Watch blocks until ctx is cancelled, sending the log on each change.
	// Each send outcome is passed to report.
	Watch(ctx context.Context, origin string, report func(status string, err error)) error
}

package driven

import (
	"context"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// LogStore persists pre-extracted log bodies.
type LogStore interface {
	// SaveLog stores a log record, assigning an ID and creation time
	// when they are empty.
	SaveLog(ctx context.Context, record *domain.LogRecord) error

	// GetLog retrieves a log record by ID.
	// Returns ErrNotFound when no record has the ID.
	GetLog(ctx context.Context, id string) (*domain.LogRecord, error)

	// LatestLog returns the most recently created log record.
	// Returns ErrNotFound when the store is empty.
	LatestLog(ctx context.Context) (*domain.LogRecord, error)

	// ListLogs returns up to limit records, newest first.
	// A limit of zero or less returns all records.
	ListLogs(ctx context.Context, limit int) ([]domain.LogRecord, error)
}

// DeliveryStore persists delivery history.
type DeliveryStore interface {
	// RecordDelivery stores one dispatch attempt.
	// An empty ID is replaced with a generated one.
	RecordDelivery(ctx context.Context, delivery domain.Delivery) error

	// ListDeliveries returns up to limit deliveries, newest first.
	// A limit of zero or less returns all deliveries.
	ListDeliveries(ctx context.Context, limit int) ([]domain.Delivery, error)
}

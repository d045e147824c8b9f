package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
)

// Ensure LogService implements the interface.
var _ driving.LogService = (*LogService)(nil)

// LogService imports files into the log database and reads history.
type LogService struct {
	sources       driven.SourceFactory
	newRegistry   RegistryBuilder
	logStore      driven.LogStore
	deliveryStore driven.DeliveryStore
}

// NewLogService creates a new log service.
// Either store may be nil; the operations that need it then return
// domain.ErrNotFound wrapped with the missing store name.
func NewLogService(
	sources driven.SourceFactory,
	newRegistry RegistryBuilder,
	logStore driven.LogStore,
	deliveryStore driven.DeliveryStore,
) *LogService {
	return &LogService{
		sources:       sources,
		newRegistry:   newRegistry,
		logStore:      logStore,
		deliveryStore: deliveryStore,
	}
}

// Import extracts the body of the file at path and stores it.
// The stored body is final; sending it later skips the readers.
func (s *LogService) Import(ctx context.Context, path string) (*domain.LogRecord, error) {
	if s.logStore == nil {
		return nil, fmt.Errorf("log store: %w", domain.ErrNotFound)
	}

	origin, err := domain.ParseOrigin(path)
	if err != nil {
		return nil, err
	}
	if origin.Kind != domain.OriginFile {
		return nil, fmt.Errorf("%w: only files can be imported", domain.ErrInvalidInput)
	}

	source, err := s.sources.Create(origin)
	if err != nil {
		return nil, err
	}

	body, err := NewExtractingRetrievalService(source, s.newRegistry()).GetMessageBody(ctx)
	if err != nil {
		return nil, err
	}

	record := &domain.LogRecord{
		Origin: origin.String(),
		Body:   body,
	}
	if err := s.logStore.SaveLog(ctx, record); err != nil {
		return nil, fmt.Errorf("saving log: %w", err)
	}
	return record, nil
}

// List returns up to limit log records, newest first.
func (s *LogService) List(ctx context.Context, limit int) ([]domain.LogRecord, error) {
	if s.logStore == nil {
		return nil, fmt.Errorf("log store: %w", domain.ErrNotFound)
	}
	return s.logStore.ListLogs(ctx, limit)
}

// History returns up to limit deliveries, newest first.
func (s *LogService) History(ctx context.Context, limit int) ([]domain.Delivery, error) {
	if s.deliveryStore == nil {
		return nil, fmt.Errorf("delivery store: %w", domain.ErrNotFound)
	}
	return s.deliveryStore.ListDeliveries(ctx, limit)
}

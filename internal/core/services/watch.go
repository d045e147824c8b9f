package services

import (
	"context"
	"fmt"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
	"github.com/custodia-labs/logmail/internal/logger"
)

// Ensure WatchService implements the interface.
var _ driving.WatchService = (*WatchService)(nil)

// WatcherBuilder creates a watcher for a file path.
type WatcherBuilder func(path string) (driven.SourceWatcher, error)

// WatchService sends a log file every time it changes.
// Every change triggers an independent SendLog call.
type WatchService struct {
	sender     driving.LogSender
	newWatcher WatcherBuilder
}

// NewWatchService creates a watch service.
func NewWatchService(sender driving.LogSender, newWatcher WatcherBuilder) *WatchService {
	return &WatchService{
		sender:     sender,
		newWatcher: newWatcher,
	}
}

// Watch blocks until ctx is cancelled or the watcher stops.
// Only file origins can be watched.
func (s *WatchService) Watch(ctx context.Context, descriptor string, report func(status string, err error)) error {
	origin, err := domain.ParseOrigin(descriptor)
	if err != nil {
		return err
	}
	if origin.Kind != domain.OriginFile {
		return fmt.Errorf("%w: only files can be watched", domain.ErrInvalidInput)
	}

	watcher, err := s.newWatcher(origin.Location)
	if err != nil {
		return err
	}
	defer watcher.Close()

	changes, err := watcher.Watch(ctx)
	if err != nil {
		return err
	}

	logger.Info("watching %s", origin.Location)
	for {
		select {
		case <-ctx.Done():
			return nil
		case change, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Debug("change detected: %s", change.Path)
			status, err := s.sender.SendLog(ctx, change.Path)
			if report != nil {
				report(status, err)
			}
		}
	}
}

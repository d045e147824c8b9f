package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Ensure LogStore implements the interface.
var _ driven.LogStore = (*LogStore)(nil)

// LogStore is an in-memory implementation of driven.LogStore.
type LogStore struct {
	mu      sync.RWMutex
	records map[string]domain.LogRecord
	order   []string
}

// NewLogStore creates a new in-memory log store.
func NewLogStore() *LogStore {
	return &LogStore{
		records: make(map[string]domain.LogRecord),
	}
}

// SaveLog stores or replaces a log record.
func (s *LogStore) SaveLog(_ context.Context, record *domain.LogRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.records[record.ID]; !exists {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = *record
	return nil
}

// GetLog retrieves a log record by ID.
func (s *LogStore) GetLog(_ context.Context, id string) (*domain.LogRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// LatestLog returns the most recently created log record.
func (s *LogStore) LatestLog(ctx context.Context) (*domain.LogRecord, error) {
	records, _ := s.ListLogs(ctx, 1)
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return &records[0], nil
}

// ListLogs returns up to limit records, newest first.
// Records with equal creation times are ordered by insertion, latest first.
func (s *LogStore) ListLogs(_ context.Context, limit int) ([]domain.LogRecord, error) {
	s.mu.RLock()
	records := make([]domain.LogRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		records = append(records, s.records[s.order[i]])
	}
	s.mu.RUnlock()

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

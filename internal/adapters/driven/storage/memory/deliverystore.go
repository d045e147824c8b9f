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

// Ensure DeliveryStore implements the interface.
var _ driven.DeliveryStore = (*DeliveryStore)(nil)

// DeliveryStore is an in-memory implementation of driven.DeliveryStore.
type DeliveryStore struct {
	mu         sync.RWMutex
	deliveries []domain.Delivery
}

// NewDeliveryStore creates a new in-memory delivery store.
func NewDeliveryStore() *DeliveryStore {
	return &DeliveryStore{}
}

// RecordDelivery appends a dispatch attempt.
func (s *DeliveryStore) RecordDelivery(_ context.Context, delivery domain.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	if delivery.CreatedAt.IsZero() {
		delivery.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.deliveries {
		if existing.ID == delivery.ID {
			return domain.ErrInvalidInput
		}
	}
	s.deliveries = append(s.deliveries, delivery)
	return nil
}

// ListDeliveries returns up to limit deliveries, newest first.
func (s *DeliveryStore) ListDeliveries(_ context.Context, limit int) ([]domain.Delivery, error) {
	s.mu.RLock()
	out := make([]domain.Delivery, 0, len(s.deliveries))
	for i := len(s.deliveries) - 1; i >= 0; i-- {
		out = append(out, s.deliveries[i])
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

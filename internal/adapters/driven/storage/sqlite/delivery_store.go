package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// deliveryStore implements driven.DeliveryStore.
type deliveryStore struct {
	store *Store
}

var _ driven.DeliveryStore = (*deliveryStore)(nil)

// RecordDelivery stores one dispatch attempt.
func (s *deliveryStore) RecordDelivery(ctx context.Context, delivery domain.Delivery) error {
	if delivery.ID == "" {
		delivery.ID = uuid.New().String()
	}
	if delivery.CreatedAt.IsZero() {
		delivery.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO deliveries (id, origin, dispatcher, recipients, subject, status, error, body_preview, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, delivery.ID, delivery.Origin, delivery.Dispatcher, delivery.To, delivery.Subject,
		string(delivery.Status), nullString(delivery.Error), delivery.BodyPreview, delivery.CreatedAt)
	if err != nil {
		return fmt.Errorf("recording delivery: %w", err)
	}
	return nil
}

// ListDeliveries returns up to limit deliveries, newest first.
func (s *deliveryStore) ListDeliveries(ctx context.Context, limit int) ([]domain.Delivery, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, origin, dispatcher, recipients, subject, status, error, body_preview, created_at
		FROM deliveries
		ORDER BY created_at DESC, rowid DESC`+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("querying deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []domain.Delivery //nolint:prealloc // size unknown from query
	for rows.Next() {
		var d domain.Delivery
		var status string
		var errText sql.NullString
		var createdAt sql.NullTime
		if err := rows.Scan(&d.ID, &d.Origin, &d.Dispatcher, &d.To, &d.Subject,
			&status, &errText, &d.BodyPreview, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning delivery: %w", err)
		}
		d.Status = domain.DeliveryStatus(status)
		d.Error = errText.String
		if createdAt.Valid {
			d.CreatedAt = createdAt.Time
		}
		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating deliveries: %w", err)
	}
	return deliveries, nil
}

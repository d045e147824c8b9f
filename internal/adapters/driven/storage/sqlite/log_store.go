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

// logStore implements driven.LogStore.
type logStore struct {
	store *Store
}

var _ driven.LogStore = (*logStore)(nil)

// SaveLog stores or replaces a log record.
func (s *logStore) SaveLog(ctx context.Context, record *domain.LogRecord) error {
	if record == nil {
		return domain.ErrInvalidInput
	}
	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO logs (id, origin, body, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			origin = excluded.origin,
			body = excluded.body
	`, record.ID, record.Origin, record.Body, record.CreatedAt)
	if err != nil {
		return fmt.Errorf("saving log: %w", err)
	}
	return nil
}

// GetLog retrieves a log record by ID.
func (s *logStore) GetLog(ctx context.Context, id string) (*domain.LogRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, origin, body, created_at FROM logs WHERE id = ?
	`, id)
	return scanLogRecord(row)
}

// LatestLog returns the most recently created log record.
func (s *logStore) LatestLog(ctx context.Context) (*domain.LogRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, origin, body, created_at FROM logs
		ORDER BY created_at DESC, rowid DESC LIMIT 1
	`)
	return scanLogRecord(row)
}

// ListLogs returns up to limit records, newest first.
func (s *logStore) ListLogs(ctx context.Context, limit int) ([]domain.LogRecord, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, origin, body, created_at FROM logs
		ORDER BY created_at DESC, rowid DESC`+limitClause(limit))
	if err != nil {
		return nil, fmt.Errorf("querying logs: %w", err)
	}
	defer rows.Close()

	var records []domain.LogRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanLogRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating logs: %w", err)
	}
	return records, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLogRecord(row rowScanner) (*domain.LogRecord, error) {
	var record domain.LogRecord
	var createdAt sql.NullTime
	if err := row.Scan(&record.ID, &record.Origin, &record.Body, &createdAt); err != nil {
		if isNoRows(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning log: %w", err)
	}
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time
	}
	return &record, nil
}

// Package database provides a content source backed by the log database.
// Records there were extracted when imported, so their bodies bypass the
// reader registry.
package database

import (
	"context"
	"fmt"

	"github.com/custodia-labs/logmail/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Store is the part of a database handle the source needs.
type Store interface {
	LogStore() driven.LogStore
	Close() error
}

// Opener opens the database at path without modifying it.
type Opener func(path string) (Store, error)

// OpenSQLite opens a SQLite log database read-only.
func OpenSQLite(path string) (Store, error) {
	store, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, err
	}
	return store, nil
}

// Source reads one log record from a database.
type Source struct {
	path     string
	recordID string
	open     Opener
}

// New creates a source for the record with recordID in the SQLite database
// at path. An empty recordID selects the most recent record.
func New(path, recordID string) *Source {
	return NewWithOpener(path, recordID, OpenSQLite)
}

// NewWithOpener creates a source that opens the database with open.
func NewWithOpener(path, recordID string, open Opener) *Source {
	return &Source{
		path:     path,
		recordID: recordID,
		open:     open,
	}
}

// Origin returns the descriptor this source reads from.
func (s *Source) Origin() string {
	return domain.Origin{Kind: domain.OriginDatabase, Location: s.path, RecordID: s.recordID}.String()
}

// Fetch opens the database, reads the record and closes the database again.
// Missing databases, tables and records all report ErrSourceUnavailable.
func (s *Source) Fetch(ctx context.Context) (domain.RawContent, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawContent{}, err
	}

	store, err := s.open(s.path)
	if err != nil {
		return domain.RawContent{}, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer store.Close()

	logs := store.LogStore()

	var record *domain.LogRecord
	if s.recordID != "" {
		record, err = logs.GetLog(ctx, s.recordID)
	} else {
		record, err = logs.LatestLog(ctx)
	}
	if err != nil {
		return domain.RawContent{}, fmt.Errorf("%w: %s: %v", domain.ErrSourceUnavailable, s.Origin(), err)
	}

	return domain.RawContent{
		Origin:   s.Origin(),
		MIMEType: "text/plain",
		Content:  []byte(record.Body),
		Metadata: map[string]any{
			"log_id":     record.ID,
			"log_origin": record.Origin,
			"created_at": record.CreatedAt,
		},
	}, nil
}

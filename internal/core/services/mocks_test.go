package services

import (
	"context"
	"errors"
	"sync"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// stubReader is a FormatReader with fixed answers that counts calls.
type stubReader struct {
	name      string
	canHandle func(domain.RawContent) bool
	body      string
	err       error

	canHandleCalls int
	extractCalls   int
}

func (r *stubReader) Name() string { return r.name }

func (r *stubReader) CanHandle(content domain.RawContent) bool {
	r.canHandleCalls++
	return r.canHandle(content)
}

func (r *stubReader) ExtractBody(_ domain.RawContent) (string, error) {
	r.extractCalls++
	return r.body, r.err
}

func always(domain.RawContent) bool { return true }
func never(domain.RawContent) bool  { return false }

// stubSource returns fixed content and counts fetches.
type stubSource struct {
	content domain.RawContent
	err     error
	fetches int
}

func (s *stubSource) Fetch(_ context.Context) (domain.RawContent, error) {
	s.fetches++
	if s.err != nil {
		return domain.RawContent{}, s.err
	}
	return s.content, nil
}

// stubFactory hands out one source per origin kind.
type stubFactory struct {
	sources map[domain.OriginKind]*stubSource
	origins []domain.Origin
	err     error
}

func (f *stubFactory) Create(origin domain.Origin) (driven.ContentSource, error) {
	f.origins = append(f.origins, origin)
	if f.err != nil {
		return nil, f.err
	}
	src, ok := f.sources[origin.Kind]
	if !ok {
		return nil, domain.ErrUnsupportedType
	}
	return src, nil
}

// stubDispatcher records every body it is asked to send.
type stubDispatcher struct {
	mu     sync.Mutex
	bodies []string
	to     []domain.Recipient
	err    error
}

func (d *stubDispatcher) Name() string { return "stub" }

func (d *stubDispatcher) Send(_ context.Context, body string, to domain.Recipient) (domain.DeliveryStatus, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.bodies = append(d.bodies, body)
	d.to = append(d.to, to)
	if d.err != nil {
		return domain.DeliveryFailed, d.err
	}
	return domain.DeliverySent, nil
}

func (d *stubDispatcher) sent() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]string(nil), d.bodies...)
}

// stubDeliveryStore keeps deliveries in a slice.
type stubDeliveryStore struct {
	deliveries []domain.Delivery
	err        error
}

func (s *stubDeliveryStore) RecordDelivery(_ context.Context, d domain.Delivery) error {
	if s.err != nil {
		return s.err
	}
	s.deliveries = append(s.deliveries, d)
	return nil
}

func (s *stubDeliveryStore) ListDeliveries(_ context.Context, _ int) ([]domain.Delivery, error) {
	return s.deliveries, nil
}

// stubLogStore keeps log records in a slice.
type stubLogStore struct {
	records []domain.LogRecord
	err     error
}

func (s *stubLogStore) SaveLog(_ context.Context, record *domain.LogRecord) error {
	if s.err != nil {
		return s.err
	}
	if record.ID == "" {
		record.ID = "log-1"
	}
	s.records = append(s.records, *record)
	return nil
}

func (s *stubLogStore) GetLog(_ context.Context, id string) (*domain.LogRecord, error) {
	for i := range s.records {
		if s.records[i].ID == id {
			return &s.records[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubLogStore) LatestLog(_ context.Context) (*domain.LogRecord, error) {
	if len(s.records) == 0 {
		return nil, domain.ErrNotFound
	}
	return &s.records[len(s.records)-1], nil
}

func (s *stubLogStore) ListLogs(_ context.Context, _ int) ([]domain.LogRecord, error) {
	return s.records, nil
}

var errBoom = errors.New("boom")

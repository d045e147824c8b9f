package services

import (
	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/logger"
)

// Ensure ReaderRegistry implements the interface.
var _ driven.ReaderRegistry = (*ReaderRegistry)(nil)

// ReaderRegistry is an ordered collection of format readers.
// Insertion order is priority order; the registry never reorders or
// deduplicates. A registry is built per retrieval and is not safe for
// concurrent Register calls.
type ReaderRegistry struct {
	readers []driven.FormatReader
}

// NewReaderRegistry creates a registry holding readers in the given order.
func NewReaderRegistry(readers ...driven.FormatReader) *ReaderRegistry {
	r := &ReaderRegistry{}
	for _, reader := range readers {
		r.Register(reader)
	}
	return r
}

// Register appends a reader to the end of the priority order.
func (r *ReaderRegistry) Register(reader driven.FormatReader) {
	r.readers = append(r.readers, reader)
}

// Resolve returns the body produced by the first reader whose CanHandle
// accepts the content.
//
// When no reader matches, Resolve returns an empty body instead of failing.
// This cannot happen once a universal fallback such as the plain text reader
// is registered last; it only guards registries built without one.
//
// A reader that accepts content and then fails to extract from it has
// broken its own contract. The failure is logged and the content is
// returned unchanged as plain text.
func (r *ReaderRegistry) Resolve(content domain.RawContent) string {
	for _, reader := range r.readers {
		if !reader.CanHandle(content) {
			continue
		}

		body, err := reader.ExtractBody(content)
		if err != nil {
			logger.Warn("reader %s accepted %s but failed to extract: %v", reader.Name(), content.Origin, err)
			return content.String()
		}

		logger.Debug("reader %s matched %s", reader.Name(), content.Origin)
		return body
	}

	logger.Debug("no reader matched %s", content.Origin)
	return ""
}

// Names returns the registered reader names in priority order.
func (r *ReaderRegistry) Names() []string {
	names := make([]string, 0, len(r.readers))
	for _, reader := range r.readers {
		names = append(names, reader.Name())
	}
	return names
}

// Len returns the number of registered readers.
func (r *ReaderRegistry) Len() int {
	return len(r.readers)
}

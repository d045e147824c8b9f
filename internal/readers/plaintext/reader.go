package plaintext

import (
	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Name is the registry name of the plain text reader.
const Name = "plaintext"

// Ensure Reader implements the interface.
var _ driven.FormatReader = (*Reader)(nil)

// Reader is the universal fallback: it accepts any content and returns it
// unchanged. It must be registered last so other readers get first refusal.
type Reader struct{}

// New creates a new plain text reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader identifier.
func (r *Reader) Name() string {
	return Name
}

// CanHandle always returns true.
func (r *Reader) CanHandle(_ domain.RawContent) bool {
	return true
}

// ExtractBody returns the content as text.
func (r *Reader) ExtractBody(content domain.RawContent) (string, error) {
	return content.String(), nil
}

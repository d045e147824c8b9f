package driven

import "github.com/custodia-labs/logmail/internal/core/domain"

// FormatReader classifies and decodes one content encoding.
// Readers are stateless and safe for concurrent use.
type FormatReader interface {
	// Name returns the reader identifier (e.g., "xml").
	Name() string

	// CanHandle reports whether the reader can interpret the content.
	// It must be free of side effects and must never fail; inability
	// to parse is reported as false.
	CanHandle(content domain.RawContent) bool

	// ExtractBody returns the message body held in the content.
	// It is only called after CanHandle returned true for the same content.
	// Errors wrap domain.ErrParse.
	ExtractBody(content domain.RawContent) (string, error)
}

package driven

import "github.com/custodia-labs/logmail/internal/core/domain"

// ReaderRegistry resolves raw content to a message body.
// It keeps readers in registration order, which is also priority order.
type ReaderRegistry interface {
	// Register appends a reader to the end of the priority order.
	// Duplicates are allowed.
	Register(reader FormatReader)

	// Resolve returns the body extracted by the first reader that can
	// handle the content. It returns an empty body when no reader matches.
	Resolve(content domain.RawContent) string

	// Names returns the registered reader names in priority order.
	Names() []string
}

package driven

import "github.com/custodia-labs/logmail/internal/core/domain"

// SourceFactory creates content sources from parsed origins.
type SourceFactory interface {
	// Create returns a ContentSource for the origin.
	// Returns ErrUnsupportedType if the origin kind is unknown.
	Create(origin domain.Origin) (ContentSource, error)
}

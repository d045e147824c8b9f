package driven

import (
	"context"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// ContentSource produces raw content from one origin.
// A source is constructed with its origin and never mutated afterwards.
type ContentSource interface {
	// Fetch reads the content. Checking that the origin exists and reading
	// it are one operation; failures wrap domain.ErrSourceUnavailable.
	Fetch(ctx context.Context) (domain.RawContent, error)
}

// ContentChange is emitted by a SourceWatcher when watched content changes.
type ContentChange struct {
	// Path is the changed file.
	Path string
}

// SourceWatcher reports changes to a watched origin.
type SourceWatcher interface {
	// Watch starts watching and returns a channel of changes.
	// The channel is closed when ctx is cancelled or the watcher is closed.
	Watch(ctx context.Context) (<-chan ContentChange, error)

	// Close releases watcher resources.
	Close() error
}

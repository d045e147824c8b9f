package sources

import (
	"fmt"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/sources/database"
	"github.com/custodia-labs/logmail/internal/sources/filesystem"
)

// Ensure Factory implements the interface.
var _ driven.SourceFactory = (*Factory)(nil)

// Factory creates content sources by origin kind.
type Factory struct{}

// NewFactory creates a new source factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create returns a source bound to the origin.
func (f *Factory) Create(origin domain.Origin) (driven.ContentSource, error) {
	switch origin.Kind {
	case domain.OriginFile:
		return filesystem.New(origin.Location), nil
	case domain.OriginDatabase:
		return database.New(origin.Location, origin.RecordID), nil
	default:
		return nil, fmt.Errorf("%w: origin kind %q", domain.ErrUnsupportedType, origin.Kind)
	}
}

package readers

import (
	"fmt"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/services"
	"github.com/custodia-labs/logmail/internal/readers/eml"
	"github.com/custodia-labs/logmail/internal/readers/html"
	"github.com/custodia-labs/logmail/internal/readers/json"
	"github.com/custodia-labs/logmail/internal/readers/plaintext"
	"github.com/custodia-labs/logmail/internal/readers/xml"
)

// DefaultOrder is the priority order used when no order is configured.
var DefaultOrder = []string{html.Name, xml.Name, json.Name, eml.Name, plaintext.Name}

var constructors = map[string]func() driven.FormatReader{
	plaintext.Name: func() driven.FormatReader { return plaintext.New() },
	xml.Name:       func() driven.FormatReader { return xml.New() },
	json.Name:      func() driven.FormatReader { return json.New() },
	eml.Name:       func() driven.FormatReader { return eml.New() },
	html.Name:      func() driven.FormatReader { return html.New() },
}

// NewDefaultRegistry returns a registry with all readers in DefaultOrder.
func NewDefaultRegistry() driven.ReaderRegistry {
	registry, _ := NewRegistry(DefaultOrder...)
	return registry
}

// NewRegistry returns a registry with the named readers in the given order.
// The plain text reader is appended when the list does not name it, so the
// registry always resolves. An empty list yields the default order.
func NewRegistry(names ...string) (driven.ReaderRegistry, error) {
	if len(names) == 0 {
		names = DefaultOrder
	}

	registry := services.NewReaderRegistry()
	hasFallback := false
	for _, name := range names {
		newReader, ok := constructors[name]
		if !ok {
			return nil, fmt.Errorf("%w: reader %q", domain.ErrUnsupportedType, name)
		}
		registry.Register(newReader())
		hasFallback = hasFallback || name == plaintext.Name
	}

	if !hasFallback {
		registry.Register(plaintext.New())
	}
	return registry, nil
}

// Available returns the names of all known readers in default order.
func Available() []string {
	out := make([]string, len(DefaultOrder))
	copy(out, DefaultOrder)
	return out
}

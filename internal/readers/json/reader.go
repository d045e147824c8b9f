package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Name is the registry name of the JSON reader.
const Name = "json"

// BodyPath is the key path of the message body inside the top-level object.
var BodyPath = []string{"email", "body"}

// Ensure Reader implements the interface.
var _ driven.FormatReader = (*Reader)(nil)

// Reader handles JSON log documents such as {"email":{"body":"..."}}.
type Reader struct{}

// New creates a new JSON reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader identifier.
func (r *Reader) Name() string {
	return Name
}

// CanHandle reports whether the content is a single JSON object.
// Arrays and scalars are refused so plain numbers fall through to text.
func (r *Reader) CanHandle(content domain.RawContent) bool {
	trimmed := bytes.TrimSpace(content.Content)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Valid(trimmed)
}

// ExtractBody returns the string at email.body. Missing keys or a non-string
// value yield an empty body.
func (r *Reader) ExtractBody(content domain.RawContent) (string, error) {
	var doc map[string]any
	if err := json.Unmarshal(content.Content, &doc); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	var current any = doc
	for _, key := range BodyPath {
		obj, ok := current.(map[string]any)
		if !ok {
			return "", nil
		}
		if current, ok = obj[key]; !ok {
			return "", nil
		}
	}

	body, _ := current.(string)
	return body, nil
}

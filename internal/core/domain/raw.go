package domain

// RawContent represents opaque bytes fetched by a content source.
// Its structure is unknown until a FormatReader classifies it.
// It is the source's output before extraction and must not be mutated.
type RawContent struct {
	// Origin is where the content came from (file path, database location).
	Origin string

	// MIMEType is the content type when the source can tell (e.g., "application/xml").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains source-specific key-value pairs.
	Metadata map[string]any
}

// String returns the content as text.
func (r RawContent) String() string {
	return string(r.Content)
}

// IsEmpty reports whether the content holds no bytes.
func (r RawContent) IsEmpty() bool {
	return len(r.Content) == 0
}

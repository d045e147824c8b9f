package html

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Name is the registry name of the HTML reader.
const Name = "html"

// Ensure Reader implements the interface.
var _ driven.FormatReader = (*Reader)(nil)

// Reader handles HTML documents, typically report pages written by cron jobs.
type Reader struct{}

// New creates a new HTML reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader identifier.
func (r *Reader) Name() string {
	return Name
}

var (
	utf8BOM     = []byte{0xEF, 0xBB, 0xBF}
	htmlOpeners = [][]byte{[]byte("<!doctype html"), []byte("<html")}
)

// CanHandle reports whether the first tag of the content opens an HTML
// document. Fragments are left to the other readers.
func (r *Reader) CanHandle(content domain.RawContent) bool {
	head := bytes.TrimPrefix(content.Content, utf8BOM)
	head = bytes.TrimLeft(head, " \t\r\n")
	if len(head) > 64 {
		head = head[:64]
	}
	head = bytes.ToLower(head)

	for _, opener := range htmlOpeners {
		if bytes.HasPrefix(head, opener) {
			return true
		}
	}
	return false
}

// ExtractBody returns the visible text of <body> with whitespace collapsed.
func (r *Reader) ExtractBody(content domain.RawContent) (string, error) {
	text, err := Text(content.String())
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return text, nil
}

// Text parses markup and returns the body text with scripts and styles
// removed and runs of whitespace collapsed to a single space.
func Text(markup string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, template").Remove()

	var parts []string
	doc.Find("body").Contents().Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			parts = append(parts, t)
		}
	})

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " "), nil
}

package xml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message/charset"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Name is the registry name of the XML reader.
const Name = "xml"

// BodyPath is the element path of the message body, relative to the
// document root. Only the first match in document order is used.
var BodyPath = []string{"email", "body"}

// Ensure Reader implements the interface.
var _ driven.FormatReader = (*Reader)(nil)

// Reader handles XML log documents such as
// <data><email><body>...</body></email></data>.
type Reader struct{}

// New creates a new XML reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader identifier.
func (r *Reader) Name() string {
	return Name
}

// CanHandle reports whether the content is a well-formed XML document.
func (r *Reader) CanHandle(content domain.RawContent) bool {
	_, err := parse(content.Content)
	return err == nil
}

// ExtractBody returns the text of root/email/body.
// A document without that path yields an empty body.
func (r *Reader) ExtractBody(content domain.RawContent) (string, error) {
	root, err := parse(content.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrParse, err)
	}
	return root.findText(BodyPath...), nil
}

// element is a parsed XML element holding only what body lookup needs.
type element struct {
	name     string
	text     strings.Builder
	children []*element
}

// find returns the first descendant reached through path, trying every
// candidate at each level in document order.
func (e *element) find(path ...string) *element {
	if len(path) == 0 {
		return e
	}
	for _, child := range e.children {
		if child.name != path[0] {
			continue
		}
		if found := child.find(path[1:]...); found != nil {
			return found
		}
	}
	return nil
}

// findText returns the character data directly inside the element at path.
func (e *element) findText(path ...string) string {
	found := e.find(path...)
	if found == nil {
		return ""
	}
	return found.text.String()
}

var (
	errNoRoot        = errors.New("no root element")
	errMultipleRoots = errors.New("junk after document element")
	errTextOutside   = errors.New("text outside the root element")
)

// parse builds an element tree. The document must have exactly one root
// element and no character data outside it.
func parse(data []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true
	dec.CharsetReader = charset.Reader

	var (
		root  *element
		stack []*element
	)

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name.Local}
			if len(stack) == 0 {
				if root != nil {
					return nil, errMultipleRoots
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				if len(bytes.TrimSpace(t)) > 0 {
					return nil, errTextOutside
				}
				continue
			}
			stack[len(stack)-1].text.Write(t)
		}
	}

	if root == nil {
		return nil, errNoRoot
	}
	return root, nil
}

package eml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/emersion/go-message"
	_ "github.com/emersion/go-message/charset" // register non-UTF-8 charsets
	"github.com/emersion/go-message/mail"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/readers/html"
)

// Name is the registry name of the EML reader.
const Name = "eml"

// Ensure Reader implements the interface.
var _ driven.FormatReader = (*Reader)(nil)

// Reader handles RFC 5322 messages, such as mail spooled to disk by MTAs
// or saved from a mail client.
type Reader struct{}

// New creates a new EML reader.
func New() *Reader {
	return &Reader{}
}

// Name returns the reader identifier.
func (r *Reader) Name() string {
	return Name
}

// CanHandle reports whether the content parses as a message with a From
// header and at least one of Subject or Date.
func (r *Reader) CanHandle(content domain.RawContent) bool {
	mr, err := open(content.Content)
	if err != nil {
		return false
	}
	h := mr.Header
	if !h.Has("From") {
		return false
	}
	return h.Has("Subject") || h.Has("Date")
}

// ExtractBody returns the first text/plain part. When the message only
// carries HTML, the first HTML part is returned as text.
func (r *Reader) ExtractBody(content domain.RawContent) (string, error) {
	mr, err := open(content.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrParse, err)
	}

	var htmlBody string
	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if message.IsUnknownCharset(err) || message.IsUnknownEncoding(err) {
				continue
			}
			return "", fmt.Errorf("%w: reading part: %v", domain.ErrParse, err)
		}

		h, ok := part.Header.(*mail.InlineHeader)
		if !ok {
			continue
		}
		mediaType, _, err := h.ContentType()
		if err != nil || mediaType == "" {
			mediaType = "text/plain"
		}

		switch mediaType {
		case "text/plain":
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return "", fmt.Errorf("%w: reading body: %v", domain.ErrParse, err)
			}
			return strings.TrimRight(string(body), "\r\n"), nil
		case "text/html":
			if htmlBody != "" {
				continue
			}
			body, err := io.ReadAll(part.Body)
			if err != nil {
				return "", fmt.Errorf("%w: reading body: %v", domain.ErrParse, err)
			}
			if htmlBody, err = html.Text(string(body)); err != nil {
				return "", fmt.Errorf("%w: %v", domain.ErrParse, err)
			}
		}
	}

	return htmlBody, nil
}

// open parses the message headers. Unknown charsets are tolerated; the
// affected text is passed through undecoded.
func open(data []byte) (*mail.Reader, error) {
	mr, err := mail.CreateReader(bytes.NewReader(data))
	if err != nil && !message.IsUnknownCharset(err) {
		return nil, err
	}
	return mr, nil
}

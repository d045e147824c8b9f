package filesystem

import (
	"context"
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.ContentSource = (*Source)(nil)

// Source reads a single file from the local filesystem.
type Source struct {
	path string
}

// New creates a source for the file at path. A file:// prefix is accepted.
func New(path string) *Source {
	return &Source{path: ResolvePath(path)}
}

// Path returns the resolved file path.
func (s *Source) Path() string {
	return s.path
}

// Fetch reads the whole file.
//
// The existence and type checks are made on the open handle and the read
// comes from the same handle, so the file cannot be swapped between them.
// The open is non-blocking so a FIFO or device is rejected instead of
// waiting for a writer.
func (s *Source) Fetch(ctx context.Context) (domain.RawContent, error) {
	if err := ctx.Err(); err != nil {
		return domain.RawContent{}, err
	}

	f, err := os.OpenFile(s.path, os.O_RDONLY|syscall.O_NONBLOCK, 0)
	if err != nil {
		return domain.RawContent{}, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return domain.RawContent{}, fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	if !info.Mode().IsRegular() {
		return domain.RawContent{}, fmt.Errorf("%w: %s is not a regular file", domain.ErrSourceUnavailable, s.path)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return domain.RawContent{}, fmt.Errorf("%w: reading %s: %v", domain.ErrSourceUnavailable, s.path, err)
	}

	return domain.RawContent{
		Origin:   s.path,
		MIMEType: detectMIMEType(s.path),
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"mod_time": info.ModTime(),
		},
	}, nil
}

// ResolvePath converts a file URI to a local path.
// Handles file:// URIs and bare paths.
func ResolvePath(uri string) string {
	if strings.HasPrefix(uri, "file://") {
		return strings.TrimPrefix(uri, "file://")
	}
	return uri
}

// fallbackMIMETypes covers extensions common for logs that the platform
// MIME table may not know.
var fallbackMIMETypes = map[string]string{
	".log":  "text/plain",
	".out":  "text/plain",
	".err":  "text/plain",
	".eml":  "message/rfc822",
	".xml":  "application/xml",
	".json": "application/json",
}

// detectMIMEType guesses the content type from the file extension.
// Files without an extension are treated as text.
func detectMIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return "text/plain"
	}
	if t, ok := fallbackMIMETypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		mediaType, _, err := mime.ParseMediaType(t)
		if err == nil {
			return mediaType
		}
	}
	return "application/octet-stream"
}

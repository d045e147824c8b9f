package domain

import (
	"fmt"
	"net/url"
	"strings"
)

// OriginKind identifies the kind of place raw content is fetched from.
type OriginKind string

const (
	// OriginFile is a file on the local filesystem.
	OriginFile OriginKind = "file"

	// OriginDatabase is a record in the log database.
	OriginDatabase OriginKind = "database"
)

const (
	fileScheme   = "file://"
	sqliteScheme = "sqlite://"
)

// Origin is a parsed origin descriptor.
type Origin struct {
	// Kind selects the content source implementation.
	Kind OriginKind

	// Location is the file path or database path.
	Location string

	// RecordID names a single log record in a database origin.
	// Empty means the most recent record.
	RecordID string
}

// ParseOrigin parses an origin descriptor supplied by the user.
//
// Accepted forms:
//   - "sqlite://<path>[?log=<id>]" for a record in the log database
//   - "file://<path>" or a bare path for a file
func ParseOrigin(descriptor string) (Origin, error) {
	descriptor = strings.TrimSpace(descriptor)
	if descriptor == "" {
		return Origin{}, ErrMissingInput
	}

	if rest, ok := strings.CutPrefix(descriptor, sqliteScheme); ok {
		location, query, _ := strings.Cut(rest, "?")
		if location == "" {
			return Origin{}, fmt.Errorf("%w: database origin has no path", ErrInvalidInput)
		}
		values, err := url.ParseQuery(query)
		if err != nil {
			return Origin{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return Origin{
			Kind:     OriginDatabase,
			Location: location,
			RecordID: values.Get("log"),
		}, nil
	}

	location := strings.TrimPrefix(descriptor, fileScheme)
	if location == "" {
		return Origin{}, ErrMissingInput
	}
	return Origin{Kind: OriginFile, Location: location}, nil
}

// String renders the origin back into descriptor form.
func (o Origin) String() string {
	switch o.Kind {
	case OriginDatabase:
		s := sqliteScheme + o.Location
		if o.RecordID != "" {
			s += "?log=" + url.QueryEscape(o.RecordID)
		}
		return s
	default:
		return o.Location
	}
}

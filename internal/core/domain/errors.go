package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown origin kind or reader name.
	ErrUnsupportedType = errors.New("unsupported type")

	// Pipeline Errors.

	// ErrMissingInput indicates no origin descriptor was supplied.
	ErrMissingInput = errors.New("missing input")

	// ErrSourceUnavailable indicates the origin does not exist, is not a
	// regular artifact, or cannot be connected to.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrParse indicates a reader accepted content it then failed to parse.
	// The registry recovers from it by treating the content as plain text.
	ErrParse = errors.New("parse error")

	// ErrDeliveryUnavailable indicates the dispatcher cannot reach its transport endpoint.
	ErrDeliveryUnavailable = errors.New("delivery unavailable")
)

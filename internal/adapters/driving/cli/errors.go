package cli

import (
	"errors"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// User-facing messages for pipeline failures.
const (
	msgMissingInput        = "You must specify a file to send."
	msgSourceUnavailable   = "Couldn't find the specified file."
	msgDeliveryUnavailable = "Couldn't connect to the SMTP server."
)

// commandError carries the message shown to the user and keeps the
// underlying error reachable through errors.Is.
type commandError struct {
	message string
	cause   error
}

func (e *commandError) Error() string { return e.message }

func (e *commandError) Unwrap() error { return e.cause }

// userError replaces the text of known pipeline failures with a stable
// message. Other errors pass through unchanged.
func userError(err error) error {
	if err == nil {
		return nil
	}
	var ce *commandError
	if errors.As(err, &ce) {
		return err
	}

	message := userMessage(err)
	if message == err.Error() {
		return err
	}
	return &commandError{message: message, cause: err}
}

// userMessage maps an error to the text printed for it.
func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		return msgMissingInput
	case errors.Is(err, domain.ErrSourceUnavailable):
		return msgSourceUnavailable
	case errors.Is(err, domain.ErrDeliveryUnavailable):
		return msgDeliveryUnavailable
	default:
		return err.Error()
	}
}

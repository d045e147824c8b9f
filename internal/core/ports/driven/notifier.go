package driven

import (
	"context"

	"github.com/custodia-labs/logmail/internal/core/domain"
)

// NotificationDispatcher delivers a finished message body.
// Timeouts and cancellation are the implementation's concern.
type NotificationDispatcher interface {
	// Name returns the dispatcher identifier (e.g., "smtp").
	Name() string

	// Send delivers body to the recipient configuration.
	// Returns an error wrapping domain.ErrDeliveryUnavailable when the
	// transport endpoint cannot be resolved or connected to.
	Send(ctx context.Context, body string, to domain.Recipient) (domain.DeliveryStatus, error)
}

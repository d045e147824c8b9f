// Package console renders messages to a writer instead of sending them.
// It backs dry runs.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
)

// Name is the dispatcher identifier recorded in delivery history.
const Name = "console"

// Ensure Dispatcher implements the interface.
var _ driven.NotificationDispatcher = (*Dispatcher)(nil)

// Dispatcher writes each message to w.
type Dispatcher struct {
	mu sync.Mutex
	w  io.Writer
}

// New creates a console dispatcher writing to w.
func New(w io.Writer) *Dispatcher {
	return &Dispatcher{w: w}
}

// Name returns the dispatcher identifier.
func (d *Dispatcher) Name() string { return Name }

// Send writes the message headers and body.
func (d *Dispatcher) Send(ctx context.Context, body string, to domain.Recipient) (domain.DeliveryStatus, error) {
	if err := ctx.Err(); err != nil {
		return domain.DeliveryFailed, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	_, err := fmt.Fprintf(d.w, "From: %s\nTo: %s\nSubject: %s\n\n%s\n", to.From, to.ToList(), to.Subject, body)
	if err != nil {
		return domain.DeliveryFailed, fmt.Errorf("writing message: %w", err)
	}
	return domain.DeliveryDryRun, nil
}

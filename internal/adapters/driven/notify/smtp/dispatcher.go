// Package smtp delivers log bodies by email using the go-mail library.
package smtp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/logger"
)

// Name is the dispatcher identifier recorded in delivery history.
const Name = "smtp"

// DefaultTimeout bounds connecting to and talking with the server.
const DefaultTimeout = 30 * time.Second

// Ensure Dispatcher implements the interface.
var _ driven.NotificationDispatcher = (*Dispatcher)(nil)

// Config holds SMTP connection parameters.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	Encryption string
	Timeout    time.Duration
}

// ConfigFromSettings builds a Config from resolved settings.
func ConfigFromSettings(s domain.SMTPSettings) Config {
	return Config{
		Host:       s.Host,
		Port:       s.Port,
		Username:   s.Username,
		Password:   s.Password,
		Encryption: s.Encryption,
		Timeout:    DefaultTimeout,
	}
}

// Dispatcher sends messages through an SMTP server.
// Each Send opens and closes its own connection.
type Dispatcher struct {
	config Config
}

// New creates an SMTP dispatcher.
func New(config Config) *Dispatcher {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	return &Dispatcher{config: config}
}

// Name returns the dispatcher identifier.
func (d *Dispatcher) Name() string { return Name }

// Send delivers body to the recipient.
// A server that cannot be reached yields ErrDeliveryUnavailable.
func (d *Dispatcher) Send(ctx context.Context, body string, to domain.Recipient) (domain.DeliveryStatus, error) {
	msg, err := buildMessage(body, to)
	if err != nil {
		return domain.DeliveryFailed, err
	}

	client, err := mail.NewClient(d.config.Host, d.options()...)
	if err != nil {
		return domain.DeliveryFailed, fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return domain.DeliveryFailed, fmt.Errorf("%w: %s:%d: %v",
			domain.ErrDeliveryUnavailable, d.config.Host, d.config.Port, err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Debug("closing SMTP connection: %v", err)
		}
	}()

	if err := client.Send(msg); err != nil {
		return domain.DeliveryFailed, fmt.Errorf("sending message: %w", err)
	}

	logger.Debug("sent message to %s via %s:%d", to.ToList(), d.config.Host, d.config.Port)
	return domain.DeliverySent, nil
}

// options translates the config into go-mail client options.
// Authentication is only negotiated when a username is configured.
func (d *Dispatcher) options() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(d.config.Port),
		mail.WithTimeout(d.config.Timeout),
	}

	switch d.config.Encryption {
	case domain.EncryptionSSLTLS:
		opts = append(opts, mail.WithSSL())
	case domain.EncryptionSTARTTLS:
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
	default:
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if d.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(d.config.Username),
			mail.WithPassword(d.config.Password),
		)
	}
	return opts
}

var errNoRecipients = errors.New("no recipients")

// buildMessage renders the plain text message.
func buildMessage(body string, to domain.Recipient) (*mail.Msg, error) {
	if len(to.To) == 0 {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, errNoRecipients)
	}

	m := mail.NewMsg()
	if err := m.From(to.From); err != nil {
		return nil, fmt.Errorf("%w: invalid from address: %v", domain.ErrInvalidInput, err)
	}
	if err := m.To(to.To...); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %v", domain.ErrInvalidInput, err)
	}
	m.Subject(to.Subject)
	m.SetBodyString(mail.TypeTextPlain, body)
	return m, nil
}

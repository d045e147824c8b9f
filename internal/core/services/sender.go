package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/logmail/internal/core/domain"
	"github.com/custodia-labs/logmail/internal/core/ports/driven"
	"github.com/custodia-labs/logmail/internal/core/ports/driving"
	"github.com/custodia-labs/logmail/internal/logger"
)

// Ensure SenderService implements the interface.
var _ driving.LogSender = (*SenderService)(nil)

// StatusPrefix starts every successful send status.
const StatusPrefix = "Sent email with body: "

// RegistryBuilder creates a fresh reader registry for one retrieval.
type RegistryBuilder func() driven.ReaderRegistry

// SenderService wires a content source and reader registry into a
// retrieval service, dispatches the body and reports the outcome.
type SenderService struct {
	sources       driven.SourceFactory
	newRegistry   RegistryBuilder
	dispatcher    driven.NotificationDispatcher
	recipient     domain.Recipient
	deliveryStore driven.DeliveryStore // optional
}

// NewSenderService creates a sender service.
// deliveryStore may be nil, in which case deliveries are not recorded.
func NewSenderService(
	sources driven.SourceFactory,
	newRegistry RegistryBuilder,
	dispatcher driven.NotificationDispatcher,
	recipient domain.Recipient,
	deliveryStore driven.DeliveryStore,
) *SenderService {
	return &SenderService{
		sources:       sources,
		newRegistry:   newRegistry,
		dispatcher:    dispatcher,
		recipient:     recipient,
		deliveryStore: deliveryStore,
	}
}

// SendLog sends the log named by the origin descriptor.
// Each call builds its own source, registry and retrieval service.
func (s *SenderService) SendLog(ctx context.Context, descriptor string) (string, error) {
	origin, err := domain.ParseOrigin(descriptor)
	if err != nil {
		return "", err
	}

	retriever, err := s.retrieverFor(origin)
	if err != nil {
		return "", err
	}

	body, err := retriever.GetMessageBody(ctx)
	if err != nil {
		return "", err
	}
	logger.Debug("retrieved %d bytes from %s", len(body), origin)

	status, sendErr := s.dispatcher.Send(ctx, body, s.recipient)
	if sendErr != nil {
		status = domain.DeliveryFailed
	}
	s.record(ctx, origin, body, status, sendErr)

	if sendErr != nil {
		return "", sendErr
	}

	logger.Info("%s delivered %s to %s", s.dispatcher.Name(), origin, s.recipient.ToList())
	return StatusPrefix + body, nil
}

// retrieverFor picks the retrieval variant for the origin kind.
func (s *SenderService) retrieverFor(origin domain.Origin) (driving.MessageRetrievalService, error) {
	source, err := s.sources.Create(origin)
	if err != nil {
		return nil, err
	}

	switch origin.Kind {
	case domain.OriginDatabase:
		return NewPassthroughRetrievalService(source), nil
	case domain.OriginFile:
		return NewExtractingRetrievalService(source, s.newRegistry()), nil
	default:
		return nil, fmt.Errorf("%w: origin kind %q", domain.ErrUnsupportedType, origin.Kind)
	}
}

// record stores the delivery outcome when a delivery store is configured.
// Recording failures are logged and never fail the send.
func (s *SenderService) record(ctx context.Context, origin domain.Origin, body string, status domain.DeliveryStatus, sendErr error) {
	if s.deliveryStore == nil {
		return
	}

	delivery := domain.Delivery{
		Origin:      origin.String(),
		Dispatcher:  s.dispatcher.Name(),
		To:          s.recipient.ToList(),
		Subject:     s.recipient.Subject,
		Status:      status,
		BodyPreview: domain.PreviewBody(body),
		CreatedAt:   time.Now(),
	}
	if sendErr != nil {
		delivery.Error = sendErr.Error()
	}

	// The send already happened; a cancelled ctx must not lose its record.
	if err := s.deliveryStore.RecordDelivery(context.WithoutCancel(ctx), delivery); err != nil {
		logger.Error("failed to record delivery for %s: %v", origin, err)
	}
}

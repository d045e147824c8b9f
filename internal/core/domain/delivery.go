package domain

import "time"

// DeliveryStatus is the outcome reported by a notification dispatcher.
type DeliveryStatus string

const (
	// DeliverySent indicates the message was handed to the transport.
	DeliverySent DeliveryStatus = "sent"

	// DeliveryFailed indicates the transport rejected or never received the message.
	DeliveryFailed DeliveryStatus = "failed"

	// DeliveryDryRun indicates the message was rendered but not transmitted.
	DeliveryDryRun DeliveryStatus = "dry-run"
)

// bodyPreviewLen bounds the body excerpt kept in delivery history.
const bodyPreviewLen = 120

// Delivery records one dispatch attempt.
type Delivery struct {
	ID          string
	Origin      string
	Dispatcher  string
	To          string
	Subject     string
	Status      DeliveryStatus
	Error       string
	BodyPreview string
	CreatedAt   time.Time
}

// PreviewBody truncates a message body for storage in delivery history.
func PreviewBody(body string) string {
	runes := []rune(body)
	if len(runes) <= bodyPreviewLen {
		return body
	}
	return string(runes[:bodyPreviewLen]) + "..."
}

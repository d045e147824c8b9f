package driving

import "context"

// MessageRetrievalService produces a finished message body from one origin.
// Callers do not know whether the body was read from a file and decoded
// or read pre-extracted from a database.
type MessageRetrievalService interface {
	// GetMessageBody fetches from the origin exactly once and returns the body.
	GetMessageBody(ctx context.Context) (string, error)
}

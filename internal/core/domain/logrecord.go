package domain

import "time"

// LogRecord is a log body kept in the log database.
// Bodies are stored after extraction, so reading one back needs no reader.
type LogRecord struct {
	ID        string
	Origin    string
	Body      string
	CreatedAt time.Time
}

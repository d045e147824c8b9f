package domain

import "strings"

// Default recipient configuration.
const (
	DefaultFrom    = "system@example.com"
	DefaultTo      = "admin@example.com"
	DefaultSubject = "Log file"
)

// Recipient is the fixed set of sender, recipient and subject fields
// applied to every outgoing message.
type Recipient struct {
	From    string
	To      []string
	Subject string
}

// DefaultRecipient returns the built-in recipient configuration.
func DefaultRecipient() Recipient {
	return Recipient{
		From:    DefaultFrom,
		To:      []string{DefaultTo},
		Subject: DefaultSubject,
	}
}

// ToList returns the recipients as a comma-separated list.
func (r Recipient) ToList() string {
	return strings.Join(r.To, ", ")
}

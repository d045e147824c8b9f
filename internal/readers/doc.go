// Package readers provides implementations of the FormatReader interface
// for the encodings a log body can arrive in. Each reader knows how to
// recognise one encoding and pull the message body out of it.
//
// Readers are registered with a ReaderRegistry in priority order; the
// plain text reader accepts everything and is always registered last.
package readers

// Package domain defines the core business entities for logmail.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawContent: Opaque bytes produced by a content source
//   - Origin: A parsed origin descriptor (file path or database)
//   - Recipient: Sender, recipients and subject of an outgoing message
//   - Delivery: The outcome of one dispatch attempt
//   - LogRecord: A pre-extracted log body kept in the log database
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain

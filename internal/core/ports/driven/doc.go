// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - FormatReader: Classifies and decodes one content encoding
//   - ReaderRegistry: Resolves raw content through ordered readers
//   - ContentSource: Produces raw content from an origin
//   - SourceFactory: Creates content sources from parsed origins
//   - NotificationDispatcher: Delivers a finished message body
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - DeliveryStore: Delivery history. Without it, sends are not recorded.
//   - LogStore: Log database. Without it, log import is disabled.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, reader, or source package
package driven

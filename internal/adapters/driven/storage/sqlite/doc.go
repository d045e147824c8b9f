// Package sqlite provides a SQLite-based implementation of the log and
// delivery stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single database file holds two tables:
//
//   - logs: pre-extracted log bodies, read back by the database source
//   - deliveries: one row per dispatch attempt
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.logmail/data/logmail.db
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on SQLite's
// locking in WAL mode.
package sqlite

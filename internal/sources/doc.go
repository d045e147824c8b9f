// Package sources provides implementations of the ContentSource interface.
// Each source knows how to fetch raw content from one kind of origin
// (a local file, a record in the log database).
//
// The Factory maps parsed origins to sources and is wired in at startup.
package sources

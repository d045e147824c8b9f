// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage at ~/.logmail/config.toml,
//     laid out as [mail], [smtp], [storage] and [readers] tables
package file

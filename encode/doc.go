// Package encode renders a decorated doc.Document back to TOML text.
//
// Encoding is verbatim re-emission: every byte of output comes from the
// document's raw values, header text, and decoration, except for the entry
// terminators. Each key-value and each table header is followed by exactly
// one newline; decoration never carries the terminator itself.
//
// Within a standard table, key-value entries are emitted before sub-tables
// regardless of entry order, so a table whose entries were reordered by the
// formatter still serializes to grammatically valid TOML.
//
// # Related Packages
//
//   - github.com/toml-maid/go-maid/parse - the inverse operation
package encode

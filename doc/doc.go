// Package doc provides the decorated document model for TOML files.
//
// # Overview
//
// A doc.Document is a full-fidelity representation of one TOML file: every
// value keeps its verbatim source text, and every key and value carries a
// Decor, the raw whitespace and comment text surrounding it. Re-encoding an
// unmodified Document reproduces the input byte for byte, which is what lets
// the formatter rewrite only the parts it means to rewrite.
//
// # Structure
//
// The model mirrors the TOML grammar:
//
//   - Document: root Table plus document-level trailing text (comments after
//     the last entry).
//   - Table: ordered key to Item mapping. Standard tables carry the verbatim
//     inner text of their bracket header; inline tables are brace-delimited
//     values. Tables created implicitly by a dotted header path are flagged
//     Implicit and emit no header of their own.
//   - Item: tagged union over none, a Value, a nested Table, or an array of
//     tables.
//   - Value: tagged by Type over string, integer, float, boolean, datetime,
//     array, and inline table. Scalars keep their source text in Raw.
//   - Decor: the (prefix, suffix) raw text pair attached to a key or value.
//
// Consumers switch over Type and ItemType; both sets are closed.
//
// # Related Packages
//
//   - github.com/toml-maid/go-maid/parse - parses text into a Document
//   - github.com/toml-maid/go-maid/encode - encodes a Document to text
//   - github.com/toml-maid/go-maid/format - the sorting formatter
package doc

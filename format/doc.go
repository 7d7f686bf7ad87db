// Package format implements the sorting formatter over decorated TOML
// documents.
//
// # Overview
//
// A Formatter recursively rewrites a doc.Document: keys are reordered by a
// configured priority ranking, values get normalized spacing and quoting,
// and arrays get consistent layout. Every transform produces a new node and
// never mutates its input.
//
// Blank lines partition a table's entries into sections, and sorting is
// strictly local to a section. The comment block that introduces a section
// stays attached to whichever entry sorts first in it, so comments never
// migrate across section boundaries. Arrays of tables pass through
// unformatted.
//
// Formatting is idempotent: running a Formatter over its own output is an
// identity operation, byte for byte.
package format

// Package token scans TOML source text.
//
// The scanner yields verbatim slices rather than interpreted tokens: trivia
// (whitespace and comments), bare keys, quoted strings with their delimiters,
// and raw non-string scalars. Interpretation is left to the parse and doc
// packages so that every input byte survives into the document's decoration.
package token

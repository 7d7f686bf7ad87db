// Package parse parses TOML text into a decorated doc.Document.
//
// The parser is a recursive descent over a token.Scanner. Unlike a semantic
// TOML decoder it keeps every byte of the input: values keep their source
// text, and all whitespace and comments are attached as decoration to the
// key or value they precede or follow. Encoding an unmodified parse result
// reproduces the input.
//
// Decoration attachment rules:
//
//   - an entry's key prefix holds everything from the previous entry
//     terminator to the key: blank lines, comment lines, indentation
//   - an entry's key suffix holds the blanks between the key and '='
//   - a value's prefix holds the blanks after '=' (or after '[' or ',' in
//     arrays, '{' or ',' in inline tables)
//   - a value's suffix holds the blanks and comment after it, up to but not
//     including the terminator
//   - a standard table's decor holds the text before '[' and after ']';
//     the header's inner text is kept verbatim
//   - text after the last entry becomes the document's trailing text
//
// Duplicate keys and duplicate table headers are rejected with ErrParse.
//
// # Related Packages
//
//   - github.com/toml-maid/go-maid/doc - the document model
//   - github.com/toml-maid/go-maid/encode - the inverse operation
package parse

package token

import "errors"

// ErrSyntax reports malformed low-level syntax: an unterminated string, a
// control character inside one, or an unexpected byte.
var ErrSyntax = errors.New("syntax error")

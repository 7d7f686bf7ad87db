package parse

import "errors"

// ErrParse reports a TOML grammar violation. It is fatal for the file being
// parsed; callers skip the file and continue.
var ErrParse = errors.New("parse error")

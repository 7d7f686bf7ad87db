package format

import (
	"strings"

	"github.com/toml-maid/go-maid/doc"
)

// Value formats a single value. last reports whether the value is the
// final element of its enclosing container; only the last element gets a
// trailing space before the closing delimiter.
//
// Scalar content is preserved exactly except for quote style: a plain
// literal-quoted string whose content needs no escaping is rewritten to
// the basic double-quoted style.
func (f *Formatter) Value(v *doc.Value, last bool) *doc.Value {
	switch v.Type {
	case doc.ArrayType:
		return f.Array(v, last)
	case doc.InlineTableType:
		return f.InlineTable(v, last)
	}

	res := v.Clone()
	res.Raw = normalizeQuotes(v.Raw)

	prefix := strings.TrimSpace(v.Decor.Prefix)
	if prefix != "" {
		prefix = " " + prefix
	}
	suffix := strings.TrimSpace(v.Decor.Suffix)
	if suffix != "" {
		suffix = " " + suffix
	}
	res.Decor.Prefix = prefix + " "
	if last {
		res.Decor.Suffix = suffix + " "
	} else {
		res.Decor.Suffix = suffix
	}
	return res
}

// normalizeQuotes converts 'simple' to "simple". Strings opening with a
// doubled delimiter may be multi-line literals and pass through, as does
// anything containing a backslash or a double quote.
func normalizeQuotes(raw string) string {
	if !strings.HasPrefix(raw, "'") || strings.HasPrefix(raw, "''") {
		return raw
	}
	if strings.ContainsAny(raw, "\\\"") {
		return raw
	}
	return `"` + strings.TrimSuffix(strings.TrimPrefix(raw, "'"), "'") + `"`
}

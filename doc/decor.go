package doc

import "strings"

// Decor is the raw text surrounding a key or value: whitespace and comments,
// never semantic content. Prefix is the text before the key or value, suffix
// the text after it up to (but not including) the entry terminator.
type Decor struct {
	Prefix string
	Suffix string
}

// SectionBoundary reports whether the prefix opens a new blank-line section.
// A prefix beginning with a newline means the previous line was empty; this
// is the sole signal used to delimit sections.
func (d Decor) SectionBoundary() bool {
	return strings.HasPrefix(d.Prefix, "\n")
}

// StripTrailingNewlines returns the decor with trailing line breaks removed
// from the suffix. The encoder appends exactly one newline per entry, so
// decor must never carry the terminator itself.
func (d Decor) StripTrailingNewlines() Decor {
	d.Suffix = strings.TrimRight(d.Suffix, "\n")
	return d
}

// IsZero reports whether the decor carries no text at all.
func (d Decor) IsZero() bool {
	return d.Prefix == "" && d.Suffix == ""
}

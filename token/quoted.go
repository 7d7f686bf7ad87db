package token

import (
	"fmt"
	"strconv"
	"strings"
)

// ScanString consumes any of the four TOML string forms, returning the
// verbatim text including delimiters. The current byte must be '"' or '\''.
func (s *Scanner) ScanString() (string, error) {
	switch s.Peek() {
	case '"':
		return s.scanBasic()
	case '\'':
		return s.scanLiteral()
	}
	return "", fmt.Errorf("%w: expected string at %s", ErrSyntax, s.Pos())
}

func (s *Scanner) scanBasic() (string, error) {
	start := s.off
	if strings.HasPrefix(string(s.src[s.off:]), `"""`) {
		s.off += 3
		return s.scanToTriple(start, '"', true)
	}
	s.off++
	esc := false
	for !s.EOF() {
		c := s.next()
		switch {
		case esc:
			esc = false
		case c == '\\':
			esc = true
		case c == '"':
			return string(s.src[start:s.off]), nil
		case c == '\n':
			return "", fmt.Errorf("%w: newline in basic string at %s", ErrSyntax, s.Pos())
		}
	}
	return "", fmt.Errorf("%w: unterminated string at %s", ErrSyntax, s.Pos())
}

func (s *Scanner) scanLiteral() (string, error) {
	start := s.off
	if strings.HasPrefix(string(s.src[s.off:]), `'''`) {
		s.off += 3
		return s.scanToTriple(start, '\'', false)
	}
	s.off++
	for !s.EOF() {
		c := s.next()
		switch c {
		case '\'':
			return string(s.src[start:s.off]), nil
		case '\n':
			return "", fmt.Errorf("%w: newline in literal string at %s", ErrSyntax, s.Pos())
		}
	}
	return "", fmt.Errorf("%w: unterminated string at %s", ErrSyntax, s.Pos())
}

// scanToTriple scans a multi-line string body to its closing triple
// delimiter. Up to two extra delimiter bytes may precede the close and
// belong to the content, so the close is the last three of a run.
func (s *Scanner) scanToTriple(start int, q byte, escapes bool) (string, error) {
	esc := false
	run := 0
	for !s.EOF() {
		c := s.next()
		switch {
		case esc:
			esc = false
			run = 0
		case escapes && c == '\\':
			esc = true
			run = 0
		case c == q:
			run++
			if run >= 3 && (s.EOF() || s.src[s.off] != q) {
				return string(s.src[start:s.off]), nil
			}
		default:
			run = 0
		}
	}
	return "", fmt.Errorf("%w: unterminated string at %s", ErrSyntax, s.Pos())
}

// Unquote decodes a TOML string's source text (delimiters included) to its
// content. Literal strings are verbatim; basic strings have their escapes
// processed. Both multi-line forms drop a newline immediately after the
// opening delimiter.
func Unquote(raw string) string {
	switch {
	case strings.HasPrefix(raw, `'''`):
		return trimLeadingNewline(strings.TrimSuffix(strings.TrimPrefix(raw, `'''`), `'''`))
	case strings.HasPrefix(raw, `'`):
		return strings.TrimSuffix(strings.TrimPrefix(raw, `'`), `'`)
	case strings.HasPrefix(raw, `"""`):
		return unescape(trimLeadingNewline(strings.TrimSuffix(strings.TrimPrefix(raw, `"""`), `"""`)), true)
	case strings.HasPrefix(raw, `"`):
		return unescape(strings.TrimSuffix(strings.TrimPrefix(raw, `"`), `"`), false)
	}
	return raw
}

func trimLeadingNewline(v string) string {
	v = strings.TrimPrefix(v, "\r\n")
	return strings.TrimPrefix(v, "\n")
}

func unescape(v string, multiline bool) string {
	if !strings.ContainsRune(v, '\\') {
		return v
	}
	b := &strings.Builder{}
	for i := 0; i < len(v); i++ {
		c := v[i]
		if c != '\\' || i+1 == len(v) {
			b.WriteByte(c)
			continue
		}
		i++
		switch v[i] {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			n := 4
			if v[i] == 'U' {
				n = 8
			}
			if i+n < len(v) {
				if r, err := strconv.ParseUint(v[i+1:i+1+n], 16, 32); err == nil {
					b.WriteRune(rune(r))
					i += n
					continue
				}
			}
			b.WriteByte('\\')
			b.WriteByte(v[i])
		case '\n', ' ', '\t', '\r':
			if multiline {
				// line-ending backslash: skip whitespace through the
				// next non-blank character
				for i < len(v) && (v[i] == ' ' || v[i] == '\t' || v[i] == '\r' || v[i] == '\n') {
					i++
				}
				i--
				continue
			}
			b.WriteByte('\\')
			b.WriteByte(v[i])
		default:
			b.WriteByte('\\')
			b.WriteByte(v[i])
		}
	}
	return b.String()
}

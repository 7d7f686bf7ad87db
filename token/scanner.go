package token

import (
	"bytes"
	"fmt"
)

// Scanner walks TOML source text byte by byte. It has no token buffer; the
// parser asks for exactly the shape it expects next.
type Scanner struct {
	src []byte
	off int
}

func NewScanner(d []byte) *Scanner {
	return &Scanner{src: d}
}

func (s *Scanner) EOF() bool {
	return s.off >= len(s.src)
}

// Offset returns the current byte offset.
func (s *Scanner) Offset() int {
	return s.off
}

// Slice returns the verbatim source text in [a, b).
func (s *Scanner) Slice(a, b int) string {
	return string(s.src[a:b])
}

// Peek returns the current byte, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.EOF() {
		return 0
	}
	return s.src[s.off]
}

func (s *Scanner) next() byte {
	c := s.src[s.off]
	s.off++
	return c
}

// Pos computes the current position. Line and column are derived on demand;
// documents are small and positions are only needed for error reports.
func (s *Scanner) Pos() Pos {
	line := 1 + bytes.Count(s.src[:s.off], []byte{'\n'})
	col := s.off - bytes.LastIndexByte(s.src[:s.off], '\n')
	return Pos{Off: s.off, Line: line, Col: col}
}

// Expect consumes c or fails.
func (s *Scanner) Expect(c byte) error {
	if s.EOF() || s.src[s.off] != c {
		return fmt.Errorf("%w: expected %q at %s", ErrSyntax, string(c), s.Pos())
	}
	s.off++
	return nil
}

// ConsumeNewline consumes the entry terminator. EOF counts as a terminator.
func (s *Scanner) ConsumeNewline() error {
	if s.EOF() {
		return nil
	}
	if s.src[s.off] == '\n' {
		s.off++
		return nil
	}
	return fmt.Errorf("%w: expected end of line at %s, found %q", ErrSyntax, s.Pos(), string(s.src[s.off]))
}

// ScanTrivia consumes whitespace and comments, returning the verbatim text.
// With multiline set, newlines are trivia too (inside arrays and between
// top-level entries); otherwise scanning stops before the newline so the
// caller controls the entry terminator.
func (s *Scanner) ScanTrivia(multiline bool) string {
	start := s.off
	for !s.EOF() {
		switch c := s.src[s.off]; c {
		case ' ', '\t', '\r':
			s.off++
		case '\n':
			if !multiline {
				return string(s.src[start:s.off])
			}
			s.off++
		case '#':
			for !s.EOF() && s.src[s.off] != '\n' {
				s.off++
			}
		default:
			return string(s.src[start:s.off])
		}
	}
	return string(s.src[start:s.off])
}

// ScanBareKey consumes a bare key: letters, digits, '-' and '_'.
func (s *Scanner) ScanBareKey() (string, error) {
	start := s.off
	for !s.EOF() && isBareKeyByte(s.src[s.off]) {
		s.off++
	}
	if s.off == start {
		return "", fmt.Errorf("%w: expected key at %s", ErrSyntax, s.Pos())
	}
	return string(s.src[start:s.off]), nil
}

func isBareKeyByte(c byte) bool {
	return c == '-' || c == '_' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// ScanRawScalar consumes a non-string scalar: everything up to a structural
// delimiter, with trailing blanks handed back to the caller's suffix trivia.
func (s *Scanner) ScanRawScalar() (string, error) {
	start := s.off
	for !s.EOF() {
		switch s.src[s.off] {
		case ',', ']', '}', '#', '\n':
			goto done
		}
		s.off++
	}
done:
	end := s.off
	for end > start && (s.src[end-1] == ' ' || s.src[end-1] == '\t' || s.src[end-1] == '\r') {
		end--
	}
	if end == start {
		return "", fmt.Errorf("%w: expected value at %s", ErrSyntax, s.Pos())
	}
	s.off = end
	return string(s.src[start:end]), nil
}

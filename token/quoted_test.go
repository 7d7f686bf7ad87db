package token

import (
	"errors"
	"testing"
)

func TestScanString(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `"hello" rest`, want: `"hello"`},
		{in: `"es\"caped"`, want: `"es\"caped"`},
		{in: `'literal'`, want: `'literal'`},
		{in: `'c:\path'`, want: `'c:\path'`},
		{in: "\"\"\"\nmulti\nline\"\"\"x", want: "\"\"\"\nmulti\nline\"\"\""},
		{in: `'''it's'''`, want: `'''it's'''`},
		{in: `""""quoted""""`, want: `""""quoted""""`},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got, err := s.ScanString()
		if err != nil {
			t.Errorf("ScanString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ScanString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanStringErrors(t *testing.T) {
	for _, in := range []string{`"unterminated`, `'unterminated`, "\"line\nbreak\"", `'''open`} {
		s := NewScanner([]byte(in))
		if _, err := s.ScanString(); !errors.Is(err, ErrSyntax) {
			t.Errorf("ScanString(%q): got %v, want ErrSyntax", in, err)
		}
	}
}

func TestUnquote(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: `"hello"`, want: "hello"},
		{raw: `"a\tb\nc"`, want: "a\tb\nc"},
		{raw: `"\u00e9"`, want: "é"},
		{raw: `'no\escape'`, want: `no\escape`},
		{raw: "\"\"\"\nkeeps\ninner\"\"\"", want: "keeps\ninner"},
		{raw: "'''\nraw'''", want: "raw"},
		{raw: "\"\"\"one \\\n   two\"\"\"", want: "one two"},
	}
	for _, tt := range tests {
		if got := Unquote(tt.raw); got != tt.want {
			t.Errorf("Unquote(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

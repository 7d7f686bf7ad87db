package token

import (
	"errors"
	"testing"
)

func TestScanTrivia(t *testing.T) {
	tests := []struct {
		in        string
		multiline bool
		want      string
		rest      byte
	}{
		{in: "", multiline: true, want: ""},
		{in: "  x", want: "  ", rest: 'x'},
		{in: " \t# comment\nx", want: " \t# comment", rest: '\n'},
		{in: " \t# comment\nx", multiline: true, want: " \t# comment\n", rest: 'x'},
		{in: "\n\n# a\n# b\nx", multiline: true, want: "\n\n# a\n# b\n", rest: 'x'},
		{in: "x", want: "", rest: 'x'},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got := s.ScanTrivia(tt.multiline)
		if got != tt.want {
			t.Errorf("ScanTrivia(%q, %v) = %q, want %q", tt.in, tt.multiline, got, tt.want)
		}
		if s.Peek() != tt.rest {
			t.Errorf("ScanTrivia(%q, %v) stopped at %q, want %q", tt.in, tt.multiline, s.Peek(), tt.rest)
		}
	}
}

func TestScanBareKey(t *testing.T) {
	s := NewScanner([]byte("some-key_1 = 2"))
	key, err := s.ScanBareKey()
	if err != nil {
		t.Fatalf("ScanBareKey: %v", err)
	}
	if key != "some-key_1" {
		t.Errorf("ScanBareKey = %q", key)
	}
	if _, err := s.ScanBareKey(); !errors.Is(err, ErrSyntax) {
		t.Errorf("ScanBareKey on %q: got %v, want ErrSyntax", " = 2", err)
	}
}

func TestScanRawScalar(t *testing.T) {
	tests := []struct {
		in   string
		want string
		rest byte
	}{
		{in: "1979-05-27T07:32:00Z\n", want: "1979-05-27T07:32:00Z", rest: '\n'},
		{in: "42 # answer", want: "42", rest: ' '},
		{in: "1_000,", want: "1_000", rest: ','},
		{in: "true]", want: "true", rest: ']'},
		{in: "-1.5e3}", want: "-1.5e3", rest: '}'},
	}
	for _, tt := range tests {
		s := NewScanner([]byte(tt.in))
		got, err := s.ScanRawScalar()
		if err != nil {
			t.Errorf("ScanRawScalar(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ScanRawScalar(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if s.Peek() != tt.rest {
			t.Errorf("ScanRawScalar(%q) stopped at %q, want %q", tt.in, s.Peek(), tt.rest)
		}
	}

	s := NewScanner([]byte("  ,"))
	if _, err := s.ScanRawScalar(); !errors.Is(err, ErrSyntax) {
		t.Errorf("empty scalar: got %v, want ErrSyntax", err)
	}
}

func TestPos(t *testing.T) {
	s := NewScanner([]byte("ab\ncd"))
	s.ScanBareKey()
	s.ConsumeNewline()
	if got := s.Pos().String(); got != "2:1" {
		t.Errorf("Pos = %q, want %q", got, "2:1")
	}
}

package parse

import (
	"errors"
	"testing"

	"github.com/toml-maid/go-maid/doc"
	"github.com/toml-maid/go-maid/encode"
)

// Parsing is lossless: a document whose entries each end in a newline
// serializes back to the exact input text.
func TestParseRoundTrip(t *testing.T) {
	ins := []string{
		"",
		"a = 1\n",
		"a=1\n",
		"# only a comment\n",
		"\n\n# leading\na = 1 # trailing\n",
		"key = \"value\"\nother = 'literal'\n",
		"s = \"\"\"\nmulti\nline\n\"\"\"\n",
		"s = '''\nraw ''string''\n'''\n",
		"n = 1_000\nh = 0xdead_beef\nf = -2.5e10\nb = true\n",
		"d = 1979-05-27T07:32:00Z\nt = 07:32:00\n",
		"a = [1, 2, 3]\n",
		"a = []\n",
		"a = [1, 2,]\n",
		"a = [\n\t1,\n\t2,\n]\n",
		"a = [\n\t1, # one\n\t2,\n\t# closing\n]\n",
		"a = [[1, 2], [3]]\n",
		"a = { x = 1, y = \"z\" }\n",
		"a = {}\n",
		"a = { x = { y = 2 } }\n",
		"a.b = 1\n\"dotted.key\" = 2\n",
		"\"a b\" = 1\n'c d' = 2\n",
		"[t]\nx = 1\n",
		"[ t ]\nx = 1\n",
		"[t] # table comment\nx = 1\n",
		"[a.b]\nx = 1\n",
		"[a]\nx = 1\n\n[a.b]\ny = 2\n",
		"[[p]]\nx = 1\n\n[[p]]\ny = 2\n",
		"[[a.p]]\nx = 1\n",
		"x = 1\n\n# section\ny = 2\n\nz = 3\n",
		"a = 1\n# trailing comment block\n",
		"a = 1\r\nb = 2\r\n",
	}
	for _, in := range ins {
		d, err := Parse([]byte(in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", in, err)
			continue
		}
		if got := encode.MustString(d); got != in {
			t.Errorf("# doc\n%q\n# round trip\n%q", in, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	ins := []string{
		"a = @\n",
		"a = \n",
		"= 1\n",
		"a == 1\n",
		"a = 1 b = 2\n",
		"a = 1\na = 2\n",
		"a = 1\n\"a\" = 2\n",
		"[t]\nx = 1\n[t]\ny = 2\n",
		"[t]\n[[t]]\n",
		"a = 1\n[a]\n",
		"a = 'unterminated\n",
		"a = \"broken\nb = 2\n",
		"a = [1, 2\n",
		"a = [1 2]\n",
		"a = {x = 1,}\n",
		"a = {x = 1\n}\n",
		"[t\nx = 1\n",
	}
	for _, in := range ins {
		if _, err := Parse([]byte(in)); !errors.Is(err, ErrParse) {
			t.Errorf("# doc\n%s\n# got %v, want ErrParse", in, err)
		}
	}
}

func TestParseTree(t *testing.T) {
	d, err := Parse([]byte("top = 1\n\n[server]\nhost = \"x\" # main\n\n[server.tls]\non = true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(d.Root.Entries) != 2 {
		t.Fatalf("root entries = %d, want 2", len(d.Root.Entries))
	}
	srv := d.Root.Get("server")
	if srv == nil || srv.Type != doc.TableItem {
		t.Fatalf("server entry missing")
	}
	if srv.Table.HeaderRaw != "server" {
		t.Errorf("HeaderRaw = %q", srv.Table.HeaderRaw)
	}
	if srv.Table.Decor.Prefix != "\n" {
		t.Errorf("server prefix = %q, want %q", srv.Table.Decor.Prefix, "\n")
	}
	host := srv.Table.Get("host")
	if host == nil || host.Type != doc.ValueItem {
		t.Fatalf("host entry missing")
	}
	if host.Value.Type != doc.StringType || host.Value.Raw != `"x"` {
		t.Errorf("host = %s %q", host.Value.Type, host.Value.Raw)
	}
	if host.Value.Decor.Suffix != " # main" {
		t.Errorf("host suffix = %q", host.Value.Decor.Suffix)
	}
	tls := srv.Table.Get("tls")
	if tls == nil || tls.Type != doc.TableItem || tls.Table.Implicit {
		t.Fatalf("server.tls should be an explicit table")
	}
}

func TestParseImplicitTable(t *testing.T) {
	d, err := Parse([]byte("[a.b]\nx = 1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	a := d.Root.Get("a")
	if a == nil || a.Type != doc.TableItem || !a.Table.Implicit {
		t.Fatalf("a should be an implicit table")
	}
	b := a.Table.Get("b")
	if b == nil || b.Type != doc.TableItem || b.Table.Implicit {
		t.Fatalf("a.b should be an explicit table")
	}
}

func TestParseArrayOfTables(t *testing.T) {
	d, err := Parse([]byte("[[p]]\nx = 1\n[[p]]\ny = 2\n[p.sub]\nz = 3\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p := d.Root.Get("p")
	if p == nil || p.Type != doc.ArrayOfTablesItem {
		t.Fatalf("p should be an array of tables")
	}
	if len(p.Tables) != 2 {
		t.Fatalf("p has %d elements, want 2", len(p.Tables))
	}
	// the sub-table header attaches to the last element
	if sub := p.Tables[1].Get("sub"); sub == nil || sub.Type != doc.TableItem {
		t.Errorf("p.sub should land in the last element")
	}
}

// An entry may end at EOF without a newline; the encoder reintroduces
// the terminator, so such inputs gain exactly one final newline.
func TestParseMissingFinalNewline(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a = 1", want: "a = 1\n"},
		{in: "a = 1 # c", want: "a = 1 # c\n"},
		{in: "[t]", want: "[t]\n"},
		{in: "[t]\nx = 1", want: "[t]\nx = 1\n"},
	}
	for _, tt := range tests {
		d, err := Parse([]byte(tt.in))
		if err != nil {
			t.Errorf("# doc\n%s\n# error %v", tt.in, err)
			continue
		}
		if got := encode.MustString(d); got != tt.want {
			t.Errorf("# doc\n%q\n# got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseTrailing(t *testing.T) {
	d, err := Parse([]byte("a = 1\n\n# the end\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if d.Trailing != "\n# the end\n" {
		t.Errorf("Trailing = %q", d.Trailing)
	}
}

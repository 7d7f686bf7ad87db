package parse

import (
	"fmt"
	"strings"

	"github.com/toml-maid/go-maid/doc"
	"github.com/toml-maid/go-maid/token"
)

// Parse parses TOML text into a decorated document.
func Parse(d []byte) (*doc.Document, error) {
	p := &parser{s: token.NewScanner(d)}
	return p.document()
}

type parser struct {
	s *token.Scanner
}

func (p *parser) document() (*doc.Document, error) {
	res := doc.NewDocument()
	cur := res.Root
	for {
		prefix := p.s.ScanTrivia(true)
		if p.s.EOF() {
			res.Trailing = prefix
			return res, nil
		}
		var err error
		if p.s.Peek() == '[' {
			cur, err = p.header(res.Root, prefix)
		} else {
			err = p.keyValue(cur, prefix)
		}
		if err != nil {
			return nil, err
		}
	}
}

// header parses a '[path]' or '[[path]]' line and returns the table that
// subsequent key-values belong to.
func (p *parser) header(root *doc.Table, prefix string) (*doc.Table, error) {
	pos := p.s.Pos()
	if err := p.s.Expect('['); err != nil {
		return nil, p.wrap(err)
	}
	aot := p.s.Peek() == '['
	if aot {
		p.s.Expect('[')
	}
	innerStart := p.s.Offset()
	p.s.ScanTrivia(false)
	kp, err := p.keyPath()
	if err != nil {
		return nil, err
	}
	names := kp.names
	headerRaw := p.s.Slice(innerStart, p.s.Offset())
	if err := p.s.Expect(']'); err != nil {
		return nil, p.wrap(err)
	}
	if aot {
		if err := p.s.Expect(']'); err != nil {
			return nil, p.wrap(err)
		}
	}
	suffix := p.s.ScanTrivia(false)
	if err := p.s.ConsumeNewline(); err != nil {
		return nil, p.wrap(err)
	}
	decor := doc.Decor{Prefix: prefix, Suffix: suffix}

	walk := root
	for _, name := range names[:len(names)-1] {
		next, err := p.descend(walk, name, pos)
		if err != nil {
			return nil, err
		}
		walk = next
	}

	last := names[len(names)-1]
	e := findEntry(walk, last)
	if aot {
		elem := &doc.Table{HeaderRaw: headerRaw, Decor: decor}
		if e == nil {
			item := &doc.Item{Type: doc.ArrayOfTablesItem, Tables: []*doc.Table{elem}}
			walk.Append(kp.lastRaw, item, doc.Decor{})
			return elem, nil
		}
		if e.Item.Type != doc.ArrayOfTablesItem {
			return nil, fmt.Errorf("%w: %q redefined as array of tables at %s", ErrParse, last, pos)
		}
		e.Item.Tables = append(e.Item.Tables, elem)
		return elem, nil
	}
	if e == nil {
		tbl := &doc.Table{HeaderRaw: headerRaw, Decor: decor}
		item := &doc.Item{Type: doc.TableItem, Table: tbl}
		walk.Append(kp.lastRaw, item, doc.Decor{})
		return tbl, nil
	}
	if e.Item.Type != doc.TableItem || !e.Item.Table.Implicit {
		return nil, fmt.Errorf("%w: duplicate table %q at %s", ErrParse, last, pos)
	}
	tbl := e.Item.Table
	tbl.Implicit = false
	tbl.HeaderRaw = headerRaw
	tbl.Decor = decor
	return tbl, nil
}

// descend resolves one intermediate path segment, creating an implicit
// table when the segment is new. Array-of-tables segments resolve to their
// last element, per TOML's header nesting rules.
func (p *parser) descend(t *doc.Table, name string, pos token.Pos) (*doc.Table, error) {
	e := findEntry(t, name)
	if e == nil {
		sub := &doc.Table{Implicit: true}
		t.Append(name, &doc.Item{Type: doc.TableItem, Table: sub}, doc.Decor{})
		return sub, nil
	}
	switch e.Item.Type {
	case doc.TableItem:
		return e.Item.Table, nil
	case doc.ArrayOfTablesItem:
		return e.Item.Tables[len(e.Item.Tables)-1], nil
	default:
		return nil, fmt.Errorf("%w: %q is not a table at %s", ErrParse, name, pos)
	}
}

func (p *parser) keyValue(t *doc.Table, prefix string) error {
	pos := p.s.Pos()
	kp, err := p.keyPath()
	if err != nil {
		return err
	}
	dup := findRawEntry(t, kp.raw) != nil
	if len(kp.names) == 1 {
		dup = dup || findEntry(t, kp.names[0]) != nil
	}
	if dup {
		return fmt.Errorf("%w: duplicate key %q at %s", ErrParse, kp.raw, pos)
	}
	if err := p.s.Expect('='); err != nil {
		return p.wrap(err)
	}
	vprefix := p.s.ScanTrivia(false)
	v, err := p.value()
	if err != nil {
		return err
	}
	vsuffix := p.s.ScanTrivia(false)
	if err := p.s.ConsumeNewline(); err != nil {
		return p.wrap(err)
	}
	v.Decor = doc.Decor{Prefix: vprefix, Suffix: vsuffix}
	t.Append(kp.raw, &doc.Item{Type: doc.ValueItem, Value: v}, doc.Decor{Prefix: prefix, Suffix: kp.suffix})
	return nil
}

func (p *parser) value() (*doc.Value, error) {
	switch p.s.Peek() {
	case '"', '\'':
		raw, err := p.s.ScanString()
		if err != nil {
			return nil, p.wrap(err)
		}
		return &doc.Value{Type: doc.StringType, Raw: raw}, nil
	case '[':
		return p.array()
	case '{':
		return p.inlineTable()
	default:
		pos := p.s.Pos()
		raw, err := p.s.ScanRawScalar()
		if err != nil {
			return nil, p.wrap(err)
		}
		t := doc.Classify(raw)
		if t == doc.InvalidType {
			return nil, fmt.Errorf("%w: invalid value %q at %s", ErrParse, raw, pos)
		}
		return &doc.Value{Type: t, Raw: raw}, nil
	}
}

func (p *parser) array() (*doc.Value, error) {
	p.s.Expect('[')
	arr := &doc.Array{}
	for {
		trivia := p.s.ScanTrivia(true)
		if p.s.Peek() == ']' {
			p.s.Expect(']')
			arr.Trailing = trivia
			arr.TrailingComma = len(arr.Values) > 0
			break
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		v.Decor.Prefix = trivia
		suffix := p.s.ScanTrivia(true)
		v.Decor.Suffix = suffix
		arr.Values = append(arr.Values, v)
		switch p.s.Peek() {
		case ',':
			p.s.Expect(',')
		case ']':
			p.s.Expect(']')
			return &doc.Value{Type: doc.ArrayType, Array: arr}, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or ']' at %s", ErrParse, p.s.Pos())
		}
	}
	return &doc.Value{Type: doc.ArrayType, Array: arr}, nil
}

func (p *parser) inlineTable() (*doc.Value, error) {
	p.s.Expect('{')
	tbl := &doc.Table{Inline: true}
	for {
		trivia := p.s.ScanTrivia(false)
		if p.s.Peek() == '}' {
			if len(tbl.Entries) > 0 {
				return nil, fmt.Errorf("%w: trailing comma in inline table at %s", ErrParse, p.s.Pos())
			}
			p.s.Expect('}')
			tbl.Trailing = trivia
			break
		}
		pos := p.s.Pos()
		kp, err := p.keyPath()
		if err != nil {
			return nil, err
		}
		if findEntry(tbl, kp.names[len(kp.names)-1]) != nil || findRawEntry(tbl, kp.raw) != nil {
			return nil, fmt.Errorf("%w: duplicate key %q at %s", ErrParse, kp.raw, pos)
		}
		if err := p.s.Expect('='); err != nil {
			return nil, p.wrap(err)
		}
		vprefix := p.s.ScanTrivia(false)
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		vsuffix := p.s.ScanTrivia(false)
		v.Decor = doc.Decor{Prefix: vprefix, Suffix: vsuffix}
		tbl.Append(kp.raw, &doc.Item{Type: doc.ValueItem, Value: v}, doc.Decor{Prefix: trivia, Suffix: kp.suffix})
		switch p.s.Peek() {
		case ',':
			p.s.Expect(',')
		case '}':
			p.s.Expect('}')
			return &doc.Value{Type: doc.InlineTableType, Table: tbl}, nil
		default:
			return nil, fmt.Errorf("%w: expected ',' or '}' at %s", ErrParse, p.s.Pos())
		}
	}
	return &doc.Value{Type: doc.InlineTableType, Table: tbl}, nil
}

// keyPath holds one scanned, possibly dotted key.
type keyPath struct {
	raw     string   // verbatim text, quoting and interior spacing preserved
	lastRaw string   // verbatim spelling of the final segment
	names   []string // unquoted segment names
	suffix  string   // trivia between the last segment and what follows
}

func (p *parser) keyPath() (*keyPath, error) {
	start := p.s.Offset()
	kp := &keyPath{}
	for {
		segStart := p.s.Offset()
		switch c := p.s.Peek(); {
		case c == '"' || c == '\'':
			raw, err := p.s.ScanString()
			if err != nil {
				return nil, p.wrap(err)
			}
			kp.names = append(kp.names, token.Unquote(raw))
		default:
			name, err := p.s.ScanBareKey()
			if err != nil {
				return nil, p.wrap(err)
			}
			kp.names = append(kp.names, name)
		}
		end := p.s.Offset()
		kp.lastRaw = p.s.Slice(segStart, end)
		trivia := p.s.ScanTrivia(false)
		if p.s.Peek() != '.' {
			kp.raw = p.s.Slice(start, end)
			kp.suffix = trivia
			return kp, nil
		}
		p.s.Expect('.')
		p.s.ScanTrivia(false)
	}
}

func (p *parser) wrap(err error) error {
	return fmt.Errorf("%w: %w", ErrParse, err)
}

// findEntry looks a key up by its unquoted name.
func findEntry(t *doc.Table, name string) *doc.Entry {
	for _, e := range t.Entries {
		if segmentName(e.Key) == name {
			return e
		}
	}
	return nil
}

func findRawEntry(t *doc.Table, raw string) *doc.Entry {
	for _, e := range t.Entries {
		if e.Key == raw {
			return e
		}
	}
	return nil
}

// segmentName maps a single raw key segment to its unquoted name. Dotted
// raw keys have no single name and are returned as written.
func segmentName(raw string) string {
	if strings.HasPrefix(raw, `"`) || strings.HasPrefix(raw, `'`) {
		return token.Unquote(raw)
	}
	return raw
}

package encode

import (
	"fmt"
	"io"

	"github.com/toml-maid/go-maid/doc"
)

// Encode writes the document to w.
func Encode(d *doc.Document, w io.Writer) error {
	e := &encoder{w: w}
	e.table(d.Root)
	e.str(d.Trailing)
	return e.err
}

type encoder struct {
	w   io.Writer
	err error
}

func (e *encoder) str(s string) {
	if e.err != nil || s == "" {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}

func (e *encoder) table(t *doc.Table) {
	for _, en := range t.Entries {
		switch en.Item.Type {
		case doc.NoneItem:
		case doc.ValueItem:
			e.str(en.KeyDecor.Prefix)
			e.str(en.Key)
			e.str(en.KeyDecor.Suffix)
			e.str("=")
			e.value(en.Item.Value)
			e.str("\n")
		case doc.TableItem, doc.ArrayOfTablesItem:
			// emitted below, after all key-values
		}
	}
	for _, en := range t.Entries {
		switch en.Item.Type {
		case doc.TableItem:
			e.stdTable(en.Item.Table)
		case doc.ArrayOfTablesItem:
			for _, elem := range en.Item.Tables {
				e.header(elem, "[[", "]]")
				e.table(elem)
			}
		}
	}
}

func (e *encoder) stdTable(t *doc.Table) {
	if !t.Implicit {
		e.header(t, "[", "]")
	}
	e.table(t)
}

func (e *encoder) header(t *doc.Table, open, shut string) {
	e.str(t.Decor.Prefix)
	e.str(open)
	e.str(t.HeaderRaw)
	e.str(shut)
	e.str(t.Decor.Suffix)
	e.str("\n")
}

func (e *encoder) value(v *doc.Value) {
	e.str(v.Decor.Prefix)
	switch v.Type {
	case doc.StringType, doc.IntegerType, doc.FloatType, doc.BoolType, doc.DatetimeType:
		e.str(v.Raw)
	case doc.ArrayType:
		e.array(v.Array)
	case doc.InlineTableType:
		e.inlineTable(v.Table)
	default:
		e.fail(fmt.Errorf("%w: cannot encode %s value", ErrEncoding, v.Type))
	}
	e.str(v.Decor.Suffix)
}

func (e *encoder) array(a *doc.Array) {
	e.str("[")
	for i, el := range a.Values {
		if i > 0 {
			e.str(",")
		}
		e.value(el)
	}
	if a.TrailingComma && len(a.Values) > 0 {
		e.str(",")
	}
	e.str(a.Trailing)
	e.str("]")
}

func (e *encoder) inlineTable(t *doc.Table) {
	e.str("{")
	for i, en := range t.Entries {
		if i > 0 {
			e.str(",")
		}
		e.str(en.KeyDecor.Prefix)
		e.str(en.Key)
		e.str(en.KeyDecor.Suffix)
		e.str("=")
		e.value(en.Item.Value)
	}
	e.str(t.Trailing)
	e.str("}")
}

func (e *encoder) fail(err error) {
	if e.err == nil {
		e.err = err
	}
}

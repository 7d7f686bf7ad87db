package format

import (
	"slices"

	"github.com/toml-maid/go-maid/doc"
)

// Options configure a Formatter.
type Options struct {
	// Keys are the important keys in standard tables, in priority order.
	// Remaining keys sort lexicographically after them.
	Keys []string

	// InlineKeys are the important keys in inline tables, ranked
	// independently of Keys.
	InlineKeys []string

	// SortArrays sorts string array elements. In arrays of mixed types,
	// strings are ordered first and other values keep their original order.
	SortArrays bool
}

// Formatter rewrites decorated documents. It is stateless across documents
// and safe for concurrent use.
type Formatter struct {
	keys       Ranks
	inlineKeys Ranks
	sortArrays bool
}

func New(opts Options) *Formatter {
	return &Formatter{
		keys:       RanksOf(opts.Keys),
		inlineKeys: RanksOf(opts.InlineKeys),
		sortArrays: opts.SortArrays,
	}
}

// Document formats a whole document. The document-level trailing text is
// carried over untouched.
func (f *Formatter) Document(d *doc.Document) *doc.Document {
	return &doc.Document{
		Root:     f.Table(d.Root),
		Trailing: d.Trailing,
	}
}

// entry carries one key through a single sort-and-reassemble pass.
type entry struct {
	key   string
	item  *doc.Item
	decor doc.Decor
}

// Table formats a standard table recursively.
//
// Blank-line boundaries split the entries into sections; each section is
// sorted on its own and flushed in order. The decoration that opened a
// section (its blank line and any comment block) is re-attached to the
// entry that sorts first in it. A leading comment block on the table's
// first entry stays at the top the same way, so a file-leading comment
// never travels with its key.
func (f *Formatter) Table(t *doc.Table) *doc.Table {
	res := &doc.Table{
		Implicit:  t.Implicit,
		HeaderRaw: t.HeaderRaw,
		Decor:     t.Decor,
		Trailing:  t.Trailing,
	}

	var sectionDecor doc.Decor
	var section []entry
	flush := func() {
		slices.SortStableFunc(section, func(a, b entry) int {
			return f.keys.Compare(a.key, b.key)
		})
		for i, e := range section {
			if i == 0 && sectionDecor.Prefix != "" {
				// the section head decoration goes first; a comment block
				// the entry brought along is kept after it
				e.decor.Prefix = sectionDecor.Prefix + e.decor.Prefix
			}
			res.Append(e.key, e.item, e.decor)
		}
		section = nil
		sectionDecor = doc.Decor{}
	}

	for i, en := range t.Entries {
		kd := en.KeyDecor
		if i == 0 {
			if kd.Prefix != "" {
				sectionDecor.Prefix = kd.Prefix
				kd.Prefix = ""
			}
		} else if kd.SectionBoundary() {
			flush()
			sectionDecor.Prefix = kd.Prefix
			kd.Prefix = ""
		}
		kd = kd.StripTrailingNewlines()
		section = append(section, entry{key: en.Key, item: f.item(en.Item), decor: kd})
	}
	flush()
	return res
}

func (f *Formatter) item(it *doc.Item) *doc.Item {
	switch it.Type {
	case doc.NoneItem:
		return &doc.Item{Type: doc.NoneItem}
	case doc.ValueItem:
		return &doc.Item{Type: doc.ValueItem, Value: f.Value(it.Value, false)}
	case doc.TableItem:
		return &doc.Item{Type: doc.TableItem, Table: f.Table(it.Table)}
	case doc.ArrayOfTablesItem:
		// arrays of tables pass through unformatted
		return it.Clone()
	default:
		return it.Clone()
	}
}

package format

import (
	"slices"

	"github.com/toml-maid/go-maid/doc"
)

// InlineTable formats an inline table value. Inline tables carry no
// comments in TOML, so every key's decoration is forced to single spaces.
// There is no section concept: all entries form one section, sorted by the
// inline key ranking.
func (f *Formatter) InlineTable(v *doc.Value, last bool) *doc.Value {
	t := v.Table
	entries := make([]entry, 0, len(t.Entries))
	for _, en := range t.Entries {
		entries = append(entries, entry{
			key:   en.Key,
			item:  en.Item,
			decor: doc.Decor{Prefix: " ", Suffix: " "},
		})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return f.inlineKeys.Compare(a.key, b.key)
	})

	res := &doc.Table{Inline: true}
	for i, e := range entries {
		fv := f.Value(e.item.Value, i+1 == len(entries))
		res.Append(e.key, &doc.Item{Type: doc.ValueItem, Value: fv}, e.decor)
	}

	outer := doc.Decor{Prefix: " "}
	if last {
		outer.Suffix = " "
	}
	return &doc.Value{Type: doc.InlineTableType, Table: res, Decor: outer}
}

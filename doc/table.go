package doc

// Item is a variant over the things a table key can map to.
type Item struct {
	Type   ItemType
	Value  *Value
	Table  *Table
	Tables []*Table // array-of-tables elements, in document order
}

// Entry is one key of a table together with its item and key decoration.
// For standard-table and array-of-tables items the key decor is empty by
// construction; the header trivia lives on the table itself.
type Entry struct {
	Key      string
	KeyDecor Decor
	Item     *Item
}

// Table is an ordered key to Item mapping.
//
// A standard table keeps the verbatim inner text of its bracket header in
// HeaderRaw, and its Decor holds the text before '[' (prefix) and after ']'
// (suffix). An implicit table was created by a dotted header path, owns no
// header text, and is never rendered as one. An inline table has Inline set;
// its surrounding decor lives on the owning Value, and Trailing holds the
// interior of an empty '{ }'.
type Table struct {
	Inline    bool
	Implicit  bool
	HeaderRaw string
	Decor     Decor
	Trailing  string
	Entries   []*Entry
}

// Get returns the item for key, or nil.
func (t *Table) Get(key string) *Item {
	for _, e := range t.Entries {
		if e.Key == key {
			return e.Item
		}
	}
	return nil
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	return t.Get(key) != nil
}

// Append adds an entry. The caller is responsible for key uniqueness.
func (t *Table) Append(key string, item *Item, decor Decor) *Entry {
	e := &Entry{Key: key, KeyDecor: decor, Item: item}
	t.Entries = append(t.Entries, e)
	return e
}

// Keys returns the keys in entry order.
func (t *Table) Keys() []string {
	keys := make([]string, len(t.Entries))
	for i, e := range t.Entries {
		keys[i] = e.Key
	}
	return keys
}

func (t *Table) Clone() *Table {
	res := &Table{}
	return t.CloneTo(res)
}

func (t *Table) CloneTo(dst *Table) *Table {
	dst.Inline = t.Inline
	dst.Implicit = t.Implicit
	dst.HeaderRaw = t.HeaderRaw
	dst.Decor = t.Decor
	dst.Trailing = t.Trailing
	dst.Entries = make([]*Entry, len(t.Entries))
	for i, e := range t.Entries {
		dst.Entries[i] = &Entry{
			Key:      e.Key,
			KeyDecor: e.KeyDecor,
			Item:     e.Item.Clone(),
		}
	}
	return dst
}

func (it *Item) Clone() *Item {
	res := &Item{Type: it.Type}
	switch it.Type {
	case NoneItem:
	case ValueItem:
		res.Value = it.Value.Clone()
	case TableItem:
		res.Table = it.Table.Clone()
	case ArrayOfTablesItem:
		res.Tables = make([]*Table, len(it.Tables))
		for i, t := range it.Tables {
			res.Tables[i] = t.Clone()
		}
	}
	return res
}

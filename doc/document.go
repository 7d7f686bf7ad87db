package doc

// Document is the full parsed representation of one TOML file. Trailing is
// the raw text after the last entry: comments with no owning key.
type Document struct {
	Root     *Table
	Trailing string
}

func NewDocument() *Document {
	return &Document{Root: &Table{}}
}

func (d *Document) Clone() *Document {
	return &Document{
		Root:     d.Root.Clone(),
		Trailing: d.Trailing,
	}
}

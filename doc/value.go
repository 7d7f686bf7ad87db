package doc

// Value is a TOML value. Type selects which fields are meaningful:
// scalar types use Raw, ArrayType uses Array, InlineTableType uses Table.
// Decor surrounds the value in its container (after '=', '[' or ',').
type Value struct {
	Type  Type
	Raw   string // verbatim source text, string delimiters included
	Array *Array
	Table *Table
	Decor Decor
}

// Array is an ordered sequence of values. Trailing is the raw text between
// the last value (or last comma) and the closing bracket. Layout (inline vs
// multiline) is not stored; it is derived from decoration content.
type Array struct {
	Values        []*Value
	Trailing      string
	TrailingComma bool
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Raw = v.Raw
	dst.Decor = v.Decor
	if v.Array != nil {
		dst.Array = v.Array.Clone()
	}
	if v.Table != nil {
		dst.Table = v.Table.Clone()
	}
	return dst
}

func (a *Array) Clone() *Array {
	res := &Array{
		Values:        make([]*Value, len(a.Values)),
		Trailing:      a.Trailing,
		TrailingComma: a.TrailingComma,
	}
	for i, v := range a.Values {
		res.Values[i] = v.Clone()
	}
	return res
}

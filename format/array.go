package format

import (
	"slices"
	"strings"

	"github.com/toml-maid/go-maid/doc"
	"github.com/toml-maid/go-maid/token"
)

// Array formats an array value. Layout is derived from the decoration of
// the incoming array: a trailing decoration opening a new line, or a
// newline in any element's decoration, makes the array multiline. The
// derivation sees only already-normalized shapes on a second pass, so
// formatting keeps its own layout choice stable.
func (f *Formatter) Array(v *doc.Value, last bool) *doc.Value {
	arr := v.Array
	values := make([]*doc.Value, len(arr.Values))
	for i, el := range arr.Values {
		values[i] = el.Clone()
	}
	if f.sortArrays {
		slices.SortStableFunc(values, compareElems)
	}

	res := &doc.Array{Values: values}
	if multiline(arr) {
		res.Trailing = closingTrailing(arr.Trailing)
		res.TrailingComma = true
		for i, el := range values {
			fv := f.Value(el, false)
			fv.Decor = doc.Decor{
				Prefix: elemPrefix(el.Decor.Prefix),
				Suffix: elemSuffix(el.Decor.Suffix),
			}
			values[i] = fv
		}
	} else {
		res.Trailing = ""
		res.TrailingComma = false
		for i, el := range values {
			values[i] = f.Value(el, i+1 == len(values))
		}
	}

	outer := doc.Decor{Prefix: " "}
	if last {
		outer.Suffix = " "
	}
	return &doc.Value{Type: doc.ArrayType, Array: res, Decor: outer}
}

// compareElems sorts string elements lexicographically by content ahead of
// all other elements; non-strings compare equal so a stable sort keeps
// their original relative order.
func compareElems(a, b *doc.Value) int {
	aStr := a.Type == doc.StringType
	bStr := b.Type == doc.StringType
	switch {
	case aStr && bStr:
		return strings.Compare(token.Unquote(a.Raw), token.Unquote(b.Raw))
	case aStr:
		return -1
	case bStr:
		return 1
	default:
		return 0
	}
}

func multiline(a *doc.Array) bool {
	if strings.HasPrefix(a.Trailing, "\n") {
		return true
	}
	for _, el := range a.Values {
		if strings.ContainsRune(el.Decor.Prefix, '\n') || strings.ContainsRune(el.Decor.Suffix, '\n') {
			return true
		}
	}
	return false
}

// closingTrailing normalizes the decoration before the closing bracket to
// end with exactly one newline, keeping any original comment.
func closingTrailing(trailing string) string {
	t := strings.Trim(trailing, " \t")
	t = strings.TrimRight(t, " \t\n") + "\n"
	if !strings.HasPrefix(t, "\n") {
		t = " " + t
	}
	return t
}

// elemPrefix forces one tab of indentation after the newline that starts
// an element's line, keeping any comment block above the element.
func elemPrefix(prefix string) string {
	p := strings.Trim(prefix, " \t")
	p = strings.TrimRight(p, "\n")
	if p == "" {
		p = "\n\t"
	} else {
		p += "\n\t"
	}
	if !strings.HasPrefix(p, "\n") {
		p = " " + p
	}
	return p
}

// elemSuffix keeps an element's trailing comment and terminates it with a
// newline so the following comma is never swallowed into the comment.
func elemSuffix(suffix string) string {
	s := strings.Trim(suffix, " \t\n")
	if s != "" {
		s += "\n"
	}
	return s
}

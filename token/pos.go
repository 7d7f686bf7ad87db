package token

import "strconv"

// Pos locates a byte in the scanned document. Line and Col are 1-based.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Col)
}

package format

import (
	"cmp"
	"strings"
)

// Ranks maps configured important keys to their priority; rank 0 is the
// highest. When the configured list repeats a key, the last occurrence
// wins.
type Ranks map[string]int

func RanksOf(keys []string) Ranks {
	r := make(Ranks, len(keys))
	for i, k := range keys {
		r[k] = i
	}
	return r
}

// Compare orders two keys: ranked keys by rank ascending, any ranked key
// before any unranked one, unranked keys lexicographically by raw key text.
func (r Ranks) Compare(a, b string) int {
	ra, aok := r[a]
	rb, bok := r[b]
	switch {
	case aok && bok:
		return cmp.Compare(ra, rb)
	case aok:
		return -1
	case bok:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

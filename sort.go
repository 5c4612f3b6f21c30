package keylist

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// SortByKey returns a copy of pairs stably sorted by key. Entries sharing a
// key keep their original relative order. The input is left untouched.
func SortByKey[K constraints.Ordered, V any](pairs List[K, V]) List[K, V] {
	out := make(List[K, V], len(pairs))
	copy(out, pairs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Key < out[j].Key
	})
	return out
}

package keylist

import "sort"

// Split partitions pairs into the entries whose key is a member of keys and
// those whose key is not. Every input entry lands in exactly one of the two
// results.
//
// The matched result is reordered to follow keys: an entry selected by the
// first key comes before one selected by the second, and so on. When keys
// contains duplicates the first occurrence decides the rank. Entries sharing
// a key keep their original relative order, as does the unmatched result.
func Split[K comparable, V any](pairs List[K, V], keys []K) (matched, unmatched List[K, V]) {
	rank := make(map[K]int, len(keys))
	for i, k := range keys {
		if _, ok := rank[k]; !ok {
			rank[k] = i
		}
	}

	for _, p := range pairs {
		if _, ok := rank[p.Key]; ok {
			matched = append(matched, p)
		} else {
			unmatched = append(unmatched, p)
		}
	}

	// Stable so that duplicate keys keep their relative input order.
	sort.SliceStable(matched, func(i, j int) bool {
		return rank[matched[i].Key] < rank[matched[j].Key]
	})
	return matched, unmatched
}

// Take returns the entries of pairs whose key is a member of keys, reordered
// to follow keys exactly as Split orders its matched result. Keys with no
// entry in pairs contribute nothing; this is never an error.
func Take[K comparable, V any](pairs List[K, V], keys []K) List[K, V] {
	matched, _ := Split(pairs, keys)
	return matched
}

// TakeStrict is Take with a completeness requirement on pairs: every key in
// pairs must be a member of keys. If any entry is left over, TakeStrict
// returns a *UnknownKeyError carrying the offending keys in their original
// relative order, duplicates included.
func TakeStrict[K comparable, V any](pairs List[K, V], keys []K) (List[K, V], error) {
	matched, unmatched := Split(pairs, keys)
	if len(unmatched) > 0 {
		bad := make([]K, len(unmatched))
		for i, p := range unmatched {
			bad[i] = p.Key
		}
		return nil, &UnknownKeyError[K]{Keys: bad}
	}
	return matched, nil
}

// Defaults merges fallback underneath pairs: every key present in pairs keeps
// its value (and position) from pairs, and fallback entries whose key never
// occurs in pairs are prepended in fallback order. Duplicates in pairs are
// preserved; a fallback entry is dropped as soon as its key occurs anywhere
// in pairs.
func Defaults[K comparable, V any](pairs, fallback List[K, V]) List[K, V] {
	present := make(map[K]struct{}, len(pairs))
	for _, p := range pairs {
		present[p.Key] = struct{}{}
	}

	merged := make(List[K, V], 0, len(fallback)+len(pairs))
	for _, p := range fallback {
		if _, ok := present[p.Key]; !ok {
			merged = append(merged, p)
		}
	}
	return append(merged, pairs...)
}

// Map applies fn to every entry and returns the transformed list. Order and
// count are preserved, duplicates included.
func Map[K comparable, V any](pairs List[K, V], fn func(K, V) (K, V)) List[K, V] {
	out := make(List[K, V], len(pairs))
	for i, p := range pairs {
		k, v := fn(p.Key, p.Value)
		out[i] = Pair[K, V]{Key: k, Value: v}
	}
	return out
}

// Reduce left-folds fn over pairs in list order, starting from init. The
// combiner receives the entry first and the carry second.
func Reduce[K comparable, V, A any](pairs List[K, V], init A, fn func(Pair[K, V], A) A) A {
	acc := init
	for _, p := range pairs {
		acc = fn(p, acc)
	}
	return acc
}

// ReduceKeys left-folds fn over Take(pairs, keys): only entries selected by
// keys participate, in keys order. Unlike Reduce, the accumulator comes first
// in both ReduceKeys itself and its combiner, so the same value can flow
// through a chain of independent builder calls.
func ReduceKeys[K comparable, V, A any](acc A, pairs List[K, V], keys []K, fn func(A, Pair[K, V]) A) A {
	for _, p := range Take(pairs, keys) {
		acc = fn(acc, p)
	}
	return acc
}

// Apply combines the value of the first entry for key into acc via fn and
// returns the result. If key has no entry, acc is returned unchanged; a
// missing key is never an error.
//
// The combiner receives the accumulator first, the same shape ApplyDefault
// and ReduceKeys use.
func Apply[K comparable, V, A any](acc A, pairs List[K, V], key K, fn func(A, V) A) A {
	for _, p := range pairs {
		if p.Key == key {
			return fn(acc, p.Value)
		}
	}
	return acc
}

// ApplyDefault is Apply with a fallback value: when key has no entry, def is
// fed through the same combiner instead of acc passing through untouched.
func ApplyDefault[K comparable, V, A any](acc A, pairs List[K, V], key K, def V, fn func(A, V) A) A {
	for _, p := range pairs {
		if p.Key == key {
			return fn(acc, p.Value)
		}
	}
	return fn(acc, def)
}

// Package keylist provides ordered, duplicate-preserving operations over
// associative lists of key/value pairs. A List is an ordered sequence, not a
// hash map: duplicate keys are permitted and survive every operation, and
// entry order is part of each function's contract.
//
// The accumulator-first functions (ReduceKeys, Apply, ApplyDefault) support a
// builder style where one accumulator is threaded through a chain of
// independent calls, each consuming an optional input:
//
//	req := keylist.Apply(newRequest(), opts, "timeout", withTimeout)
//	req = keylist.ApplyDefault(req, opts, "retries", 3, withRetries)
//
// All functions are pure: inputs are never mutated and outputs are freshly
// constructed.
package keylist

// Pair represents a single entry in a List. It consists of a comparable key
// and an associated value.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// List represents an ordered collection of key-value pairs. Duplicate keys are
// allowed; no uniqueness invariant is ever imposed.
type List[K comparable, V any] []Pair[K, V]

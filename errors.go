package keylist

import "fmt"

// UnknownKeyError is returned by TakeStrict when the input list contains keys
// outside the permitted key set. Keys lists the offending keys in the original
// relative order of their entries; an offending key occurring twice in the
// input appears twice here.
type UnknownKeyError[K comparable] struct {
	Keys []K
}

func (e *UnknownKeyError[K]) Error() string {
	return fmt.Sprintf("keylist: unknown keys %v", e.Keys)
}

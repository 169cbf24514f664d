package dict

import "iter"

// Equal reports whether a and b hold the same entries. Only the keys and
// values matter: the order they were inserted in and the state of Push's
// bookkeeping are ignored. A nil Dict equals an empty one.
func Equal[V comparable](a, b *Dict[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.
func EqualFunc[V, W any](a *Dict[V], b *Dict[W], eq func(V, W) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	next, stop := iter.Pull2(b.All())
	defer stop()

	for ka, va := range a.All() {
		kb, vb, ok := next()
		if !ok || !ka.Equals(kb) || !eq(va, vb) {
			return false
		}
	}

	_, _, more := next()

	return !more
}

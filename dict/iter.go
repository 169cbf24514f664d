package dict

import (
	"iter"
)

// Entry is a key with its value, as returned by Entries and Drain.
type Entry[V any] struct {
	Key   Key
	Value V
}

// All returns an iterator over every entry: numeric keys in ascending order
// first, then string keys in lexicographic order. The order is part of the
// contract; array-like data always comes before record-like data.
//
// The Dict must not be modified while an iteration is in progress.
func (d *Dict[V]) All() iter.Seq2[Key, V] {
	return func(yield func(Key, V) bool) {
		for k, v := range d.Nums() {
			if !yield(Num(k), v) {
				return
			}
		}

		for k, v := range d.Strs() {
			if !yield(Str(k), v) {
				return
			}
		}
	}
}

// Values returns an iterator over the values, in the same order as All.
func (d *Dict[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Nums returns an iterator over the numeric entries in ascending key order.
func (d *Dict[V]) Nums() iter.Seq2[uint64, V] {
	return func(yield func(uint64, V) bool) {
		if d == nil {
			return
		}

		for k, v := range d.nums.Seq() {
			if !yield(uint64(k), v) {
				return
			}
		}
	}
}

// Strs returns an iterator over the string entries in lexicographic order.
func (d *Dict[V]) Strs() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if d == nil {
			return
		}

		for k, v := range d.strs.Seq() {
			if !yield(string(k), v) {
				return
			}
		}
	}
}

// Entries returns a snapshot of every entry in iteration order.
func (d *Dict[V]) Entries() []Entry[V] {
	out := make([]Entry[V], 0, d.Len())

	for k, v := range d.All() {
		out = append(out, Entry[V]{Key: k, Value: v})
	}

	return out
}

// Drain returns every entry in iteration order and leaves the Dict empty,
// with Push starting again at key 0.
func (d *Dict[V]) Drain() []Entry[V] {
	out := d.Entries()
	d.Clear()

	return out
}

// DrainValues is Drain without the keys.
func (d *Dict[V]) DrainValues() []V {
	out := make([]V, 0, d.Len())

	for v := range d.Values() {
		out = append(out, v)
	}

	d.Clear()

	return out
}

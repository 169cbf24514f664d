package sortable

// Uint64 is a sortable wrapper type for uint64. Keys sort in ascending
// numeric order.
//
// Example:
//
//	m := tree.New[sortable.Uint64, string]()
//	m.Add(sortable.Uint64(10), "ten")
//	m.Add(sortable.Uint64(2), "two")
//	// Iterating yields: 2, 10
type Uint64 uint64

// Compile-time check that Uint64 implements Sortable[Uint64].
var _ Sortable[Uint64] = (*Uint64)(nil)

// Equals returns true if both values are the same number.
func (u Uint64) Equals(other Uint64) bool {
	return uint64(u) == uint64(other)
}

// LessThan returns true if this value is numerically less than other.
func (u Uint64) LessThan(other Uint64) bool {
	return uint64(u) < uint64(other)
}

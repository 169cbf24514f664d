// Package sortable provides key types with a total order, for use in the
// sorted containers of the tree package.
//
// # Overview
//
// The [Sortable] interface pairs an equality check with a LessThan method.
// Two ready-made implementations cover the key spaces of a dict:
//
//   - [Uint64] orders numerically, so array-like entries iterate by index.
//   - [String] orders byte-wise, so record-like entries iterate
//     lexicographically regardless of locale.
//
// # Usage
//
//	m := tree.New[sortable.String, int]()
//	m.Add(sortable.String("b"), 2)
//	m.Add(sortable.String("a"), 1)
//
//	for k, v := range m.Seq() {
//	    fmt.Println(k, v) // a 1, then b 2
//	}
//
// # Custom keys
//
// Any type can be used as a key by implementing Equals and LessThan. LessThan
// must be a strict weak ordering and must agree with Equals: for any a and b
// exactly one of a.LessThan(b), b.LessThan(a), a.Equals(b) holds.
//
// # Thread Safety
//
// The wrapper types are plain values. The containers that hold them are not
// synchronized.
package sortable

// Package tree provides Map, an ordered map backed by a red-black tree.
//
// Red-black trees enforce the following properties to stay balanced:
//  1. Every node is either red or black
//  2. The root is always black
//  3. All leaves (nil nodes) are considered black
//  4. Red nodes cannot have red children
//  5. Every path from a node to its leaves contains the same number of black nodes
//
// Together these bound the height by 2*log2(n+1), so lookups, insertions and
// deletions are O(log n).
package tree

import (
	"fmt"
	"iter"

	"github.com/amp-labs/amp-dict/sortable"
)

// color represents the color of a red-black tree node.
type color bool

const (
	// Black is true so that a zero-value node is red, which is what a freshly
	// inserted node must be.
	black, red color = true, false
)

// String returns a human-readable representation of the node color.
func (c color) String() string {
	if c == black {
		return "Black"
	}

	return "Red"
}

type node[K sortable.Sortable[K], V any] struct {
	key    K
	value  V
	color  color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// String returns a string representation of the node showing its key and color.
func (n *node[K, V]) String() string {
	return fmt.Sprintf("(%#v : %s)", n.key, n.color)
}

// Map is an ordered map from K to V. Iteration visits keys in ascending
// order as defined by K's LessThan.
//
// The zero value is an empty map ready to use. A Map must not be copied
// after first use; use Clone instead.
//
// Thread-safety: Map is not safe for concurrent use. Concurrent readers are
// fine as long as no goroutine mutates the map at the same time.
type Map[K sortable.Sortable[K], V any] struct {
	root *node[K, V]
	size int
}

// New creates a new empty map.
func New[K sortable.Sortable[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// find returns the node holding key, or nil.
func (m *Map[K, V]) find(key K) *node[K, V] {
	cur := m.root

	for cur != nil {
		switch {
		case key.Equals(cur.key):
			return cur
		case key.LessThan(cur.key):
			cur = cur.left
		default:
			cur = cur.right
		}
	}

	return nil
}

// Get retrieves the value associated with key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.value, true
	}

	var zero V

	return zero, false
}

// GetPtr returns a pointer to the stored value for key, or nil if the key is
// absent. The pointer stays valid until the key is removed or the map is
// cleared.
func (m *Map[K, V]) GetPtr(key K) *V {
	if n := m.find(key); n != nil {
		return &n.value
	}

	return nil
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Add inserts or updates a key-value pair. It returns true if key was not
// present before.
func (m *Map[K, V]) Add(key K, value V) bool {
	var parent *node[K, V]

	cur := m.root
	goLeft := false

	for cur != nil {
		if key.Equals(cur.key) {
			cur.value = value

			return false
		}

		parent = cur
		goLeft = key.LessThan(cur.key)

		if goLeft {
			cur = cur.left
		} else {
			cur = cur.right
		}
	}

	added := &node[K, V]{key: key, value: value, color: red, parent: parent}

	switch {
	case parent == nil:
		m.root = added
	case goLeft:
		parent.left = added
	default:
		parent.right = added
	}

	m.size++
	m.fixupPut(added)

	return true
}

// Remove deletes key from the map and returns the value it held. If the key
// is absent, Remove returns the zero value and false.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	target := m.find(key)
	if target == nil {
		var zero V

		return zero, false
	}

	value := target.value
	m.deleteNode(target)
	m.size--

	return value, true
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.size = 0
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (K, V, bool) {
	if m.root == nil {
		var (
			k K
			v V
		)

		return k, v, false
	}

	n := minimum(m.root)

	return n.key, n.value, true
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (K, V, bool) {
	if m.root == nil {
		var (
			k K
			v V
		)

		return k, v, false
	}

	n := maximum(m.root)

	return n.key, n.value, true
}

// Seq returns an iterator over the entries in ascending key order. It is
// compatible with range-over-func:
//
//	for k, v := range m.Seq() { ... }
//
// The map must not be modified while an iteration is in progress.
func (m *Map[K, V]) Seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.root == nil {
			return
		}

		for n := minimum(m.root); n != nil; n = successor(n) {
			if !yield(n.key, n.value) {
				return
			}
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.Seq() {
			if !yield(k) {
				return
			}
		}
	}
}

// Clone returns a shallow copy of the map. Keys and values are copied by
// assignment; the tree shape and colors are preserved, so this is O(n).
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{
		root: cloneNode(m.root, nil),
		size: m.size,
	}
}

func cloneNode[K sortable.Sortable[K], V any](n, parent *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}

	c := &node[K, V]{key: n.key, value: n.value, color: n.color, parent: parent}
	c.left = cloneNode(n.left, c)
	c.right = cloneNode(n.right, c)

	return c
}

func minimum[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}

	return n
}

func maximum[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}

	return n
}

// successor returns the in-order successor of n, or nil if n is the last node.
func successor[K sortable.Sortable[K], V any](n *node[K, V]) *node[K, V] {
	if n.right != nil {
		return minimum(n.right)
	}

	parent := n.parent
	for parent != nil && n == parent.right {
		n = parent
		parent = parent.parent
	}

	return parent
}

// isRed returns true if the node is red. nil nodes are black by convention.
func isRed[K sortable.Sortable[K], V any](n *node[K, V]) bool {
	return n != nil && n.color == red
}

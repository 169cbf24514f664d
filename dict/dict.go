package dict

import (
	"errors"
	"fmt"
	"math"

	"github.com/amp-labs/amp-dict/assert"
	"github.com/amp-labs/amp-dict/sortable"
	"github.com/amp-labs/amp-dict/tree"
)

var (
	// ErrKeyNotFound is wrapped in the panic raised by MustGet.
	ErrKeyNotFound = errors.New("key not in dict")

	// ErrKeySpaceExhausted is raised when Push finds every numeric key up to
	// math.MaxUint64 occupied.
	ErrKeySpaceExhausted = errors.New("numeric key space exhausted")
)

// Dict maps numbers or strings to values of type V.
//
// Numeric entries model arrays: Push appends at the lowest free index, and
// numeric keys iterate in ascending order. String entries model records and
// iterate in byte-wise lexicographic order, after all numeric entries.
//
// The zero value is an empty Dict ready to use. Read-only methods also accept
// a nil *Dict, which behaves like an empty one.
//
// Thread-safety: a Dict has a single owner. Concurrent reads are fine; any
// mutation needs external synchronization.
type Dict[V any] struct {
	nums tree.Map[sortable.Uint64, V]
	strs tree.Map[sortable.String, V]

	// lowestFree is a lower bound on the lowest unused numeric key: every key
	// in [0, lowestFree) is occupied. It may lag behind (Push scans forward
	// from it) but must never skip past a free key.
	lowestFree uint64
}

// NumEntry is a numeric key with its value.
type NumEntry[V any] struct {
	Key   uint64
	Value V
}

// New creates an empty Dict.
func New[V any]() *Dict[V] {
	return &Dict[V]{}
}

// Len returns the total number of entries.
func (d *Dict[V]) Len() int {
	if d == nil {
		return 0
	}

	return d.nums.Size() + d.strs.Size()
}

// IsEmpty reports whether the Dict has no entries.
func (d *Dict[V]) IsEmpty() bool {
	return d.Len() == 0
}

// First returns the numeric entry with the lowest key. String entries have no
// array position and are never considered.
func (d *Dict[V]) First() (NumEntry[V], bool) {
	if d == nil {
		return NumEntry[V]{}, false
	}

	k, v, ok := d.nums.Min()

	return NumEntry[V]{Key: uint64(k), Value: v}, ok
}

// Last returns the numeric entry with the highest key.
func (d *Dict[V]) Last() (NumEntry[V], bool) {
	if d == nil {
		return NumEntry[V]{}, false
	}

	k, v, ok := d.nums.Max()

	return NumEntry[V]{Key: uint64(k), Value: v}, ok
}

// Get returns the value stored under key.
func (d *Dict[V]) Get(key Key) (V, bool) {
	if d == nil {
		var zero V

		return zero, false
	}

	if key.kind == numKey {
		return d.nums.Get(sortable.Uint64(key.num))
	}

	return d.strs.Get(sortable.String(key.str))
}

// GetPtr returns a pointer to the value stored under key so it can be
// modified in place, or nil if there is none. The pointer is valid until the
// key is removed.
func (d *Dict[V]) GetPtr(key Key) *V {
	if d == nil {
		return nil
	}

	if key.kind == numKey {
		return d.nums.GetPtr(sortable.Uint64(key.num))
	}

	return d.strs.GetPtr(sortable.String(key.str))
}

// Has reports whether key is present.
func (d *Dict[V]) Has(key Key) bool {
	return d.GetPtr(key) != nil
}

// MustGet returns the value stored under key and panics if there is none.
// Only use it where earlier logic guarantees the key exists; user-facing
// lookups go through Get.
func (d *Dict[V]) MustGet(key Key) V {
	ptr := d.GetPtr(key)
	if ptr == nil {
		panic(fmt.Errorf("%w: %s", ErrKeyNotFound, key))
	}

	return *ptr
}

// Insert stores value under key, replacing any previous value.
func (d *Dict[V]) Insert(key Key, value V) {
	if key.kind == strKey {
		d.strs.Add(sortable.String(key.Owned().str), value)

		return
	}

	d.nums.Add(sortable.Uint64(key.num), value)

	// Only the exact hit is cheap to account for. A key above the mark
	// leaves a gap that Push finds later.
	if key.num == d.lowestFree && key.num != math.MaxUint64 {
		d.lowestFree++
	}

	d.checkLowestFree()
}

// Remove deletes key and returns the value it held. Removing a missing key
// returns the zero value and false and changes nothing.
func (d *Dict[V]) Remove(key Key) (V, bool) {
	if key.kind == strKey {
		return d.strs.Remove(sortable.String(key.str))
	}

	d.lowestFree = min(d.lowestFree, key.num)

	return d.nums.Remove(sortable.Uint64(key.num))
}

// Push appends value at the lowest free numeric key at or above the mark and
// returns that key. Keys freed by Remove are reused; keys taken by Insert
// are skipped.
func (d *Dict[V]) Push(value V) uint64 {
	d.checkLowestFree()

	slot := d.lowestFree
	for d.nums.Contains(sortable.Uint64(slot)) {
		if slot == math.MaxUint64 {
			panic(ErrKeySpaceExhausted)
		}

		slot++
	}

	d.nums.Add(sortable.Uint64(slot), value)

	d.lowestFree = slot
	if slot != math.MaxUint64 {
		d.lowestFree++
	}

	return slot
}

// Clear removes every entry.
func (d *Dict[V]) Clear() {
	d.nums.Clear()
	d.strs.Clear()
	d.lowestFree = 0
}

// Clone returns a shallow copy: values are copied by assignment.
func (d *Dict[V]) Clone() *Dict[V] {
	if d == nil {
		return New[V]()
	}

	return &Dict[V]{
		nums:       *d.nums.Clone(),
		strs:       *d.strs.Clone(),
		lowestFree: d.lowestFree,
	}
}

// checkLowestFree asserts that the key right below the mark is occupied,
// which is what keeps Push from handing out a key below a free one.
func (d *Dict[V]) checkLowestFree() {
	if d.lowestFree == 0 {
		return
	}

	assert.True(d.nums.Contains(sortable.Uint64(d.lowestFree-1)),
		"dict: low-water mark %d skips free key %d", d.lowestFree, d.lowestFree-1)
}

// Package hashing lets values write themselves into a hash.Hash so that
// structurally equal values produce equal digests.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"math"

	"github.com/zeebo/xxh3"
)

// ErrUnsupportedType is returned when attempting to hash an unsupported type.
var ErrUnsupportedType = errors.New("unsupported type for hashing")

// HashFunc is a function that takes a Hashable object
// and returns a string representation of its hashing.
// As an example, the Sha256 function is a HashFunc.
type HashFunc func(hashable Hashable) (string, error)

// Hashable is an interface that allows an object to update
// a hash.Hash with its contents.
type Hashable interface {
	UpdateHash(h hash.Hash) error
}

// Sha256 returns the SHA256 hashing of the given Hashable
// as a hex-encoded string. If the Hashable fails to
// update the hashing, an error is returned.
func Sha256(hashable Hashable) (string, error) {
	h := sha256.New()

	if err := hashable.UpdateHash(h); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// Xxh3 returns the 64-bit XXH3 digest of the given Hashable. It is much
// cheaper than Sha256 and meant for in-process use (hash tables, dedup),
// not for anything that must resist collisions on purpose.
func Xxh3(hashable Hashable) (uint64, error) {
	h := xxh3.New()

	if err := hashable.UpdateHash(h); err != nil {
		return 0, err
	}

	return h.Sum64(), nil
}

type HashableString string

func (s HashableString) String() string {
	return string(s)
}

// UpdateHash writes the length followed by the bytes, so that adjacent
// strings can't run into each other ("ab","c" vs "a","bc").
func (s HashableString) UpdateHash(h hash.Hash) error {
	if err := HashableUint64(len(s)).UpdateHash(h); err != nil {
		return err
	}

	_, err := h.Write([]byte(s))

	return err
}

func (s HashableString) Equals(other HashableString) bool {
	return s == other
}

type HashableBytes []byte

func (b HashableBytes) UpdateHash(h hash.Hash) error {
	return HashableString(b).UpdateHash(h)
}

// HashableUint64 writes itself as 8 big-endian bytes.
type HashableUint64 uint64

func (u HashableUint64) UpdateHash(h hash.Hash) error {
	var buf [8]byte

	binary.BigEndian.PutUint64(buf[:], uint64(u))

	_, err := h.Write(buf[:])

	return err
}

type HashableInt64 int64

func (i HashableInt64) UpdateHash(h hash.Hash) error {
	return HashableUint64(uint64(i)).UpdateHash(h) //nolint:gosec // bit pattern is what we hash
}

// HashableFloat64 hashes the IEEE-754 bits. All NaNs hash alike and -0 hashes
// like +0, matching ==.
type HashableFloat64 float64

func (f HashableFloat64) UpdateHash(h hash.Hash) error {
	val := float64(f)

	switch {
	case math.IsNaN(val):
		val = math.NaN()
	case val == 0:
		val = 0
	}

	return HashableUint64(math.Float64bits(val)).UpdateHash(h)
}

type HashableBool bool

func (b HashableBool) UpdateHash(h hash.Hash) error {
	var buf [1]byte
	if b {
		buf[0] = 1
	}

	_, err := h.Write(buf[:])

	return err
}

// Any hashes value if it implements Hashable or is one of the primitive types
// (bool, integers, floats, string, []byte). Anything else yields
// ErrUnsupportedType.
func Any(h hash.Hash, value any) error { //nolint:cyclop
	switch typed := value.(type) {
	case Hashable:
		return typed.UpdateHash(h)
	case bool:
		return HashableBool(typed).UpdateHash(h)
	case int:
		return HashableInt64(typed).UpdateHash(h)
	case int8:
		return HashableInt64(typed).UpdateHash(h)
	case int16:
		return HashableInt64(typed).UpdateHash(h)
	case int32:
		return HashableInt64(typed).UpdateHash(h)
	case int64:
		return HashableInt64(typed).UpdateHash(h)
	case uint:
		return HashableUint64(typed).UpdateHash(h)
	case uint8:
		return HashableUint64(typed).UpdateHash(h)
	case uint16:
		return HashableUint64(typed).UpdateHash(h)
	case uint32:
		return HashableUint64(typed).UpdateHash(h)
	case uint64:
		return HashableUint64(typed).UpdateHash(h)
	case float32:
		return HashableFloat64(typed).UpdateHash(h)
	case float64:
		return HashableFloat64(typed).UpdateHash(h)
	case string:
		return HashableString(typed).UpdateHash(h)
	case []byte:
		return HashableBytes(typed).UpdateHash(h)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, value)
	}
}

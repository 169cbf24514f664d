package dict

import (
	"hash"
	"log/slog"
	"strconv"
	"strings"
	"unsafe"

	"github.com/amp-labs/amp-dict/hashing"
)

type keyKind uint8

const (
	numKey keyKind = iota
	strKey
)

// Key addresses an entry of a Dict. It is either a number (array position)
// or a string (record field). The two variants never compare equal, even
// when the string spells a number: Str("10") and Num(10) are different keys.
//
// The zero Key is Num(0).
type Key struct {
	kind     keyKind
	borrowed bool
	num      uint64
	str      string
}

// KeyLike lists the Go types that convert directly into a Key.
type KeyLike interface {
	uint | uint8 | uint16 | uint32 | uint64 | string
}

// Num returns a numeric key.
func Num(n uint64) Key {
	return Key{kind: numKey, num: n}
}

// Str returns a string key.
func Str(s string) Key {
	return Key{kind: strKey, str: s}
}

// KeyOf converts an unsigned integer or a string into a Key.
func KeyOf[T KeyLike](v T) Key {
	switch typed := any(v).(type) {
	case uint:
		return Num(uint64(typed))
	case uint8:
		return Num(uint64(typed))
	case uint16:
		return Num(uint64(typed))
	case uint32:
		return Num(uint64(typed))
	case uint64:
		return Num(typed)
	case string:
		return Str(typed)
	}

	panic("unreachable")
}

// Borrow returns a string key that aliases b instead of copying it. It is
// meant for lookups with bytes the caller already holds (Get, GetPtr, Has,
// Remove). The key is only valid while b is left unmodified; Insert copies
// it, so a borrowed key never ends up stored in a Dict.
func Borrow(b []byte) Key {
	return Key{
		kind:     strKey,
		borrowed: true,
		str:      unsafe.String(unsafe.SliceData(b), len(b)),
	}
}

// IsNum reports whether k is a numeric key.
func (k Key) IsNum() bool {
	return k.kind == numKey
}

// IsStr reports whether k is a string key.
func (k Key) IsStr() bool {
	return k.kind == strKey
}

// IsBorrowed reports whether k aliases caller-owned bytes (see Borrow).
func (k Key) IsBorrowed() bool {
	return k.borrowed
}

// AsNum returns the number of a numeric key.
func (k Key) AsNum() (uint64, bool) {
	return k.num, k.kind == numKey
}

// AsStr returns the text of a string key.
func (k Key) AsStr() (string, bool) {
	return k.str, k.kind == strKey
}

// Owned returns a key that does not alias any caller memory.
func (k Key) Owned() Key {
	if !k.borrowed {
		return k
	}

	return Str(strings.Clone(k.str))
}

// Equals reports whether both keys are the same variant with the same value.
// Borrowed and owned keys with equal text are equal.
func (k Key) Equals(other Key) bool {
	if k.kind != other.kind {
		return false
	}

	if k.kind == numKey {
		return k.num == other.num
	}

	return k.str == other.str
}

// Compare orders two keys of the same variant: numbers numerically, strings
// byte-wise. Keys of different variants have no defined order, and ok is
// false.
func (k Key) Compare(other Key) (cmp int, ok bool) {
	if k.kind != other.kind {
		return 0, false
	}

	if k.kind == numKey {
		switch {
		case k.num < other.num:
			return -1, true
		case k.num > other.num:
			return 1, true
		default:
			return 0, true
		}
	}

	return strings.Compare(k.str, other.str), true
}

// String renders the key the way Dict's debug output does: numbers bare,
// strings bare unless they contain a space, in which case they are wrapped
// in double quotes.
func (k Key) String() string {
	if k.kind == strKey && strings.Contains(k.str, " ") {
		return `"` + k.str + `"`
	}

	return k.text()
}

func (k Key) text() string {
	if k.kind == numKey {
		return strconv.FormatUint(k.num, 10)
	}

	return k.str
}

// LogValue implements slog.LogValuer.
func (k Key) LogValue() slog.Value {
	if k.kind == numKey {
		return slog.Uint64Value(k.num)
	}

	return slog.StringValue(k.str)
}

// UpdateHash implements hashing.Hashable. The variant is hashed too, so
// Num(10) and Str("10") hash differently.
func (k Key) UpdateHash(h hash.Hash) error {
	if _, err := h.Write([]byte{byte(k.kind)}); err != nil {
		return err
	}

	if k.kind == numKey {
		return hashing.HashableUint64(k.num).UpdateHash(h)
	}

	return hashing.HashableString(k.str).UpdateHash(h)
}

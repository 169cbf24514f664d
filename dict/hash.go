package dict

import (
	"fmt"
	"hash"

	"github.com/amp-labs/amp-dict/hashing"
)

// UpdateHash implements hashing.Hashable. It feeds the entry count and then
// every key and value, in iteration order, so dicts that are Equal hash
// alike. Values must implement hashing.Hashable or be a primitive type
// accepted by hashing.Any; otherwise hashing.ErrUnsupportedType is returned.
func (d *Dict[V]) UpdateHash(h hash.Hash) error {
	if err := hashing.HashableUint64(d.Len()).UpdateHash(h); err != nil {
		return err
	}

	for key, value := range d.All() {
		if err := key.UpdateHash(h); err != nil {
			return err
		}

		if err := hashing.Any(h, value); err != nil {
			return fmt.Errorf("hashing value at key %s: %w", key, err)
		}
	}

	return nil
}

// Hash returns the 64-bit XXH3 digest of the Dict.
func (d *Dict[V]) Hash() (uint64, error) {
	return hashing.Xxh3(d)
}

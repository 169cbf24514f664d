package dict_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/amp-labs/amp-dict/dict"
	"github.com/amp-labs/amp-dict/syntax"
	"github.com/stretchr/testify/assert"
)

func TestSpannedEntry(t *testing.T) {
	t.Parallel()

	keySpan := syntax.NewSpan(1, 0, 4)
	value := syntax.NewSpanned("42", syntax.NewSpan(1, 6, 8))

	t.Run("constructors", func(t *testing.T) {
		t.Parallel()

		entry := dict.NewSpannedEntry(keySpan, value)
		assert.Equal(t, keySpan, entry.Key)
		assert.Equal(t, value, entry.Value)

		positional := dict.SpannedEntryOf(value)
		assert.Equal(t, value.Span, positional.Key)
	})

	t.Run("map keeps spans", func(t *testing.T) {
		t.Parallel()

		entry := dict.NewSpannedEntry(keySpan, value)
		mapped := dict.MapEntry(entry, func(s string) int {
			n, _ := strconv.Atoi(s)

			return n
		})

		assert.Equal(t, 42, mapped.Value.V)
		assert.Equal(t, keySpan, mapped.Key)
		assert.Equal(t, value.Span, mapped.Value.Span)
	})

	t.Run("as ref aliases the value", func(t *testing.T) {
		t.Parallel()

		entry := dict.NewSpannedEntry(keySpan, value)
		ref := dict.AsRefEntry(&entry)
		*ref.Value.V = "43"

		assert.Equal(t, "43", entry.Value.V)
		assert.Equal(t, keySpan, ref.Key)
	})

	t.Run("format", func(t *testing.T) {
		t.Parallel()

		entry := dict.NewSpannedEntry(keySpan, value)

		assert.Equal(t, `"42"`, fmt.Sprintf("%v", entry))
		assert.Equal(t, `key<0..4> "42" <6..8>`, fmt.Sprintf("%#v", entry))
	})

	t.Run("stored in a dict", func(t *testing.T) {
		t.Parallel()

		d := dict.New[dict.SpannedEntry[string]]()
		d.Push(dict.SpannedEntryOf(value))

		ptr := d.GetPtr(dict.Num(0))
		ptr.Value.V = "changed"

		assert.Equal(t, "changed", d.MustGet(dict.Num(0)).Value.V)
	})
}

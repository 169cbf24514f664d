package sortable_test

import (
	"testing"

	"github.com/amp-labs/amp-dict/sortable"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  int
		want int
	}{
		{name: "uint64 less", got: sortable.Compare[sortable.Uint64](1, 2), want: -1},
		{name: "uint64 equal", got: sortable.Compare[sortable.Uint64](7, 7), want: 0},
		{name: "uint64 greater", got: sortable.Compare[sortable.Uint64](10, 9), want: 1},
		{name: "string byte-wise", got: sortable.Compare[sortable.String]("Z", "a"), want: -1},
		{name: "numeric-looking strings", got: sortable.Compare[sortable.String]("10", "9"), want: -1},
		{name: "string equal", got: sortable.Compare[sortable.String]("x", "x"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestUint64_LargeValues(t *testing.T) {
	t.Parallel()

	big := sortable.Uint64(^uint64(0))

	assert.True(t, sortable.Uint64(0).LessThan(big))
	assert.False(t, big.LessThan(sortable.Uint64(1)))
	assert.True(t, big.Equals(sortable.Uint64(^uint64(0))))
}

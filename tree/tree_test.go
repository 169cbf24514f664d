package tree_test

import (
	"fmt"
	"testing"

	"github.com/amp-labs/amp-dict/sortable"
	"github.com/amp-labs/amp-dict/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect[K sortable.Sortable[K], V any](m *tree.Map[K, V]) ([]K, []V) {
	var (
		keys   []K
		values []V
	)

	for k, v := range m.Seq() {
		keys = append(keys, k)
		values = append(values, v)
	}

	return keys, values
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("creates empty map", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, string]()
		require.NotNil(t, m)
		assert.Equal(t, 0, m.Size())
	})

	t.Run("zero value is usable", func(t *testing.T) {
		t.Parallel()

		var m tree.Map[sortable.String, int]

		assert.True(t, m.Add("a", 1))
		assert.Equal(t, 1, m.Size())
	})
}

func TestMap_Add(t *testing.T) {
	t.Parallel()

	t.Run("reports new keys", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, string]()
		assert.True(t, m.Add(1, "one"))
		assert.False(t, m.Add(1, "uno"))
		assert.Equal(t, 1, m.Size())

		val, found := m.Get(1)
		assert.True(t, found)
		assert.Equal(t, "uno", val)
	})

	t.Run("maintains sorted order", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, string]()

		for _, k := range []uint64{5, 2, 8, 1, 9, 3, 7, 4, 6} {
			m.Add(sortable.Uint64(k), fmt.Sprintf("val%d", k))
		}

		keys, values := collect(m)
		assert.Equal(t, []sortable.Uint64{1, 2, 3, 4, 5, 6, 7, 8, 9}, keys)
		assert.Equal(t, "val1", values[0])
		assert.Equal(t, "val9", values[8])
	})

	t.Run("string keys sort byte-wise", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.String, int]()

		for i, k := range []string{"b", "a", "B", "10", "9", "sp ace"} {
			m.Add(sortable.String(k), i)
		}

		keys, _ := collect(m)
		assert.Equal(t, []sortable.String{"10", "9", "B", "a", "b", "sp ace"}, keys)
	})
}

func TestMap_GetPtr(t *testing.T) {
	t.Parallel()

	m := tree.New[sortable.Uint64, int]()
	m.Add(3, 30)

	assert.Nil(t, m.GetPtr(4))

	ptr := m.GetPtr(3)
	require.NotNil(t, ptr)

	*ptr = 31

	val, found := m.Get(3)
	assert.True(t, found)
	assert.Equal(t, 31, val)
}

func TestMap_Remove(t *testing.T) {
	t.Parallel()

	t.Run("returns removed value", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.String, string]()
		m.Add("k", "v")

		val, found := m.Remove("k")
		assert.True(t, found)
		assert.Equal(t, "v", val)
		assert.Equal(t, 0, m.Size())
		assert.False(t, m.Contains("k"))
	})

	t.Run("missing key is a no-op", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.String, string]()
		m.Add("k", "v")

		val, found := m.Remove("other")
		assert.False(t, found)
		assert.Empty(t, val)
		assert.Equal(t, 1, m.Size())
	})

	t.Run("keeps order after removing inner nodes", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, uint64]()

		for i := range uint64(20) {
			m.Add(sortable.Uint64(i), i)
		}

		for i := uint64(0); i < 20; i += 3 {
			_, found := m.Remove(sortable.Uint64(i))
			require.True(t, found)
		}

		keys, _ := collect(m)
		assert.Equal(t, []sortable.Uint64{1, 2, 4, 5, 7, 8, 10, 11, 13, 14, 16, 17, 19}, keys)
		assert.Equal(t, 13, m.Size())
	})
}

func TestMap_MinMax(t *testing.T) {
	t.Parallel()

	m := tree.New[sortable.Uint64, string]()

	_, _, found := m.Min()
	assert.False(t, found)

	_, _, found = m.Max()
	assert.False(t, found)

	m.Add(4, "four")
	m.Add(2, "two")
	m.Add(9, "nine")

	k, v, found := m.Min()
	assert.True(t, found)
	assert.Equal(t, sortable.Uint64(2), k)
	assert.Equal(t, "two", v)

	k, v, found = m.Max()
	assert.True(t, found)
	assert.Equal(t, sortable.Uint64(9), k)
	assert.Equal(t, "nine", v)
}

func TestMap_Seq(t *testing.T) {
	t.Parallel()

	t.Run("empty map yields nothing", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, int]()
		keys, _ := collect(m)
		assert.Empty(t, keys)
	})

	t.Run("stops early", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, int]()
		for i := range 10 {
			m.Add(sortable.Uint64(i), i)
		}

		count := 0

		for range m.Seq() {
			count++
			if count == 3 {
				break
			}
		}

		assert.Equal(t, 3, count)
	})

	t.Run("is restartable", func(t *testing.T) {
		t.Parallel()

		m := tree.New[sortable.Uint64, int]()
		m.Add(1, 1)
		m.Add(2, 2)

		seq := m.Seq()
		first, second := 0, 0

		for range seq {
			first++
		}

		for range seq {
			second++
		}

		assert.Equal(t, 2, first)
		assert.Equal(t, 2, second)
	})
}

func TestMap_Keys(t *testing.T) {
	t.Parallel()

	m := tree.New[sortable.String, int]()
	for i, k := range []sortable.String{"b", "", "c", "a"} {
		m.Add(k, i)
	}

	var keys []sortable.String

	for k := range m.Keys() {
		keys = append(keys, k)
		if len(keys) == 3 {
			break
		}
	}

	assert.Equal(t, []sortable.String{"", "a", "b"}, keys)

	var empty tree.Map[sortable.Uint64, int]
	for range empty.Keys() {
		t.Fatal("empty map yielded a key")
	}
}

func TestMap_Clear(t *testing.T) {
	t.Parallel()

	m := tree.New[sortable.Uint64, int]()
	m.Add(1, 1)
	m.Add(2, 2)
	m.Clear()

	assert.Equal(t, 0, m.Size())
	assert.False(t, m.Contains(1))

	m.Add(3, 3)
	assert.Equal(t, 1, m.Size())
}

func TestMap_Clone(t *testing.T) {
	t.Parallel()

	m := tree.New[sortable.String, int]()
	m.Add("a", 1)
	m.Add("b", 2)

	cloned := m.Clone()
	cloned.Add("c", 3)
	cloned.Remove("a")

	origKeys, _ := collect(m)
	clonedKeys, _ := collect(cloned)

	assert.Equal(t, []sortable.String{"a", "b"}, origKeys)
	assert.Equal(t, []sortable.String{"b", "c"}, clonedKeys)
}

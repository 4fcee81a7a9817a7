package hashmap_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakov/gravl/hashmap"
)

func TestNew_NilConverter(t *testing.T) {
	_, err := hashmap.New[int](nil)
	assert.ErrorIs(t, err, hashmap.ErrNilConverter)
}

func TestInsertSearchDelete_Basic(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)

	require.Nil(t, m.Insert(7, 70, -1))
	require.Nil(t, m.Insert(8, 80, 7))
	assert.Equal(t, 2, m.Len())

	e, ok := m.Search(7)
	require.True(t, ok)
	assert.Equal(t, int64(70), e.Value)
	assert.Equal(t, int64(-1), e.Aux)

	assert.True(t, m.Delete(7))
	assert.False(t, m.Delete(7))
	_, ok = m.Search(7)
	assert.False(t, ok)
	assert.Equal(t, 1, m.Len())
}

func TestInsert_ReplaceReturnsDisplaced(t *testing.T) {
	m, err := hashmap.New(hashmap.StringKey)
	require.NoError(t, err)

	require.Nil(t, m.Insert("a", 1, 0))
	old := m.Insert("a", 2, 9)
	require.NotNil(t, old)
	assert.Equal(t, int64(1), old.Value)
	assert.Equal(t, 1, m.Len(), "replacement must not grow the map")

	e, ok := m.Search("a")
	require.True(t, ok)
	assert.Equal(t, int64(2), e.Value)
	assert.Equal(t, int64(9), e.Aux)
}

func TestResize_DoublingAndHalving(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	require.Equal(t, 8, m.Cap())

	// Population hitting the bucket count doubles the table.
	for i := 0; i < 8; i++ {
		m.Insert(i, int64(i), 0)
	}
	assert.Equal(t, 16, m.Cap())

	for i := 8; i < 16; i++ {
		m.Insert(i, int64(i), 0)
	}
	assert.Equal(t, 32, m.Cap())

	// Every entry survives the rehashes.
	for i := 0; i < 16; i++ {
		e, ok := m.Search(i)
		require.True(t, ok, "key %d lost in resize", i)
		assert.Equal(t, int64(i), e.Value)
	}

	// Dropping to a quarter of the bucket count halves; the floor of 8
	// is never crossed.
	for i := 15; i >= 8; i-- {
		m.Delete(i)
	}
	assert.Equal(t, 16, m.Cap())
	for i := 7; i >= 0; i-- {
		m.Delete(i)
	}
	assert.Equal(t, 8, m.Cap())
	assert.Equal(t, 0, m.Len())
}

func TestDeleteEntry_ByHandle(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		m.Insert(i, int64(i), 0)
	}
	e, ok := m.Search(3)
	require.True(t, ok)

	require.NoError(t, m.DeleteEntry(e))
	assert.Equal(t, 5, m.Len())
	_, ok = m.Search(3)
	assert.False(t, ok)

	// A second delete through the same stale handle is detectable: the
	// unlinked entry claims to head a bucket it no longer heads.
	assert.ErrorIs(t, m.DeleteEntry(e), hashmap.ErrNotMember)
	assert.ErrorIs(t, m.DeleteEntry(nil), hashmap.ErrNotMember)
	assert.Equal(t, 5, m.Len())
}

func TestClear_ResetsToFloor(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	for i := 0; i < 40; i++ {
		m.Insert(i, 0, 0)
	}
	require.Greater(t, m.Cap(), 8)

	m.Clear()
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 8, m.Cap())
	_, ok := m.Search(0)
	assert.False(t, ok)
}

func TestEach_VisitsAllAndStopsEarly(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		m.Insert(i, int64(i*i), 0)
	}

	seen := map[int]int64{}
	m.Each(func(e *hashmap.Entry[int]) bool {
		seen[e.Key] = e.Value
		return true
	})
	if len(seen) != 10 {
		t.Fatalf("Each visited %d entries, want 10", len(seen))
	}
	for i := 0; i < 10; i++ {
		if seen[i] != int64(i*i) {
			t.Errorf("key %d: got %d, want %d", i, seen[i], i*i)
		}
	}

	n := 0
	m.Each(func(*hashmap.Entry[int]) bool { n++; return false })
	assert.Equal(t, 1, n, "false from fn must stop iteration")
}

func TestKeyConverters_CanonicalForms(t *testing.T) {
	assert.Equal(t, "hello", hashmap.StringKey("hello"))
	assert.Equal(t, "-42", hashmap.IntKey(-42))
	assert.Equal(t, "3.14000000", hashmap.FloatKey(3.14))
	assert.Equal(t, "0.00000000", hashmap.FloatKey(0))
}

func TestFloatKeys_EndToEnd(t *testing.T) {
	m, err := hashmap.New(hashmap.FloatKey)
	require.NoError(t, err)

	m.Insert(1.5, 15, 0)
	m.Insert(2.25, 225, 0)
	e, ok := m.Search(1.5)
	require.True(t, ok)
	assert.Equal(t, int64(15), e.Value)
	assert.True(t, m.Delete(2.25))
}

// Mutating a searched entry must be visible on the next lookup; the
// traversal packages rely on this to update depth/pred in place.
func TestEntry_MutableInPlace(t *testing.T) {
	m, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	m.Insert(1, 0, -1)

	e, _ := m.Search(1)
	e.Value = 5
	e.Aux = 3

	e2, _ := m.Search(1)
	assert.Equal(t, int64(5), e2.Value)
	assert.Equal(t, int64(3), e2.Aux)
}

func TestString_DumpShape(t *testing.T) {
	m, err := hashmap.New(hashmap.StringKey)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		m.Insert(strconv.Itoa(i), int64(i), 0)
	}
	s := m.String()
	assert.Contains(t, s, "hashmap: 3/8")
	assert.Contains(t, s, "] -> ")
	assert.Contains(t, s, "\\")
}

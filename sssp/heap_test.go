package sssp

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tbalakov/gravl/hashmap"
)

func TestDistHeap_ExtractsInDistanceOrder(t *testing.T) {
	dist, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	h, err := newDistHeap(dist)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(42))
	want := make([]int64, 0, 50)
	for id := 0; id < 50; id++ {
		d := int64(rng.Intn(1000))
		dist.Insert(id, d, rootPred)
		h.push(id)
		want = append(want, d)
	}
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })

	for i := 0; h.len() > 0; i++ {
		id := h.extractMin()
		e, ok := dist.Search(id)
		require.True(t, ok)
		require.Equal(t, want[i], e.Value, "extraction %d", i)
	}
}

func TestDistHeap_DecreaseKeySiftsUp(t *testing.T) {
	dist, err := hashmap.New(hashmap.IntKey)
	require.NoError(t, err)
	h, err := newDistHeap(dist)
	require.NoError(t, err)

	for id, d := range []int64{10, 20, 30, 40, 50} {
		dist.Insert(id, d, rootPred)
		h.push(id)
	}

	// Shrink the largest key below the root and sift.
	e, _ := dist.Search(4)
	e.Value = 1
	h.decrease(4)
	require.Equal(t, 4, h.extractMin())
	require.Equal(t, 0, h.extractMin())

	// Decreasing an already-extracted id must be a no-op.
	e2, _ := dist.Search(0)
	e2.Value = -5
	h.decrease(0)
	require.Equal(t, 1, h.extractMin())
}

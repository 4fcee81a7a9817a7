package dfs_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/dfs"
)

// normalize sorts members inside each component and components by their
// smallest member, so partitions compare independent of walk order.
func normalize(comps [][]int) [][]int {
	out := make([][]int, len(comps))
	for i, c := range comps {
		cc := append([]int(nil), c...)
		sort.Ints(cc)
		out[i] = cc
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })
	return out
}

func TestSCC_ClassicEightVertexFixture(t *testing.T) {
	// 1..8 with components {1,2,5}, {3,4}, {6,7}, {8}.
	g, err := core.New(core.WithMultigraph(), core.WithPseudograph())
	require.NoError(t, err)
	vs := map[int]*core.Vertex{}
	for id := 1; id <= 8; id++ {
		vs[id] = &core.Vertex{ID: id}
		require.NoError(t, g.AddVertex(vs[id]))
	}
	for _, e := range [][2]int{
		{1, 2}, {2, 3}, {3, 4}, {4, 3}, {2, 5}, {2, 6}, {5, 6},
		{6, 7}, {7, 6}, {3, 7}, {7, 8}, {4, 8}, {8, 8}, {5, 1},
	} {
		require.NoError(t, g.AddEdgeDirected(vs[e[0]], vs[e[1]]))
	}

	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 5}, {3, 4}, {6, 7}, {8}}, normalize(comps))
}

func TestSCC_AcyclicIsAllSingletons(t *testing.T) {
	g, _ := build(t, 4, [][2]int{{4, 3}, {3, 2}, {2, 1}})
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {2}, {3}, {4}}, normalize(comps))
}

func TestSCC_SingleCycleIsOneComponent(t *testing.T) {
	g, _ := build(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 1)
	assert.Equal(t, [][]int{{1, 2, 3}}, normalize(comps))
}

func TestSCC_CondensationOrder(t *testing.T) {
	// Two triangles linked 6-side → 3-side: the source component's
	// tree opens first in Kosaraju's second pass.
	g, _ := build(t, 6, [][2]int{
		{6, 5}, {5, 4}, {4, 6},
		{3, 2}, {2, 1}, {1, 3},
		{4, 3},
	})
	comps, err := dfs.StronglyConnectedComponents(g)
	require.NoError(t, err)
	require.Len(t, comps, 2)

	first := append([]int(nil), comps[0]...)
	sort.Ints(first)
	assert.Equal(t, []int{4, 5, 6}, first)
}

func TestSCC_NilGraph(t *testing.T) {
	_, err := dfs.StronglyConnectedComponents(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

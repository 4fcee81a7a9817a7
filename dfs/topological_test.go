package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/dfs"
)

// topoEdges is a 9-vertex DAG with several valid linearizations.
var topoEdges = [][2]int{
	{1, 2}, {4, 2}, {4, 5}, {5, 6}, {6, 7},
	{8, 5}, {8, 9}, {9, 7},
}

func TestTopologicalSort_ValidOrder(t *testing.T) {
	g, _ := build(t, 9, topoEdges)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 9)

	pos := map[int]int{}
	for i, v := range order {
		pos[v.ID] = i
	}
	require.Len(t, pos, 9, "every vertex appears exactly once")
	for _, e := range topoEdges {
		assert.Less(t, pos[e[0]], pos[e[1]], "edge %d→%d", e[0], e[1])
	}
}

func TestTopologicalSort_ReturnsFreshVertices(t *testing.T) {
	g, vs := build(t, 3, [][2]int{{3, 2}, {2, 1}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	for _, v := range order {
		assert.NotSame(t, vs[v.ID], v, "vertex %d must be a copy", v.ID)
		assert.Equal(t, vs[v.ID].Value, v.Value)
	}
}

func TestTopologicalSort_Chain(t *testing.T) {
	g, _ := build(t, 4, [][2]int{{4, 3}, {3, 2}, {2, 1}})
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)

	var ids []int
	for _, v := range order {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []int{4, 3, 2, 1}, ids)
}

func TestTopologicalSort_CycleRejected(t *testing.T) {
	g, _ := build(t, 3, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_SelfLoopRejected(t *testing.T) {
	g, err := core.New(core.WithMultigraph(), core.WithPseudograph())
	require.NoError(t, err)
	v := &core.Vertex{ID: 1}
	require.NoError(t, g.AddVertex(v))
	require.NoError(t, g.AddEdgeDirected(v, v))

	_, err = dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

func TestTopologicalSort_EmptyGraph(t *testing.T) {
	g, err := core.New()
	require.NoError(t, err)
	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Empty(t, order)
}

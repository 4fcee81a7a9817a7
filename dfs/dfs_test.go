package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/dfs"
)

// build registers vertices 1..n and the given directed edges.
func build(t *testing.T, n int, edges [][2]int, opts ...core.Option) (*core.Graph, map[int]*core.Vertex) {
	t.Helper()
	g, err := core.New(opts...)
	require.NoError(t, err)
	vs := make(map[int]*core.Vertex, n)
	for id := 1; id <= n; id++ {
		vs[id] = &core.Vertex{ID: id}
		require.NoError(t, g.AddVertex(vs[id]))
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdgeDirected(vs[e[0]], vs[e[1]]))
	}
	return g, vs
}

func TestForest_NilGraph(t *testing.T) {
	_, err := dfs.Forest(nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

func TestForest_CoversEveryVertex(t *testing.T) {
	g, _ := build(t, 5, [][2]int{{1, 2}, {2, 3}})
	res, err := dfs.Forest(g)
	require.NoError(t, err)

	for id := 1; id <= 5; id++ {
		assert.True(t, res.Visited(id), "vertex %d", id)
	}
	assert.Zero(t, res.BackEdges())
}

func TestForest_FinishPositionsArePermutation(t *testing.T) {
	g, _ := build(t, 6, [][2]int{{1, 2}, {1, 3}, {4, 5}})
	res, err := dfs.Forest(g)
	require.NoError(t, err)

	seen := map[int64]bool{}
	for id := 1; id <= 6; id++ {
		f, ok := res.FinishPos(id)
		require.True(t, ok)
		require.False(t, seen[f], "duplicate finish position %d", f)
		require.GreaterOrEqual(t, f, int64(1))
		require.LessOrEqual(t, f, int64(6))
		seen[f] = true
	}
}

func TestForest_ParentsAndRoots(t *testing.T) {
	// Registry order is most-recent-first, so vertex 4 opens the first
	// tree and pulls in the chain 4→3→2; vertex 1 opens its own tree.
	g, _ := build(t, 4, [][2]int{{4, 3}, {3, 2}})
	res, err := dfs.Forest(g)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 1}, res.Roots())
	for _, root := range res.Roots() {
		p, ok := res.Predecessor(root)
		require.True(t, ok)
		assert.Equal(t, int64(-1), p, "root %d", root)
	}

	p, _ := res.Predecessor(3)
	assert.Equal(t, int64(4), p)
	p, _ = res.Predecessor(2)
	assert.Equal(t, int64(3), p)
}

func TestForest_ParentFinishesAfterChild(t *testing.T) {
	g, _ := build(t, 4, [][2]int{{4, 3}, {3, 2}, {4, 1}})
	res, err := dfs.Forest(g)
	require.NoError(t, err)

	for id := 1; id <= 3; id++ {
		p, _ := res.Predecessor(id)
		fc, _ := res.FinishPos(id)
		fp, _ := res.FinishPos(int(p))
		assert.Greater(t, fp, fc, "parent %d of %d must finish later", p, id)
	}
}

// Package dfs: topological ordering of acyclic graphs.
package dfs

import "github.com/tbalakov/gravl/core"

// TopologicalSort returns the vertices of g in a topological order:
// every arc points from an earlier position to a later one.
//
// The order is built by prepending each vertex as it finishes, which is
// exactly the reverse finishing order of the walk. The returned slice
// holds fresh Vertex objects (same ID and Value) owned by the caller;
// the graph's own vertices are untouched.
//
// Returns ErrCycleDetected when the walk finds any back edge, and
// ErrNilGraph for a nil graph.
func TopologicalSort(g *core.Graph) ([]*core.Vertex, error) {
	w, err := newWalker(g)
	if err != nil {
		return nil, err
	}

	order := make([]*core.Vertex, 0, g.NumVertices())
	w.onFinish = func(v *core.Vertex) {
		order = append(order, &core.Vertex{ID: v.ID, Value: v.Value})
	}

	if err := w.run(); err != nil {
		return nil, err
	}
	if w.back > 0 {
		return nil, ErrCycleDetected
	}

	// Finish order accumulated append-wise; reverse it into the
	// prepend-at-finish result.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}
	return order, nil
}

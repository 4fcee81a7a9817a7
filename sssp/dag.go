// Package sssp: shortest paths on directed acyclic graphs.
package sssp

import (
	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/dfs"
)

// DAG computes shortest paths from src by relaxing every vertex's
// outgoing arcs once, in topological order. Negative weights are fine;
// cyclic input surfaces dfs.ErrCycleDetected.
func DAG(g *core.Graph, src *core.Vertex) (*Result, error) {
	table, err := newPaths(g, src)
	if err != nil {
		return nil, err
	}
	order, err := dfs.TopologicalSort(g)
	if err != nil {
		return nil, err
	}

	for _, tv := range order {
		// The sort hands out copies; relax the registered vertex.
		v, ok := g.VertexByID(tv.ID)
		if !ok {
			continue
		}
		nerr := g.Neighbors(v, func(to *core.Vertex, w int64) bool {
			relax(table, v.ID, to.ID, w)
			return true
		})
		if nerr != nil {
			return nil, nerr
		}
	}
	return &Result{source: src.ID, table: table}, nil
}

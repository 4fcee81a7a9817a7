// Package sssp: the Bellman-Ford algorithm.
package sssp

import "github.com/tbalakov/gravl/core"

// BellmanFord computes shortest paths from src, tolerating negative arc
// weights.
//
// The table stabilizes within |V|−1 passes over every arc; a pass with
// no change ends the loop early. One verification pass follows: any arc
// that still relaxes proves a negative cycle reachable from the source,
// in which case no shortest-path tree exists — the table is emptied and
// the Result reports NegativeCycle.
func BellmanFord(g *core.Graph, src *core.Vertex) (*Result, error) {
	table, err := newPaths(g, src)
	if err != nil {
		return nil, err
	}

	pass := func() bool {
		changed := false
		g.EachEdge(func(from, to *core.Vertex, w int64) bool {
			if relax(table, from.ID, to.ID, w) {
				changed = true
			}
			return true
		})
		return changed
	}

	for i := 1; i < g.NumVertices(); i++ {
		if !pass() {
			break
		}
	}
	if pass() {
		table.Clear()
		return &Result{source: src.ID, table: table, negCycle: true}, nil
	}
	return &Result{source: src.ID, table: table}, nil
}

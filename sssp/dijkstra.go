// Package sssp: Dijkstra's algorithm.
package sssp

import "github.com/tbalakov/gravl/core"

// Dijkstra computes shortest paths from src with the classic
// extract-min / decrease-key loop over an indexable binary heap.
//
// Steps:
//  1. Seed distances and load every vertex into the heap; the source's
//     zero distance floats it to the root.
//  2. Extract the closest vertex; relax each outgoing arc; every
//     successful relaxation sifts the improved vertex up.
//  3. Repeat until the heap drains. Extracted distances are final.
//
// Precondition, unchecked: no negative arc weights. Returns ErrNilGraph
// or ErrSourceNotFound.
func Dijkstra(g *core.Graph, src *core.Vertex) (*Result, error) {
	table, err := newPaths(g, src)
	if err != nil {
		return nil, err
	}
	heap, err := newDistHeap(table)
	if err != nil {
		return nil, err
	}
	for _, v := range g.Vertices() {
		heap.push(v.ID)
	}

	for heap.len() > 0 {
		id := heap.extractMin()
		u, ok := g.VertexByID(id)
		if !ok {
			continue
		}
		nerr := g.Neighbors(u, func(to *core.Vertex, w int64) bool {
			if relax(table, id, to.ID, w) {
				heap.decrease(to.ID)
			}
			return true
		})
		if nerr != nil {
			return nil, nerr
		}
	}
	return &Result{source: src.ID, table: table}, nil
}

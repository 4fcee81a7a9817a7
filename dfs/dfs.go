// Package dfs: the shared depth-first walker and the Forest entry point.
package dfs

import (
	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/hashmap"
)

// Forest walks the entire graph depth-first and returns the resulting
// forest: finish positions, tree parents, roots and back-edge count.
// Returns ErrNilGraph.
func Forest(g *core.Graph) (*Result, error) {
	w, err := newWalker(g)
	if err != nil {
		return nil, err
	}
	if err := w.run(); err != nil {
		return nil, err
	}
	return &Result{table: w.table, roots: w.roots, back: w.back}, nil
}

// walker carries the state of one full-graph walk. The hooks are wired
// by the cycle and topological entry points.
type walker struct {
	g     *core.Graph
	table *hashmap.Map[int]

	finish int64 // next finish position to hand out
	roots  []int
	back   int

	// onDiscover fires when a vertex is first marked in progress.
	onDiscover func(id int)

	// onBackEdge fires for every arc from→to into an in-progress
	// vertex, after the parent exclusion.
	onBackEdge func(from, to int)

	// onFinish fires as each vertex completes, after its subtree.
	onFinish func(v *core.Vertex)
}

func newWalker(g *core.Graph) (*walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	table, err := hashmap.New(hashmap.IntKey)
	if err != nil {
		return nil, err
	}
	return &walker{g: g, table: table}, nil
}

// run opens a tree at every undiscovered vertex in registry order.
func (w *walker) run() error {
	for _, v := range w.g.Vertices() {
		if _, seen := w.table.Search(v.ID); seen {
			continue
		}
		w.roots = append(w.roots, v.ID)
		if err := w.visit(v, rootPred); err != nil {
			return err
		}
	}
	return nil
}

// visit explores v's subtree. pred is the tree parent's id (-1 for
// roots).
//
// Steps:
//  1. Mark v in progress (finish position 0) with its parent.
//  2. Scan arcs in adjacency order: recurse into undiscovered
//     neighbors; count arcs into in-progress neighbors as back edges,
//     excusing the first arc back to the immediate parent so a
//     reciprocal pair does not read as a cycle.
//  3. Stamp the finish position.
func (w *walker) visit(v *core.Vertex, pred int64) error {
	w.table.Insert(v.ID, 0, pred)
	if w.onDiscover != nil {
		w.onDiscover(v.ID)
	}

	var arcs []*core.Vertex
	err := w.g.Neighbors(v, func(to *core.Vertex, _ int64) bool {
		arcs = append(arcs, to)
		return true
	})
	if err != nil {
		return err
	}

	parentExcused := false
	for _, to := range arcs {
		entry, seen := w.table.Search(to.ID)
		if !seen {
			if err := w.visit(to, int64(v.ID)); err != nil {
				return err
			}
			continue
		}
		if entry.Value != 0 {
			continue // already finished: forward or cross arc
		}
		if !parentExcused && int64(to.ID) == pred && to != v {
			parentExcused = true
			continue
		}
		w.back++
		if w.onBackEdge != nil {
			w.onBackEdge(v.ID, to.ID)
		}
	}

	w.finish++
	entry, _ := w.table.Search(v.ID)
	entry.Value = w.finish
	if w.onFinish != nil {
		w.onFinish(v)
	}
	return nil
}

// Package bfs: the traversal itself.
package bfs

import (
	"github.com/tbalakov/gravl/core"
	"github.com/tbalakov/gravl/hashmap"
)

// BFS runs a breadth-first traversal of g from src and returns the
// depth/predecessor table of every reached vertex.
//
// Steps:
//  1. Validate inputs.
//  2. Seed the table with src at depth 0, predecessor -1, and enqueue it.
//  3. Dequeue; for each unseen neighbor, record depth+1 and the
//     predecessor at enqueue time, then enqueue.
//
// Returns ErrNilGraph or ErrSourceNotFound.
func BFS(g *core.Graph, src *core.Vertex) (*Result, error) {
	walker, err := newWalker(g, src)
	if err != nil {
		return nil, err
	}
	if err := walker.run(nil); err != nil {
		return nil, err
	}
	return walker.result(), nil
}

// Apply runs the same traversal but hands every dequeued vertex to fn
// together with its depth. A non-nil error from fn aborts the traversal
// and is returned verbatim.
func Apply(g *core.Graph, src *core.Vertex, fn func(v *core.Vertex, depth int) error) error {
	walker, err := newWalker(g, src)
	if err != nil {
		return err
	}
	return walker.run(fn)
}

// Reachable reports whether v is reachable from u.
func Reachable(g *core.Graph, u, v *core.Vertex) (bool, error) {
	if g == nil {
		return false, ErrNilGraph
	}
	if !g.HasVertex(v) {
		return false, ErrSourceNotFound
	}
	res, err := BFS(g, u)
	if err != nil {
		return false, err
	}
	return res.Visited(v.ID), nil
}

// walker carries the per-run traversal state.
type walker struct {
	g     *core.Graph
	src   *core.Vertex
	table *hashmap.Map[int]
	queue []*core.Vertex
}

func newWalker(g *core.Graph, src *core.Vertex) (*walker, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(src) {
		return nil, ErrSourceNotFound
	}
	table, err := hashmap.New(hashmap.IntKey)
	if err != nil {
		return nil, err
	}
	return &walker{g: g, src: src, table: table}, nil
}

// run drains the queue. fn may be nil.
func (w *walker) run(fn func(*core.Vertex, int) error) error {
	w.table.Insert(w.src.ID, 0, rootPred)
	w.queue = append(w.queue, w.src)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]
		entry, _ := w.table.Search(cur.ID)
		depth := entry.Value

		if fn != nil {
			if err := fn(cur, int(depth)); err != nil {
				return err
			}
		}

		err := w.g.Neighbors(cur, func(to *core.Vertex, _ int64) bool {
			if _, seen := w.table.Search(to.ID); seen {
				return true
			}
			// Mark at enqueue so parallel arcs and revisits are moot.
			w.table.Insert(to.ID, depth+1, int64(cur.ID))
			w.queue = append(w.queue, to)
			return true
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) result() *Result {
	return &Result{source: w.src.ID, table: w.table}
}

// Package dfs: errors and the forest Result type.
package dfs

import (
	"errors"

	"github.com/tbalakov/gravl/hashmap"
)

// Sentinel errors returned by the dfs package.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrCycleDetected is returned by TopologicalSort when the graph
	// contains a cycle.
	ErrCycleDetected = errors.New("dfs: graph contains a cycle")
)

// rootPred marks tree roots in the predecessor slot.
const rootPred = -1

// Result is the outcome of a full-graph depth-first walk: one entry per
// vertex (value = finish position 1..n, aux = predecessor id) plus the
// tree roots in the order they were opened.
type Result struct {
	table *hashmap.Map[int]
	roots []int
	back  int
}

// Roots returns the ids of the forest's tree roots, in the order the
// trees were opened (registry order of the graph).
func (r *Result) Roots() []int { return r.roots }

// BackEdges returns the number of back edges the walk encountered.
func (r *Result) BackEdges() int { return r.back }

// Visited reports whether the walk reached vertex id. A full-graph walk
// reaches every registered vertex.
func (r *Result) Visited(id int) bool {
	_, ok := r.table.Search(id)
	return ok
}

// FinishPos returns id's finish position, counted 1..n in the order
// vertices completed. The second result is false for unknown ids.
func (r *Result) FinishPos(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok {
		return 0, false
	}
	return e.Value, true
}

// Predecessor returns the id of id's parent in its tree, or -1 for
// tree roots. The second result is false for unknown ids.
func (r *Result) Predecessor(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok {
		return 0, false
	}
	return e.Aux, true
}

// Package bfs: errors and the traversal Result type.
package bfs

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tbalakov/gravl/hashmap"
)

// Sentinel errors returned by the bfs package.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is not a
	// member of the graph.
	ErrSourceNotFound = errors.New("bfs: source vertex not in graph")

	// ErrNotReachable is returned by PathTo when no path from the
	// source reaches the destination.
	ErrNotReachable = errors.New("bfs: vertex not reachable from source")
)

// rootPred marks the source's predecessor slot.
const rootPred = -1

// Result holds the outcome of one BFS run: depth and predecessor per
// reached vertex, keyed by vertex id.
type Result struct {
	source int
	table  *hashmap.Map[int]
}

// Source returns the id of the vertex the traversal started from.
func (r *Result) Source() int { return r.source }

// Visited reports whether the traversal reached vertex id.
func (r *Result) Visited(id int) bool {
	_, ok := r.table.Search(id)
	return ok
}

// Depth returns the hop distance from the source to id, or false when
// the traversal never reached id.
func (r *Result) Depth(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok {
		return 0, false
	}
	return e.Value, true
}

// Predecessor returns the id of the vertex preceding id on a
// shortest-hop path from the source; the source reports -1. The second
// result is false when id was never reached.
func (r *Result) Predecessor(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok {
		return 0, false
	}
	return e.Aux, true
}

// PathTo reconstructs the source→dest path as a sequence of vertex ids
// by walking predecessor links backwards. Returns ErrNotReachable when
// the traversal never reached dest.
func (r *Result) PathTo(dest int) ([]int, error) {
	if _, ok := r.table.Search(dest); !ok {
		return nil, fmt.Errorf("%w: %d", ErrNotReachable, dest)
	}
	var rev []int
	for id := dest; ; {
		rev = append(rev, id)
		e, _ := r.table.Search(id)
		if e.Aux == rootPred {
			break
		}
		id = int(e.Aux)
	}
	// Reverse into source→dest order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}

// FormatPath renders the source→dest path as "1->4->7".
func (r *Result) FormatPath(dest int) (string, error) {
	path, err := r.PathTo(dest)
	if err != nil {
		return "", err
	}
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "->"), nil
}

// Package sssp: errors and the shortest-path Result type.
package sssp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tbalakov/gravl/hashmap"
)

// Sentinel errors returned by the sssp package.
var (
	// ErrNilGraph is returned when the graph argument is nil.
	ErrNilGraph = errors.New("sssp: graph is nil")

	// ErrSourceNotFound is returned when the source vertex is not a
	// member of the graph.
	ErrSourceNotFound = errors.New("sssp: source vertex not in graph")

	// ErrNotReachable is returned by PathTo when the destination keeps
	// an infinite distance.
	ErrNotReachable = errors.New("sssp: vertex not reachable from source")

	// ErrNegativeCycle is returned by PathTo on a result degraded by a
	// reachable negative cycle.
	ErrNegativeCycle = errors.New("sssp: negative cycle reachable from source")
)

// inf is the distance of a vertex no relaxation has touched yet.
const inf = math.MaxInt64

// rootPred marks the source's predecessor slot.
const rootPred = -1

// Result holds one shortest-path computation: per-vertex distance and
// predecessor, keyed by vertex id.
type Result struct {
	source   int
	table    *hashmap.Map[int]
	negCycle bool
}

// Source returns the id of the source vertex.
func (r *Result) Source() int { return r.source }

// NegativeCycle reports whether the computation found a negative cycle
// reachable from the source. Only Bellman-Ford can set this; when true
// the distance table is empty.
func (r *Result) NegativeCycle() bool { return r.negCycle }

// Distance returns the shortest distance from the source to id. The
// second result is false when id is unknown or still at infinity.
func (r *Result) Distance(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok || e.Value == inf {
		return 0, false
	}
	return e.Value, true
}

// Predecessor returns the id preceding id on its shortest path, -1 at
// the source. False when id is unknown or unreached.
func (r *Result) Predecessor(id int) (int64, bool) {
	e, ok := r.table.Search(id)
	if !ok || e.Value == inf {
		return 0, false
	}
	return e.Aux, true
}

// PathTo reconstructs the source→dest path as vertex ids. Returns
// ErrNegativeCycle on a degraded result and ErrNotReachable when dest
// keeps an infinite distance.
func (r *Result) PathTo(dest int) ([]int, error) {
	if r.negCycle {
		return nil, ErrNegativeCycle
	}
	if _, ok := r.Distance(dest); !ok {
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

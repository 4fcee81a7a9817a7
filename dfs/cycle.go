// Package dfs: cycle counting and enumeration.
package dfs

import "github.com/tbalakov/gravl/core"

// CycleCount returns the number of back edges a full depth-first walk
// of g encounters. Zero means the graph is acyclic under the walk's
// edge model (see the package comment for the mutual-pair caveat).
func CycleCount(g *core.Graph) (int, error) {
	res, err := Forest(g)
	if err != nil {
		return 0, err
	}
	return res.BackEdges(), nil
}

// Cycles enumerates one cycle per back edge, as vertex id sequences.
// Each sequence starts at the back edge's destination (the ancestor on
// the current path) and ends at its source; the closing arc back to the
// first id is implicit. A self-loop yields a single-element sequence.
func Cycles(g *core.Graph) ([][]int, error) {
	w, err := newWalker(g)
	if err != nil {
		return nil, err
	}

	var cycles [][]int
	w.onBackEdge = func(from, to int) {
		// Walk tree parents from the source back to the ancestor.
		var rev []int
		for id := from; id != to; {
			rev = append(rev, id)
			e, _ := w.table.Search(id)
			id = int(e.Aux)
		}
		rev = append(rev, to)
		cycle := make([]int, len(rev))
		for i, id := range rev {
			cycle[len(rev)-1-i] = id
		}
		cycles = append(cycles, cycle)
	}

	if err := w.run(); err != nil {
		return nil, err
	}
	return cycles, nil
}

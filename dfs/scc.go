// Package dfs: strongly connected components (Kosaraju).
package dfs

import (
	"sort"

	"github.com/tbalakov/gravl/core"
)

// StronglyConnectedComponents partitions g's vertices into strongly
// connected components using Kosaraju's two-pass scheme:
//
//  1. A full walk of g assigns finish positions 1..n.
//  2. A second walk runs over the transposed graph, opening trees in
//     strictly decreasing finish position; each tree is one component.
//
// Components are returned in the order their trees were opened, member
// ids in discovery order. Intended for graphs built with directed
// edges; on undirected edges every connected component collapses into
// one SCC, which is consistent with the arc-pair storage model.
func StronglyConnectedComponents(g *core.Graph) ([][]int, error) {
	first, err := Forest(g)
	if err != nil {
		return nil, err
	}

	// Order vertex ids by decreasing finish position.
	ids := make([]int, 0, g.NumVertices())
	for _, v := range g.Vertices() {
		ids = append(ids, v.ID)
	}
	sort.Slice(ids, func(i, j int) bool {
		fi, _ := first.FinishPos(ids[i])
		fj, _ := first.FinishPos(ids[j])
		return fi > fj
	})

	tr := g.Transpose()
	w, err := newWalker(tr)
	if err != nil {
		return nil, err
	}

	var comps [][]int
	for _, id := range ids {
		if _, seen := w.table.Search(id); seen {
			continue
		}
		v, ok := tr.VertexByID(id)
		if !ok {
			continue
		}
		start := len(comps)
		comps = append(comps, nil)
		if err := w.collect(v, &comps[start]); err != nil {
			return nil, err
		}
	}
	return comps, nil
}

// collect runs visit while appending every newly discovered vertex of
// the subtree to out.
func (w *walker) collect(v *core.Vertex, out *[]int) error {
	w.onDiscover = func(id int) { *out = append(*out, id) }
	return w.visit(v, rootPred)
}

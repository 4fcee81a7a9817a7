// Package core: whole-graph transforms and the textual dump.
package core

import (
	"fmt"
	"strings"
)

// Transpose returns a new graph with every arc reversed. Vertices in
// the result are fresh objects carrying the same ID and Value, owned by
// the result; the receiver and its vertices are untouched.
//
// Registry order and variant flags carry over. An undirected edge is a
// reciprocal arc pair, so it transposes to itself.
func (g *Graph) Transpose() *Graph {
	t := &Graph{
		multigraph:  g.multigraph,
		pseudograph: g.pseudograph,
		weighted:    g.weighted,
		slots:       make([]slot, len(g.slots)),
	}

	// Re-register fresh vertices oldest-first so the prepend registry
	// reproduces the receiver's enumeration order.
	vs := g.Vertices()
	for i := len(vs) - 1; i >= 0; i-- {
		fresh := &Vertex{ID: vs[i].ID, Value: vs[i].Value}
		t.slots[fresh.ID] = slot{v: fresh}
		fresh.next = t.head
		t.head = fresh
		t.n++
	}

	g.EachEdge(func(from, to *Vertex, w int64) bool {
		t.addArc(t.slots[to.ID].v, t.slots[from.ID].v, w)
		return true
	})
	return t
}

// String renders the adjacency table, one line per registered vertex in
// slot order:
//
//	graph: 3 vertices
//	1:-> (2)->(3)->
//	2:-> \
//	3:-> (1: 4)->
//
// Weighted graphs append ": <weight>" inside each arc; an empty list
// prints a single backslash.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph: %d vertices\n", g.n)
	for i := range g.slots {
		if g.slots[i].v == nil {
			continue
		}
		fmt.Fprintf(&sb, "%d:-> ", i)
		if len(g.slots[i].arcs) == 0 {
			sb.WriteString("\\")
		}
		for _, a := range g.slots[i].arcs {
			if g.weighted {
				fmt.Fprintf(&sb, "(%d: %d)->", a.to.ID, a.weight)
			} else {
				fmt.Fprintf(&sb, "(%d)->", a.to.ID)
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

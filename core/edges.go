// Package core: edge mutation, membership and degree queries.
package core

// checkEndpoints validates that both endpoints are members.
func (g *Graph) checkEndpoints(u, v *Vertex) error {
	if u == nil || v == nil {
		return ErrNilVertex
	}
	if !g.HasVertex(u) || !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	return nil
}

// addArc appends the half-edge u→v. Assumes endpoints were validated.
func (g *Graph) addArc(u, v *Vertex, w int64) {
	g.slots[u.ID].arcs = append(g.slots[u.ID].arcs, arc{to: v, weight: w})
}

// removeArc unlinks the first arc u→v, matching weight too unless
// anyWeight is set. Reports whether an arc was removed.
func (g *Graph) removeArc(u, v *Vertex, w int64, anyWeight bool) bool {
	arcs := g.slots[u.ID].arcs
	for i, a := range arcs {
		if a.to == v && (anyWeight || a.weight == w) {
			g.slots[u.ID].arcs = append(arcs[:i], arcs[i+1:]...)
			return true
		}
	}
	return false
}

// addEdge implements the four public Add variants.
func (g *Graph) addEdge(u, v *Vertex, w int64, directed bool) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	if u == v && !g.pseudograph {
		return ErrLoopNotAllowed
	}
	if !g.multigraph && g.hasArc(u, v) {
		return nil // duplicate edge: silent no-op on plain graphs
	}
	g.addArc(u, v, w)
	if !directed {
		// Reciprocal arc; an undirected self-loop therefore occupies
		// two entries in its own list.
		g.addArc(v, u, w)
	}
	return nil
}

// AddEdgeUndirected inserts the unweighted edge {u, v}.
func (g *Graph) AddEdgeUndirected(u, v *Vertex) error {
	return g.addEdge(u, v, 0, false)
}

// AddEdgeDirected inserts the unweighted arc u→v.
func (g *Graph) AddEdgeDirected(u, v *Vertex) error {
	return g.addEdge(u, v, 0, true)
}

// AddEdgeUndirectedWeighted inserts the edge {u, v} with weight w and
// latches the graph weighted.
func (g *Graph) AddEdgeUndirectedWeighted(u, v *Vertex, w int64) error {
	if err := g.addEdge(u, v, w, false); err != nil {
		return err
	}
	g.weighted = true
	return nil
}

// AddEdgeDirectedWeighted inserts the arc u→v with weight w and latches
// the graph weighted.
func (g *Graph) AddEdgeDirectedWeighted(u, v *Vertex, w int64) error {
	if err := g.addEdge(u, v, w, true); err != nil {
		return err
	}
	g.weighted = true
	return nil
}

// RemoveEdgeUndirected removes one edge {u, v} regardless of weight.
// No-op when no such edge exists.
func (g *Graph) RemoveEdgeUndirected(u, v *Vertex) error {
	return g.removeEdge(u, v, 0, true, false)
}

// RemoveEdgeDirected removes one arc u→v regardless of weight.
func (g *Graph) RemoveEdgeDirected(u, v *Vertex) error {
	return g.removeEdge(u, v, 0, true, true)
}

// RemoveEdgeUndirectedWeighted removes one edge {u, v} with weight w.
// The weight only disambiguates parallel edges on multigraphs.
func (g *Graph) RemoveEdgeUndirectedWeighted(u, v *Vertex, w int64) error {
	return g.removeEdge(u, v, w, false, false)
}

// RemoveEdgeDirectedWeighted removes one arc u→v with weight w.
func (g *Graph) RemoveEdgeDirectedWeighted(u, v *Vertex, w int64) error {
	return g.removeEdge(u, v, w, false, true)
}

func (g *Graph) removeEdge(u, v *Vertex, w int64, anyWeight, directed bool) error {
	if err := g.checkEndpoints(u, v); err != nil {
		return err
	}
	// Weight only disambiguates parallel edges; plain graphs hold at
	// most one entry per endpoint pair.
	if !g.multigraph {
		anyWeight = true
	}
	if !g.removeArc(u, v, w, anyWeight) {
		return nil // absent edge: no-op
	}
	if !directed {
		g.removeArc(v, u, w, anyWeight)
	}
	return nil
}

// hasArc reports an arc u→v without membership validation.
func (g *Graph) hasArc(u, v *Vertex) bool {
	for _, a := range g.slots[u.ID].arcs {
		if a.to == v {
			return true
		}
	}
	return false
}

// HasEdge reports whether at least one arc u→v exists. Membership is by
// pointer identity; an undirected edge answers true in both directions.
func (g *Graph) HasEdge(u, v *Vertex) (bool, error) {
	if err := g.checkEndpoints(u, v); err != nil {
		return false, err
	}
	return g.hasArc(u, v), nil
}

// DegreeUndirected returns the degree of v counting every entry in its
// adjacency list; an undirected self-loop therefore counts twice.
func (g *Graph) DegreeUndirected(v *Vertex) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	return len(g.slots[v.ID].arcs), nil
}

// DegreeOut returns the number of arcs leaving v.
func (g *Graph) DegreeOut(v *Vertex) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	return len(g.slots[v.ID].arcs), nil
}

// DegreeIn returns the number of arcs entering v, scanning every
// adjacency list. Arcs from v to itself count only on pseudographs.
func (g *Graph) DegreeIn(v *Vertex) (int, error) {
	if !g.HasVertex(v) {
		return 0, ErrVertexNotFound
	}
	in := 0
	for i := range g.slots {
		if g.slots[i].v == nil {
			continue
		}
		if g.slots[i].v == v && !g.pseudograph {
			continue
		}
		for _, a := range g.slots[i].arcs {
			if a.to == v {
				in++
			}
		}
	}
	return in, nil
}

// Neighbors calls fn for each arc leaving v in adjacency (insertion)
// order; returning false stops the scan.
func (g *Graph) Neighbors(v *Vertex, fn func(to *Vertex, weight int64) bool) error {
	if !g.HasVertex(v) {
		return ErrVertexNotFound
	}
	for _, a := range g.slots[v.ID].arcs {
		if !fn(a.to, a.weight) {
			return nil
		}
	}
	return nil
}

// EachEdge calls fn for every stored arc, slot by slot in id order;
// returning false stops the scan. An undirected edge surfaces twice,
// once per direction.
func (g *Graph) EachEdge(fn func(from, to *Vertex, weight int64) bool) {
	for i := range g.slots {
		if g.slots[i].v == nil {
			continue
		}
		for _, a := range g.slots[i].arcs {
			if !fn(g.slots[i].v, a.to, a.weight) {
				return
			}
		}
	}
}

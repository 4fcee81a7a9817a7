// Package core: graph construction and vertex-level mutation.
package core

import "fmt"

// initialSlots is the starting size of the id-indexed adjacency table.
const initialSlots = 8

// New constructs an empty Graph with the requested variant flags.
// Returns ErrPseudoNotMulti when WithPseudograph is set without
// WithMultigraph.
func New(opts ...Option) (*Graph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Pseudograph && !o.Multigraph {
		return nil, ErrPseudoNotMulti
	}
	return &Graph{
		multigraph:  o.Multigraph,
		pseudograph: o.Pseudograph,
		slots:       make([]slot, initialSlots),
	}, nil
}

// Multigraph reports whether parallel edges are permitted.
func (g *Graph) Multigraph() bool { return g.multigraph }

// Pseudograph reports whether self-loops are permitted.
func (g *Graph) Pseudograph() bool { return g.pseudograph }

// Weighted reports whether any weighted edge has ever been added.
// Once true it stays true.
func (g *Graph) Weighted() bool { return g.weighted }

// NumVertices returns the number of registered vertices.
func (g *Graph) NumVertices() int { return g.n }

// ListSize returns the current capacity of the id-indexed table.
func (g *Graph) ListSize() int { return len(g.slots) }

// grow doubles the slot table until id fits.
func (g *Graph) grow(id int) {
	size := len(g.slots)
	for size <= id {
		size *= 2
	}
	if size == len(g.slots) {
		return
	}
	slots := make([]slot, size)
	copy(slots, g.slots)
	g.slots = slots
}

// AddVertex registers v with the graph. The caller retains ownership of
// v; the graph only records membership and adjacency.
//
// Returns ErrNilVertex, ErrNegativeID, or ErrDuplicateID when the id
// slot is already occupied (even by v itself).
func (g *Graph) AddVertex(v *Vertex) error {
	if v == nil {
		return ErrNilVertex
	}
	if v.ID < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeID, v.ID)
	}
	g.grow(v.ID)
	if g.slots[v.ID].v != nil {
		return fmt.Errorf("%w: %d", ErrDuplicateID, v.ID)
	}
	g.slots[v.ID] = slot{v: v}

	// Registry prepend: most recent insert enumerates first.
	v.next = g.head
	g.head = v
	g.n++
	return nil
}

// HasVertex reports membership of exactly this Vertex object. A
// different object with the same id is not a member.
func (g *Graph) HasVertex(v *Vertex) bool {
	if v == nil || v.ID < 0 || v.ID >= len(g.slots) {
		return false
	}
	return g.slots[v.ID].v == v
}

// VertexByID returns the vertex registered under id, or (nil, false).
func (g *Graph) VertexByID(id int) (*Vertex, bool) {
	if id < 0 || id >= len(g.slots) || g.slots[id].v == nil {
		return nil, false
	}
	return g.slots[id].v, true
}

// Vertices returns the registered vertices in registry order, most
// recently added first.
func (g *Graph) Vertices() []*Vertex {
	out := make([]*Vertex, 0, g.n)
	for v := g.head; v != nil; v = v.next {
		out = append(out, v)
	}
	return out
}

// RemoveVertexUndirected removes v and every undirected edge incident
// to it, walking v's own adjacency list and unlinking one reciprocal
// arc per entry. No-op when v is not a member. The caller keeps v.
//
// Only valid when every edge touching v was added undirected; use
// RemoveVertexDirected otherwise.
func (g *Graph) RemoveVertexUndirected(v *Vertex) {
	if !g.HasVertex(v) {
		return
	}
	for _, a := range g.slots[v.ID].arcs {
		if a.to == v {
			continue // self-loop arcs die with v's own list
		}
		g.removeArc(a.to, v, a.weight, true)
	}
	g.detach(v)
}

// RemoveVertexDirected removes v and every arc into or out of it,
// scanning all adjacency lists for inbound arcs. No-op when v is not a
// member. The caller keeps v.
func (g *Graph) RemoveVertexDirected(v *Vertex) {
	if !g.HasVertex(v) {
		return
	}
	for i := range g.slots {
		if g.slots[i].v == nil || g.slots[i].v == v {
			continue
		}
		arcs := g.slots[i].arcs[:0]
		for _, a := range g.slots[i].arcs {
			if a.to != v {
				arcs = append(arcs, a)
			}
		}
		g.slots[i].arcs = arcs
	}
	g.detach(v)
}

// detach clears v's slot and unlinks it from the registry.
func (g *Graph) detach(v *Vertex) {
	g.slots[v.ID] = slot{}
	if g.head == v {
		g.head = v.next
	} else {
		for p := g.head; p != nil; p = p.next {
			if p.next == v {
				p.next = v.next
				break
			}
		}
	}
	v.next = nil
	g.n--
}

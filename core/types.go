// Package core: vertex/arc/graph type definitions, sentinel errors and
// construction options.
package core

import "errors"

// Sentinel errors returned by Graph construction and mutation.
var (
	// ErrNilVertex is returned when a nil *Vertex is passed where a
	// member vertex is required.
	ErrNilVertex = errors.New("core: vertex is nil")

	// ErrNegativeID is returned by AddVertex for vertices with id < 0.
	ErrNegativeID = errors.New("core: vertex id is negative")

	// ErrDuplicateID is returned by AddVertex when the id slot is
	// already occupied.
	ErrDuplicateID = errors.New("core: vertex id already present")

	// ErrVertexNotFound is returned by edge and degree operations when
	// an endpoint is not a member of the graph.
	ErrVertexNotFound = errors.New("core: vertex not in graph")

	// ErrLoopNotAllowed is returned for self-loop edges outside
	// pseudographs.
	ErrLoopNotAllowed = errors.New("core: self-loops require a pseudograph")

	// ErrPseudoNotMulti is returned by New when WithPseudograph is set
	// without WithMultigraph.
	ErrPseudoNotMulti = errors.New("core: pseudograph requires multigraph")
)

// Vertex is a graph vertex, allocated by the caller and registered with
// AddVertex. ID keys the adjacency table; Value is an arbitrary payload
// the graph never interprets.
type Vertex struct {
	ID    int
	Value int

	// next links the membership registry, most recent insert first.
	// Owned by the Graph the vertex is registered in.
	next *Vertex
}

// arc is one directed half-edge. An undirected edge is a reciprocal
// pair of arcs.
type arc struct {
	to     *Vertex
	weight int64
}

// slot binds an id to its vertex and adjacency list.
type slot struct {
	v    *Vertex
	arcs []arc
}

// Graph is an adjacency-list graph over caller-owned vertices.
// The zero value is not usable; construct with New.
type Graph struct {
	multigraph  bool
	pseudograph bool
	weighted    bool // latched by the first weighted edge

	head  *Vertex // registry head
	slots []slot  // indexed by vertex id
	n     int     // registered vertex count
}

// Options holds the construction-time variant flags.
type Options struct {
	Multigraph  bool
	Pseudograph bool
}

// Option adjusts Options inside New.
type Option func(*Options)

// DefaultOptions returns the plain-graph configuration: no parallel
// edges, no self-loops.
func DefaultOptions() Options {
	return Options{}
}

// WithMultigraph permits parallel edges between the same endpoints.
func WithMultigraph() Option {
	return func(o *Options) { o.Multigraph = true }
}

// WithPseudograph permits self-loops. Requires WithMultigraph.
func WithPseudograph() Option {
	return func(o *Options) { o.Pseudograph = true }
}

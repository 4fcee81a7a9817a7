// Package core defines the adjacency-list graph at the heart of gravl:
// Vertex, Graph, and the mutation primitives every algorithm package
// builds on.
//
// Model:
//
//   - Vertices are caller-allocated and handed in by reference. The
//     graph tracks membership by pointer identity: two distinct Vertex
//     objects are distinct vertices even with equal IDs, and a vertex
//     removed from the graph is handed back to its caller intact.
//   - Edges are stored as directed arcs in per-vertex adjacency lists
//     indexed by vertex id. An undirected edge is the arc pair u→v and
//     v→u; consequently a directed mutual pair is indistinguishable
//     from one undirected edge at the storage level.
//   - The id-indexed table starts at 8 slots and doubles to the next
//     power of two covering the largest id. It never shrinks.
//
// Variants are fixed at construction through functional options:
// WithMultigraph permits parallel edges, WithPseudograph additionally
// permits self-loops (and requires WithMultigraph). On plain graphs a
// duplicate edge insert is a silent no-op and a self-loop is
// ErrLoopNotAllowed.
//
// Adding any weighted edge latches the graph weighted permanently;
// unweighted edges on a weighted graph carry weight 0.
//
// Vertices enumerate in registry order: most recently added first.
// Adjacency lists keep arcs in insertion order. Every traversal in the
// algorithm packages inherits its determinism from these two orders.
//
// Graph is not safe for concurrent use.
package core

// Package dfs implements the depth-first family: full-graph forests,
// cycle detection and enumeration, topological sorting, and strongly
// connected components.
//
// All entry points walk the whole graph, starting a new tree at every
// still-unvisited vertex in registry order and exploring neighbors in
// adjacency (insertion) order, so each run is deterministic.
//
// Per-run state lives in a hashmap.Map keyed by vertex id using the
// classic tri-state encoding: a missing entry is undiscovered, an entry
// with finish position 0 is on the current path (in progress), and a
// positive finish position (1..n, assigned as vertices complete) is
// done. A back edge is an arc into an in-progress vertex; on walks that
// treat reciprocal arc pairs as undirected edges, the single arc
// returning to the immediate parent is excused once per adjacency scan,
// so a parallel parent edge still registers as a cycle.
//
// One representational caveat: a directed mutual pair u→v plus v→u is
// stored identically to one undirected edge, so the parent exclusion
// hides that particular two-cycle. Cycles of length three and up, and
// self-loops, are always detected.
//
// TopologicalSort rejects cyclic input with ErrCycleDetected rather
// than returning a partial order. StronglyConnectedComponents is
// Kosaraju's algorithm: finish positions from a first pass drive a
// second pass over the transposed graph.
package dfs

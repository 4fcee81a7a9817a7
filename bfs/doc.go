// Package bfs implements breadth-first traversal over core graphs.
//
// BFS explores the graph level by level from a source vertex and
// records, for every reached vertex, its hop depth and its predecessor
// on a shortest-hop path. Vertices are marked visited at enqueue time,
// so each one enters the queue exactly once; neighbors are scanned in
// adjacency (insertion) order, which makes every run deterministic.
//
// The per-run bookkeeping lives in a hashmap.Map keyed by vertex id
// (value = depth, aux = predecessor id, -1 at the source), wrapped by
// Result. Result answers depth, predecessor and reachability queries
// and reconstructs root→destination paths by walking predecessors.
//
// On unweighted graphs the recorded depths are exact shortest path
// lengths. Edge weights are ignored; use package sssp when weights
// matter.
//
// Complexity: O(V + E) time, O(V) extra space.
package bfs

// Package sssp implements single-source shortest paths over weighted
// core graphs, three ways:
//
//   - DAG: topological sort once, then one relaxation sweep in topo
//     order. O(V + E). Handles negative weights; rejects cyclic input
//     with dfs.ErrCycleDetected.
//   - Dijkstra: indexable binary min-heap keyed by tentative distance,
//     with decrease-key on every successful relaxation.
//     O((V + E) log V). Negative weights are an unchecked
//     precondition; feeding them in silently produces wrong answers.
//   - BellmanFord: |V|−1 full relaxation passes plus one verification
//     pass. O(V·E). Handles negative weights and reports negative
//     cycles.
//
// All three share the relaxation core: distances start at infinity
// (math.MaxInt64) with predecessor -1, the source starts at 0, and an
// arc u→v of weight w improves v when dist(u) is finite and
// dist(u)+w < dist(v). Distances only ever decrease.
//
// Results come back as a Result over a hashmap.Map keyed by vertex id
// (value = distance, aux = predecessor). When Bellman-Ford proves a
// negative cycle reachable from the source, no shortest-path tree
// exists: the table is emptied and the Result answers only
// NegativeCycle.
//
// Arcs are directed half-edges; an edge added undirected is the
// reciprocal arc pair and relaxes in both directions.
package sssp

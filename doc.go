// Package gravl is a teaching library of classic data structures and
// graph algorithms, built around an adjacency-list graph and the
// separately-chained hash table that serves as scratch memory for every
// graph algorithm.
//
// What's inside:
//
//	hashmap/ — chained hash table (djb2, table doubling/halving),
//	           the map substrate shared by all graph algorithms
//	core/    — Graph, Vertex and edge mutation primitives: directed,
//	           undirected, weighted, multi- and pseudo-graph variants
//	bfs/     — breadth-first search, reachability, shortest-hop paths
//	dfs/     — DFS forests, cycle detection and enumeration,
//	           topological sort, strongly connected components
//	sssp/    — single-source shortest paths: DAG relaxation, Dijkstra
//	           with an indexable min-heap, Bellman-Ford
//	avl/     — standalone self-balancing AVL tree
//
// Every public operation returns an explicit error value; nothing
// terminates the process. The library is single-threaded by design:
// graphs, maps and trees assume exclusive single-writer access.
//
// Quick ASCII example:
//
//	    1──▶2
//	    │   │
//	    ▼   ▼
//	    3──▶4
//
//	a four-vertex DAG: topological order 1,2,3,4 (among others).
//
// A small demo CLI lives under cmd/gravl; it loads graph descriptions
// from TOML files and runs the algorithms above.
package gravl

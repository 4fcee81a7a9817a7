// Package avl implements a self-balancing binary search tree with
// parent pointers.
//
// Heights follow the leaf-is-zero convention: a leaf has height 0 and a
// missing child counts as -1, so every node's two subtree heights
// differ by at most one. Rebalancing is an iterative bottom-up fixup:
// after an insert or delete the walk climbs parent links, recomputes
// heights, applies a single or double rotation wherever the balance
// factor leaves ±1, and stops early once a node's height settles with
// its balance in range.
//
// Keys are ints and must be unique; Insert rejects duplicates with
// ErrDuplicateKey. Delete takes the node itself, splicing it out with
// the classic successor transplant, and hands the detached node back to
// the caller.
//
// All operations are O(log n); InOrder visits keys in ascending order.
// Tree is not safe for concurrent use.
package avl

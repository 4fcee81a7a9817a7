// Package avl: node definition, errors and pointer-walking queries.
package avl

import "errors"

// ErrDuplicateKey is returned by Insert when the key is already stored.
var ErrDuplicateKey = errors.New("avl: key already in tree")

// Node is a tree node. Key is immutable while the node is in a tree;
// structure and height are owned by the Tree.
type Node struct {
	Key int

	parent, left, right *Node
	height              int
}

// Height returns the node's height: 0 for a leaf.
func (n *Node) Height() int { return n.height }

// Parent returns the node's parent, nil at the root.
func (n *Node) Parent() *Node { return n.parent }

// Left returns the left child, nil when absent.
func (n *Node) Left() *Node { return n.left }

// Right returns the right child, nil when absent.
func (n *Node) Right() *Node { return n.right }

// min returns the smallest node of n's subtree.
func (n *Node) min() *Node {
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the largest node of n's subtree.
func (n *Node) max() *Node {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Successor returns the node with the next larger key, or nil.
func (n *Node) Successor() *Node {
	if n.right != nil {
		return n.right.min()
	}
	p := n.parent
	for p != nil && n == p.right {
		n, p = p, p.parent
	}
	return p
}

// Predecessor returns the node with the next smaller key, or nil.
func (n *Node) Predecessor() *Node {
	if n.left != nil {
		return n.left.max()
	}
	p := n.parent
	for p != nil && n == p.left {
		n, p = p, p.parent
	}
	return p
}

// height tolerates nil: a missing child counts as -1.
func height(n *Node) int {
	if n == nil {
		return -1
	}
	return n.height
}

// balance is left height minus right height.
func balance(n *Node) int {
	return height(n.left) - height(n.right)
}

// update recomputes n's height from its children.
func update(n *Node) {
	hl, hr := height(n.left), height(n.right)
	if hl > hr {
		n.height = hl + 1
	} else {
		n.height = hr + 1
	}
}

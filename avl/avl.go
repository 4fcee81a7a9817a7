// Package avl: the tree itself — search, insert, delete, rebalancing.
package avl

// Tree is a self-balancing binary search tree over int keys.
// The zero value is an empty tree, ready to use.
type Tree struct {
	root *Node
	size int
}

// Len returns the number of stored keys.
func (t *Tree) Len() int { return t.size }

// Height returns the root height, -1 for an empty tree.
func (t *Tree) Height() int { return height(t.root) }

// Root returns the root node, nil when empty.
func (t *Tree) Root() *Node { return t.root }

// Min returns the node with the smallest key, nil when empty.
func (t *Tree) Min() *Node {
	if t.root == nil {
		return nil
	}
	return t.root.min()
}

// Max returns the node with the largest key, nil when empty.
func (t *Tree) Max() *Node {
	if t.root == nil {
		return nil
	}
	return t.root.max()
}

// Search returns the node holding key, or (nil, false).
func (t *Tree) Search(key int) (*Node, bool) {
	n := t.root
	for n != nil {
		switch {
		case key < n.Key:
			n = n.left
		case key > n.Key:
			n = n.right
		default:
			return n, true
		}
	}
	return nil, false
}

// InOrder calls fn for every node in ascending key order; returning
// false stops the walk. The tree must not be mutated while walking.
func (t *Tree) InOrder(fn func(n *Node) bool) {
	for n := t.Min(); n != nil; n = n.Successor() {
		if !fn(n) {
			return
		}
	}
}

// Insert adds key and returns its new node. Duplicates are rejected
// with ErrDuplicateKey.
func (t *Tree) Insert(key int) (*Node, error) {
	var parent *Node
	slot := &t.root
	for *slot != nil {
		parent = *slot
		switch {
		case key < parent.Key:
			slot = &parent.left
		case key > parent.Key:
			slot = &parent.right
		default:
			return nil, ErrDuplicateKey
		}
	}
	n := &Node{Key: key, parent: parent}
	*slot = n
	t.size++
	t.fixup(parent)
	return n, nil
}

// Delete splices z out of the tree and returns it with its links
// cleared; z must currently belong to this tree. The classic successor
// transplant handles the two-children case, so no keys are copied and
// every outstanding *Node stays valid.
func (t *Tree) Delete(z *Node) *Node {
	var pivot *Node // deepest node whose subtree changed

	switch {
	case z.left == nil:
		pivot = z.parent
		t.transplant(z, z.right)
	case z.right == nil:
		pivot = z.parent
		t.transplant(z, z.left)
	default:
		y := z.right.min() // successor, has no left child
		pivot = y
		if y.parent != z {
			pivot = y.parent
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.height = z.height
	}

	z.parent, z.left, z.right = nil, nil, nil
	z.height = 0
	t.size--
	t.fixup(pivot)
	return z
}

// transplant replaces the subtree rooted at u with the one rooted at v
// in u's parent.
func (t *Tree) transplant(u, v *Node) {
	switch {
	case u.parent == nil:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	if v != nil {
		v.parent = u.parent
	}
}

// fixup climbs from n to the root, recomputing heights and rotating
// wherever the balance factor leaves ±1. The climb stops early once a
// node's height is unchanged and its balance is in range.
func (t *Tree) fixup(n *Node) {
	for n != nil {
		old := n.height
		update(n)
		switch b := balance(n); {
		case b > 1:
			if balance(n.left) < 0 {
				t.rotateLeft(n.left) // double: left-right
			}
			n = t.rotateRight(n)
		case b < -1:
			if balance(n.right) > 0 {
				t.rotateRight(n.right) // double: right-left
			}
			n = t.rotateLeft(n)
		default:
			if n.height == old {
				return
			}
		}
		n = n.parent
	}
}

// rotateLeft lifts x's right child over x and returns it.
func (t *Tree) rotateLeft(x *Node) *Node {
	y := x.right
	x.right = y.left
	if y.left != nil {
		y.left.parent = x
	}
	t.replaceChild(x, y)
	y.left = x
	x.parent = y
	update(x)
	update(y)
	return y
}

// rotateRight lifts x's left child over x and returns it.
func (t *Tree) rotateRight(x *Node) *Node {
	y := x.left
	x.left = y.right
	if y.right != nil {
		y.right.parent = x
	}
	t.replaceChild(x, y)
	y.right = x
	x.parent = y
	update(x)
	update(y)
	return y
}

// replaceChild rewires x's parent (or the root) to point at y.
func (t *Tree) replaceChild(x, y *Node) {
	y.parent = x.parent
	switch {
	case x.parent == nil:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
}

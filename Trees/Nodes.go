package Trees

// Node is a node in the RBTree. It holds the parent/left/right links, the
// color bit, and the payload. The tree exclusively owns every node reachable
// from its root; Node is exported only so that callers can construct an
// Allocators.Allocator[Node[T]] to back a tree, its fields aren't accessible.
// The zero value is meaningless.
// Sentinels are ordinary nodes: each tree owns a nil sentinel (always black,
// created with parent/left/right pointing to itself) standing in for every
// "no child"/"no parent" slot, and a root sentinel whose left child is the
// actual tree root. Rotations and fix-ups therefore always have a valid node
// to dereference and never special-case nil or the root.
type Node[T any] struct {
	p, l, r *Node[T]
	red     bool
	v       T
}

// rotateLeft performs a left rotation at x; x's right child takes its place.
// The root sentinel absorbs the "x is the root" case, so the only check left
// is the one guarding the nil sentinel's parent link.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateLeft(x *Node[T]) {
	y := x.r
	x.r = y.l
	if y.l != u.nilPtr {
		y.l.p = x
	}
	y.p = x.p
	if x == x.p.l {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rotateRight is the mirror of rotateLeft.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateRight(y *Node[T]) {
	x := y.l
	y.l = x.r
	if x.r != u.nilPtr {
		x.r.p = y
	}
	x.p = y.p
	if y == y.p.l {
		y.p.l = x
	} else {
		y.p.r = x
	}
	x.r = y
	y.p = x
}

// successor returns the in-order successor of x, or the nil sentinel when x
// is the greatest node: either the leftmost node of x's right subtree, or the
// first ancestor reached through a left-child step.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) successor(x *Node[T]) *Node[T] {
	if y := x.r; y != u.nilPtr {
		for y.l != u.nilPtr {
			y = y.l
		}
		return y
	}
	y := x.p
	for y != u.nilPtr && x == y.r {
		x = y
		y = y.p
	}
	if y == u.root {
		return u.nilPtr
	}
	return y
}

package Trees

import (
	"github.com/g-m-twostay/go-containers/Allocators"
)

// RBTree is a binary search tree with no repeated values. It maintains
// balance by recoloring and rotating along the insertion/removal path so that
// the classic red-black properties hold: every node is red or black, the nil
// sentinel is black, a red node never has a red parent, and every path from a
// node to a descendant nil sentinel passes the same number of black nodes.
// The height D of the tree is therefore at most 2*log2(n+1).
// T is the type of values it will hold; ordering is supplied externally as
// lt and eq, which only need to behave like < and == on some key derived from
// T, they don't have to agree with any total order beyond that.
// Every node, the two sentinels included, is obtained from an
// Allocators.Allocator[Node[T]]. The tree holds A non-owning reference to the
// allocator: the allocator must outlive the tree, and several trees of the
// same node type may share one instance. Allocators.Pool is the natural
// companion since all nodes of one tree have identical size.
// RBTree shouldn't be created directly using struct literal.
type RBTree[T any] struct {
	nilPtr *Node[T] // stands in for every absent child/parent, always black
	root   *Node[T] // permanent header; root.l is the actual tree root
	alloc  Allocators.Allocator[Node[T]]
	sz     uint
	lt, eq func(T, T) bool
}

// New returns an empty RBTree backed by the default heap allocator.
func New[T any](lt, eq func(T, T) bool) *RBTree[T] {
	return NewIn[T](lt, eq, Allocators.Heap[Node[T]]{})
}

// NewIn returns an empty RBTree whose nodes come from al. Both sentinels are
// allocated here and stay alive until Release.
func NewIn[T any](lt, eq func(T, T) bool, al Allocators.Allocator[Node[T]]) *RBTree[T] {
	z := al.Alloc()
	z.p, z.l, z.r, z.red, z.v = z, z, z, false, *new(T)
	h := al.Alloc()
	h.p, h.l, h.r, h.red, h.v = z, z, z, false, *new(T)
	return &RBTree[T]{nilPtr: z, root: h, alloc: al, lt: lt, eq: eq}
}

// Size returns the number of values in the tree.
// Time: O(1)
func (u *RBTree[T]) Size() uint {
	return u.sz
}

// Empty reports whether the tree holds no values.
func (u *RBTree[T]) Empty() bool {
	return u.sz == 0
}

// search descends iteratively from the root sentinel's left child comparing
// with eq then lt; returns the nil sentinel on a miss.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) search(v T) *Node[T] {
	x := u.root.l
	for x != u.nilPtr {
		if u.eq(v, x.v) {
			break
		}
		if u.lt(v, x.v) {
			x = x.l
		} else {
			x = x.r
		}
	}
	return x
}

// Has v in the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	return u.search(v) != u.nilPtr
}

// Find returns an iterator at the node holding a value equal to v, or the end
// iterator if there is none.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Find(v T) Iterator[T] {
	return Iterator[T]{u, u.search(v)}
}

// attach links z into its ordinary BST position as a leaf. The root sentinel
// makes the empty-tree case indistinguishable from any other.
func (u *RBTree[T]) attach(z *Node[T]) {
	z.l, z.r = u.nilPtr, u.nilPtr
	y := u.root
	for x := u.root.l; x != u.nilPtr; {
		y = x
		if u.lt(z.v, x.v) {
			x = x.l
		} else {
			x = x.r
		}
	}
	z.p = y
	if y == u.root || u.lt(z.v, y.v) {
		y.l = z
	} else {
		y.r = z
	}
}

// insertFix restores the red-black properties after z was attached red.
// Four symmetric cases: a red uncle means recolor and move up two levels; a
// black uncle means one rotation (two when z is the inner grandchild) plus a
// recolor. The loop ends when z's parent is black, which the sentinels
// guarantee at the top of the tree; at most 2 rotations happen in total.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) insertFix(z *Node[T]) {
	for z.p.red {
		if z.p == z.p.p.l {
			if y := z.p.p.r; y.red {
				z.p.red, y.red, z.p.p.red = false, false, true
				z = z.p.p
			} else {
				if z == z.p.r {
					z = z.p
					u.rotateLeft(z)
				}
				z.p.red, z.p.p.red = false, true
				u.rotateRight(z.p.p)
			}
		} else {
			if y := z.p.p.l; y.red {
				z.p.red, y.red, z.p.p.red = false, false, true
				z = z.p.p
			} else {
				if z == z.p.l {
					z = z.p
					u.rotateRight(z)
				}
				z.p.red, z.p.p.red = false, true
				u.rotateLeft(z.p.p)
			}
		}
	}
	u.root.l.red = false
}

// Insert v into the tree. If a value equal to v already exists, the returned
// iterator addresses the existing node and the bool is false; the tree is
// unchanged. Otherwise a node is allocated, linked red and fixed up, and the
// bool is true.
// Time: O(D) amortized; at most 2 rotations.
func (u *RBTree[T]) Insert(v T) (Iterator[T], bool) {
	if x := u.search(v); x != u.nilPtr {
		return Iterator[T]{u, x}, false
	}
	return u.TrustedInsert(v), true
}

// TrustedInsert inserts v without first checking for an equal value; the
// caller guarantees there is none, typically from a preceding Find. Inserting
// a duplicate this way corrupts the in-order sequence.
// Time: O(D)
func (u *RBTree[T]) TrustedInsert(v T) Iterator[T] {
	z := u.alloc.Alloc()
	z.v = v
	u.attach(z)
	z.red = true
	u.insertFix(z)
	u.sz++
	return Iterator[T]{u, z}
}

// eraseFix restores the red-black properties after a black node was spliced
// out and x took its structural place. Walks up while x is black and not the
// root, choosing among four symmetric cases by the sibling's color and the
// colors of the sibling's children; ends by coloring the final node black.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) eraseFix(x *Node[T]) {
	root := u.root.l
	for !x.red && x != root {
		if x == x.p.l {
			w := x.p.r
			if w.red {
				w.red, x.p.red = false, true
				u.rotateLeft(x.p)
				w = x.p.r
			}
			if !w.l.red && !w.r.red {
				w.red = true
				x = x.p
			} else {
				if !w.r.red {
					w.l.red, w.red = false, true
					u.rotateRight(w)
					w = x.p.r
				}
				w.red, x.p.red, w.r.red = x.p.red, false, false
				u.rotateLeft(x.p)
				x = root
			}
		} else {
			w := x.p.l
			if w.red {
				w.red, x.p.red = false, true
				u.rotateRight(x.p)
				w = x.p.l
			}
			if !w.l.red && !w.r.red {
				w.red = true
				x = x.p
			} else {
				if !w.l.red {
					w.r.red, w.red = false, true
					u.rotateLeft(w)
					w = x.p.l
				}
				w.red, x.p.red, w.l.red = x.p.red, false, false
				u.rotateRight(x.p)
				x = root
			}
		}
	}
	x.red = false
}

// erase unlinks and frees z. A node with at most one child is spliced out
// directly; otherwise the in-order successor is spliced out of its place and
// then takes over z's links and color, so the successor's storage survives
// and z's is what gets freed. A black splice triggers eraseFix on the child
// that filled the gap.
// Time: O(D) amortized.
func (u *RBTree[T]) erase(z *Node[T]) {
	y := z
	if z.l != u.nilPtr && z.r != u.nilPtr {
		y = u.successor(z)
	}
	x := y.r
	if y.l != u.nilPtr {
		x = y.l
	}
	x.p = y.p
	if u.root == x.p {
		u.root.l = x
	} else if y == y.p.l {
		y.p.l = x
	} else {
		y.p.r = x
	}
	if y != z {
		if !y.red {
			u.eraseFix(x)
		}
		y.l, y.r, y.p, y.red = z.l, z.r, z.p, z.red
		z.l.p, z.r.p = y, y
		if z == z.p.l {
			z.p.l = y
		} else {
			z.p.r = y
		}
	} else if !y.red {
		u.eraseFix(x)
	}
	u.freeNode(z)
	u.sz--
}

// EraseAt removes the node the iterator is bound to. Erasing through the end
// iterator, an unbound iterator, or an iterator of another tree panics with
// an InvalidIteratorError.
// Time: O(D) amortized.
func (u *RBTree[T]) EraseAt(it Iterator[T]) {
	if it.t != u || it.n == nil || it.n == u.nilPtr {
		panic(&InvalidIteratorError{"EraseAt"})
	}
	u.erase(it.n)
}

// Erase removes the value equal to v if present. Returns true if the removal
// happened.
// Time: O(D) amortized.
func (u *RBTree[T]) Erase(v T) bool {
	if x := u.search(v); x != u.nilPtr {
		u.erase(x)
		return true
	}
	return false
}

// freeNode zeroes the node before handing its storage back so the payload
// releases whatever it references first.
func (u *RBTree[T]) freeNode(z *Node[T]) {
	z.p, z.l, z.r, z.red, z.v = nil, nil, nil, false, *new(T)
	u.alloc.Free(z)
}

func (u *RBTree[T]) clear(x *Node[T]) {
	if x != u.nilPtr {
		u.clear(x.l)
		u.clear(x.r)
		u.freeNode(x)
	}
}

// Clear frees every real node post-order and resets the root sentinel's left
// child to the nil sentinel. The sentinels stay alive.
// Time: O(n)
func (u *RBTree[T]) Clear() {
	u.clear(u.root.l)
	u.root.l = u.nilPtr
	u.sz = 0
}

// Release clears the tree and returns both sentinels to the allocator. The
// tree must not be used afterwards.
func (u *RBTree[T]) Release() {
	u.Clear()
	u.freeNode(u.root)
	u.freeNode(u.nilPtr)
	u.nilPtr, u.root, u.alloc = nil, nil, nil
}

// Min returns the smallest value in the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Min() (T, bool) {
	x := u.root.l
	if x == u.nilPtr {
		return *new(T), false
	}
	for x.l != u.nilPtr {
		x = x.l
	}
	return x.v, true
}

// Max returns the greatest value in the tree.
// Time: O(D); Space: O(1)
func (u *RBTree[T]) Max() (T, bool) {
	x := u.root.l
	if x == u.nilPtr {
		return *new(T), false
	}
	for x.r != u.nilPtr {
		x = x.r
	}
	return x.v, true
}

// Clone performs a deep copy of every payload into nodes newly allocated
// under the same allocator reference; the allocator object itself isn't
// copied. Values are replayed in ascending order.
// Time: O(n*D)
func (u *RBTree[T]) Clone() *RBTree[T] {
	c := NewIn[T](u.lt, u.eq, u.alloc)
	for it := u.Begin(); it.n != u.nilPtr; it.Next() {
		c.TrustedInsert(it.n.v)
	}
	return c
}

// Move transfers the sentinels, the size counter and the allocator reference
// into a fresh tree and returns it. The receiver is left valid but empty and
// allocator-less: Size reports 0 but it can't hold values again.
func (u *RBTree[T]) Move() *RBTree[T] {
	c := &RBTree[T]{u.nilPtr, u.root, u.alloc, u.sz, u.lt, u.eq}
	u.nilPtr, u.root, u.alloc, u.sz = nil, nil, nil, 0
	return c
}

// Swap exchanges the whole contents of two trees, allocator references
// included.
// Time: O(1)
func (u *RBTree[T]) Swap(o *RBTree[T]) {
	*u, *o = *o, *u
}

// corrupt returns the black-height of the subtree at x and whether anything
// below violates the red-black or ordering properties.
func (u *RBTree[T]) corrupt(x *Node[T]) (int, bool) {
	if x == u.nilPtr {
		return 1, false
	}
	if x.red && (x.l.red || x.r.red) {
		return 0, true
	}
	if x.l != u.nilPtr && (x.l.p != x || !u.lt(x.l.v, x.v)) {
		return 0, true
	}
	if x.r != u.nilPtr && (x.r.p != x || !u.lt(x.v, x.r.v)) {
		return 0, true
	}
	lh, bad := u.corrupt(x.l)
	if bad {
		return 0, true
	}
	rh, bad := u.corrupt(x.r)
	if bad || lh != rh {
		return 0, true
	}
	if !x.red {
		lh++
	}
	return lh, false
}

// Corrupt reports whether the tree violates any of its structural properties:
// a red root, a red node with a red child, unequal black counts on some pair
// of paths to the nil sentinels, a broken parent link, or children out of
// order. An intact tree returns false.
// Time: O(n)
func (u *RBTree[T]) Corrupt() bool {
	if u.root.l.red || u.nilPtr.red {
		return true
	}
	_, bad := u.corrupt(u.root.l)
	return bad
}

package Trees

// Iterator is a forward-only cursor bound to one tree and one node; the nil
// sentinel marks the end position. The zero value is unbound and unusable.
// Two iterators are equal (plain ==) exactly when they are bound to the same
// tree and the same node.
// Dereferencing or advancing an unbound or end-positioned iterator panics
// with an InvalidIteratorError; it is not legal to advance past end. The tree
// must not be modified while an iterator walks it, except through EraseAt on
// the iterator's own node, after which that iterator is dead.
type Iterator[T any] struct {
	t *RBTree[T]
	n *Node[T]
}

// Begin returns an iterator at the smallest value, or End() on an empty tree.
// Time: O(D)
func (u *RBTree[T]) Begin() Iterator[T] {
	x := u.root.l
	for x.l != u.nilPtr {
		x = x.l
	}
	return Iterator[T]{u, x}
}

// End returns the iterator one past the greatest value.
// Time: O(1)
func (u *RBTree[T]) End() Iterator[T] {
	return Iterator[T]{u, u.nilPtr}
}

func (it Iterator[T]) check(op string) {
	if it.t == nil || it.n == nil || it.n == it.t.nilPtr {
		panic(&InvalidIteratorError{op})
	}
}

// Value returns a pointer to the payload at the cursor. The caller must not
// mutate it in a way that changes its ordering.
func (it Iterator[T]) Value() *T {
	it.check("Value")
	return &it.n.v
}

// Next advances to the in-order successor.
// Time: amortized O(1) over a full traversal, O(D) worst case.
func (it *Iterator[T]) Next() {
	it.check("Next")
	it.n = it.t.successor(it.n)
}

// InOrder returns A closure function f acting like an iterator: val, valid=f().
// val is meaningful only while valid is true; once valid turns false f is
// exhausted and stays so. Values come out in ascending order under lt.
// The tree must not be modified during the iteration.
func (u *RBTree[T]) InOrder() func() (T, bool) {
	cur := u.Begin().n
	return func() (r T, ok bool) {
		if cur == u.nilPtr {
			return
		}
		r, ok = cur.v, true
		cur = u.successor(cur)
		return
	}
}

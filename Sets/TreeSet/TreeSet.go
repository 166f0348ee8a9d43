package TreeSet

import (
	"github.com/g-m-twostay/go-containers/Allocators"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// TreeSet is an ordered set: a thin adapter over Trees.RBTree in which the
// stored value is its own key. Range and InOrder visit elements in ascending
// order; all other behaviors, including allocator sharing and iterator rules,
// are those of the underlying tree.
// TreeSet shouldn't be created directly using struct literal.
type TreeSet[E any] struct {
	t *Trees.RBTree[E]
}

// New TreeSet ordered by < on E, backed by the default heap allocator.
func New[E constraints.Ordered]() *TreeSet[E] {
	return NewIn[E](Allocators.Heap[Trees.Node[E]]{})
}

// NewIn is New with node storage drawn from al. al must outlive the set.
func NewIn[E constraints.Ordered](al Allocators.Allocator[Trees.Node[E]]) *TreeSet[E] {
	return NewFuncIn(func(a, b E) bool { return a < b }, func(a, b E) bool { return a == b }, al)
}

// NewFunc is the TreeSet equivalence of New for user-defined types: lt and eq
// replace < and ==.
func NewFunc[E any](lt, eq func(E, E) bool) *TreeSet[E] {
	return NewFuncIn(lt, eq, Allocators.Heap[Trees.Node[E]]{})
}

// NewFuncIn is NewFunc with node storage drawn from al. al must outlive the
// set.
func NewFuncIn[E any](lt, eq func(E, E) bool, al Allocators.Allocator[Trees.Node[E]]) *TreeSet[E] {
	return &TreeSet[E]{Trees.NewIn[E](lt, eq, al)}
}

// Put e in the set. Returns true if e wasn't already present; an already
// present element leaves the set unchanged.
func (u *TreeSet[E]) Put(e E) bool {
	_, added := u.t.Insert(e)
	return added
}

// Has e in the set.
func (u *TreeSet[E]) Has(e E) bool {
	return u.t.Has(e)
}

// Remove e from the set. Returns true if the removal is successful.
func (u *TreeSet[E]) Remove(e E) bool {
	return u.t.Erase(e)
}

// Size of the set.
func (u *TreeSet[E]) Size() uint {
	return u.t.Size()
}

// Empty reports Size()==0.
func (u *TreeSet[E]) Empty() bool {
	return u.t.Empty()
}

// Range calls f on each element in ascending order until f returns false.
func (u *TreeSet[E]) Range(f func(E) bool) {
	next := u.t.InOrder()
	for e, ok := next(); ok; e, ok = next() {
		if !f(e) {
			return
		}
	}
}

// Find returns an iterator at e, or End() if e isn't present.
func (u *TreeSet[E]) Find(e E) Trees.Iterator[E] {
	return u.t.Find(e)
}

// Begin returns an iterator at the smallest element.
func (u *TreeSet[E]) Begin() Trees.Iterator[E] {
	return u.t.Begin()
}

// End returns the iterator one past the greatest element.
func (u *TreeSet[E]) End() Trees.Iterator[E] {
	return u.t.End()
}

// RemoveAt removes the element the iterator is bound to. Panics like
// Trees.RBTree.EraseAt on an end or unbound iterator.
func (u *TreeSet[E]) RemoveAt(it Trees.Iterator[E]) {
	u.t.EraseAt(it)
}

// Min element of the set.
func (u *TreeSet[E]) Min() (E, bool) {
	return u.t.Min()
}

// Max element of the set.
func (u *TreeSet[E]) Max() (E, bool) {
	return u.t.Max()
}

// Clear removes every element; the set stays usable.
func (u *TreeSet[E]) Clear() {
	u.t.Clear()
}

// Release clears the set and returns the sentinel nodes to the allocator.
// The set must not be used afterwards.
func (u *TreeSet[E]) Release() {
	u.t.Release()
}

// Clone deep-copies every element into a new set sharing this set's
// allocator.
func (u *TreeSet[E]) Clone() *TreeSet[E] {
	return &TreeSet[E]{u.t.Clone()}
}

// Corrupt reports whether the underlying tree violates its structural
// properties.
func (u *TreeSet[E]) Corrupt() bool {
	return u.t.Corrupt()
}

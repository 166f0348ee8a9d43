package TreeMap

import (
	"github.com/g-m-twostay/go-containers/Allocators"
	"github.com/g-m-twostay/go-containers/Trees"
	"golang.org/x/exp/constraints"
)

// Pair is the payload a TreeMap stores in each tree node. Only Key
// participates in ordering; Val rides along.
type Pair[K, V any] struct {
	Key K
	Val V
}

// TreeMap is an ordered map: a thin adapter over Trees.RBTree storing
// Pair[K, V] payloads compared by key only. Range visits entries in ascending
// key order; allocator sharing and iterator rules are those of the underlying
// tree.
// TreeMap shouldn't be created directly using struct literal.
type TreeMap[K, V any] struct {
	t *Trees.RBTree[Pair[K, V]]
}

// New TreeMap ordered by < on K, backed by the default heap allocator.
func New[K constraints.Ordered, V any]() *TreeMap[K, V] {
	return NewIn[K, V](Allocators.Heap[Trees.Node[Pair[K, V]]]{})
}

// NewIn is New with node storage drawn from al. al must outlive the map.
func NewIn[K constraints.Ordered, V any](al Allocators.Allocator[Trees.Node[Pair[K, V]]]) *TreeMap[K, V] {
	return NewFuncIn[K, V](func(a, b K) bool { return a < b }, func(a, b K) bool { return a == b }, al)
}

// NewFunc is the TreeMap equivalence of New for user-defined key types: lt
// and eq replace < and == on K.
func NewFunc[K, V any](lt, eq func(K, K) bool) *TreeMap[K, V] {
	return NewFuncIn[K, V](lt, eq, Allocators.Heap[Trees.Node[Pair[K, V]]]{})
}

// NewFuncIn is NewFunc with node storage drawn from al. al must outlive the
// map.
func NewFuncIn[K, V any](lt, eq func(K, K) bool, al Allocators.Allocator[Trees.Node[Pair[K, V]]]) *TreeMap[K, V] {
	return &TreeMap[K, V]{Trees.NewIn[Pair[K, V]](
		func(a, b Pair[K, V]) bool { return lt(a.Key, b.Key) },
		func(a, b Pair[K, V]) bool { return eq(a.Key, b.Key) },
		al)}
}

// Insert stores (k, v) only if k isn't present. The returned iterator
// addresses the entry holding k either way; the bool reports whether an
// insertion happened.
func (u *TreeMap[K, V]) Insert(k K, v V) (Trees.Iterator[Pair[K, V]], bool) {
	return u.t.Insert(Pair[K, V]{k, v})
}

// Put stores (k, v), overwriting the value of an existing entry for k.
// Returns true if a new entry was created.
func (u *TreeMap[K, V]) Put(k K, v V) bool {
	it, added := u.t.Insert(Pair[K, V]{k, v})
	if !added {
		it.Value().Val = v
	}
	return added
}

// Get returns the value stored for k.
func (u *TreeMap[K, V]) Get(k K) (V, bool) {
	if it := u.t.Find(Pair[K, V]{Key: k}); it != u.t.End() {
		return it.Value().Val, true
	}
	return *new(V), false
}

// Has k in the map.
func (u *TreeMap[K, V]) Has(k K) bool {
	return u.t.Has(Pair[K, V]{Key: k})
}

// Remove the entry for k. Returns true if the removal is successful.
func (u *TreeMap[K, V]) Remove(k K) bool {
	return u.t.Erase(Pair[K, V]{Key: k})
}

// Size of the map.
func (u *TreeMap[K, V]) Size() uint {
	return u.t.Size()
}

// Empty reports Size()==0.
func (u *TreeMap[K, V]) Empty() bool {
	return u.t.Empty()
}

// Range calls f on each entry in ascending key order until f returns false.
func (u *TreeMap[K, V]) Range(f func(K, V) bool) {
	next := u.t.InOrder()
	for p, ok := next(); ok; p, ok = next() {
		if !f(p.Key, p.Val) {
			return
		}
	}
}

// Find returns an iterator at the entry for k, or End() if there is none.
func (u *TreeMap[K, V]) Find(k K) Trees.Iterator[Pair[K, V]] {
	return u.t.Find(Pair[K, V]{Key: k})
}

// Begin returns an iterator at the smallest key.
func (u *TreeMap[K, V]) Begin() Trees.Iterator[Pair[K, V]] {
	return u.t.Begin()
}

// End returns the iterator one past the greatest key.
func (u *TreeMap[K, V]) End() Trees.Iterator[Pair[K, V]] {
	return u.t.End()
}

// RemoveAt removes the entry the iterator is bound to. Panics like
// Trees.RBTree.EraseAt on an end or unbound iterator.
func (u *TreeMap[K, V]) RemoveAt(it Trees.Iterator[Pair[K, V]]) {
	u.t.EraseAt(it)
}

// Min entry of the map.
func (u *TreeMap[K, V]) Min() (Pair[K, V], bool) {
	return u.t.Min()
}

// Max entry of the map.
func (u *TreeMap[K, V]) Max() (Pair[K, V], bool) {
	return u.t.Max()
}

// Clear removes every entry; the map stays usable.
func (u *TreeMap[K, V]) Clear() {
	u.t.Clear()
}

// Release clears the map and returns the sentinel nodes to the allocator.
// The map must not be used afterwards.
func (u *TreeMap[K, V]) Release() {
	u.t.Release()
}

// Clone deep-copies every entry into a new map sharing this map's allocator.
func (u *TreeMap[K, V]) Clone() *TreeMap[K, V] {
	return &TreeMap[K, V]{u.t.Clone()}
}

// Corrupt reports whether the underlying tree violates its structural
// properties.
func (u *TreeMap[K, V]) Corrupt() bool {
	return u.t.Corrupt()
}

package Sets

type Set[E any] interface {
	Put(E) bool
	Has(E) bool
	Remove(E) bool
	Size() uint
	Range(func(E) bool)
}

// OrderedSet is a Set whose Range visits elements in ascending order and that
// can report its extremes.
type OrderedSet[E any] interface {
	Set[E]
	Min() (E, bool)
	Max() (E, bool)
}

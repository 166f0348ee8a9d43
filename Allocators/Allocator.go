package Allocators

// Allocator hands out storage for single values of type T. A container holds
// A non-owning reference to one; the allocator must outlive every container
// using it, and one instance may be shared by multiple containers of the same
// node type.
// Alloc returns a zero valued block the first time A piece of storage is
// handed out; a reused block retains whatever its previous owner left behind,
// so callers are expected to initialize every field they rely on. Free returns
// a block obtained from Alloc on the same instance; passing a block from
// elsewhere or freeing the same block twice is undefined behavior and isn't
// checked.
// Implementations provide no thread safety unless explicitly documented;
// don't share one instance between goroutines without external
// synchronization.
type Allocator[T any] interface {
	Alloc() *T
	Free(*T)
}

// Heap is the default allocator: a stateless passthrough to the Go heap.
// Alloc is new(T); Free is a no-op because reclamation is the garbage
// collector's job. The zero value is ready to use, and since Heap carries no
// state it is safe to use from any goroutine.
type Heap[T any] struct{}

func (Heap[T]) Alloc() *T { return new(T) }

func (Heap[T]) Free(*T) {}

// Counting wraps another Allocator and tracks the number of live blocks.
// Useful for verifying allocation/deallocation balance in tests.
type Counting[T any] struct {
	base Allocator[T]
	live int
}

func NewCounting[T any](base Allocator[T]) *Counting[T] {
	return &Counting[T]{base: base}
}

func (u *Counting[T]) Alloc() *T {
	u.live++
	return u.base.Alloc()
}

func (u *Counting[T]) Free(p *T) {
	u.live--
	u.base.Free(p)
}

// Count returns the current number of blocks allocated but not yet freed.
func (u *Counting[T]) Count() int {
	return u.live
}

var (
	_ Allocator[int] = Heap[int]{}
	_ Allocator[int] = (*Counting[int])(nil)
)

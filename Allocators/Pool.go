package Allocators

import (
	"unsafe"
)

// A chunk is one fixed-size block managed by Pool: a hidden free-list header
// followed by the payload. next is meaningful only while the chunk sits on the
// free list.
type chunk[T any] struct {
	next *chunk[T]
	v    T
}

// Pool allocates many same-size blocks in O(1) without per-block heap
// overhead. Storage grows slab by slab: whenever the free list is empty the
// pool acquires one contiguous slab of chunksPerSlab chunks and threads them
// onto the list. Freed chunks go back on the list head, so allocation after a
// free reuses the just-freed storage (LIFO). Memory is never returned to the
// runtime until Release; there is no compaction or shrinking.
// The block size is fixed per instance by the type parameter, which is what
// makes the free list this cheap: there is no per-allocation metadata to
// search. Pair a Pool with tree containers that churn through many identical
// nodes.
// A Pool must not be used from multiple goroutines without external
// synchronization.
type Pool[T any] struct {
	free          *chunk[T]
	slabs         [][]chunk[T]
	chunksPerSlab uint
}

// NewPool returns a Pool that grows chunksPerSlab chunks at a time.
// chunksPerSlab must be positive.
func NewPool[T any](chunksPerSlab uint) *Pool[T] {
	if chunksPerSlab == 0 {
		panic("Allocators: Pool needs at least 1 chunk per slab")
	}
	return &Pool[T]{chunksPerSlab: chunksPerSlab}
}

// Alloc pops a chunk off the free list, acquiring a new slab first if the
// list is empty.
// Time: O(1) amortized.
func (u *Pool[T]) Alloc() *T {
	if u.free == nil {
		slab := make([]chunk[T], u.chunksPerSlab)
		for i := range slab {
			slab[i].next = u.free
			u.free = &slab[i]
		}
		u.slabs = append(u.slabs, slab)
	}
	c := u.free
	u.free = c.next
	c.next = nil
	return &c.v
}

// Free pushes the chunk holding p back onto the free list. The header is
// recovered from the payload pointer by its fixed offset, so p must have come
// from Alloc on this instance and must not already be free; neither is
// checked.
// Time: O(1).
func (u *Pool[T]) Free(p *T) {
	c := (*chunk[T])(unsafe.Add(unsafe.Pointer(p), -int(unsafe.Offsetof(chunk[T]{}.v))))
	c.next = u.free
	u.free = c
}

// ChunksPerSlab returns the configured number of chunks acquired per slab.
func (u *Pool[T]) ChunksPerSlab() uint {
	return u.chunksPerSlab
}

// Slabs returns the number of slabs currently owned.
func (u *Pool[T]) Slabs() int {
	return len(u.slabs)
}

// Release drops every owned slab and empties the free list. It doesn't verify
// that all chunks were freed first; any block still held by a caller keeps
// its slab alive only through that caller's own reference.
func (u *Pool[T]) Release() {
	u.slabs, u.free = nil, nil
}

var _ Allocator[int] = (*Pool[int])(nil)

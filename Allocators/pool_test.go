package Allocators

import (
	"testing"
)

func TestPool_Reuse(t *testing.T) {
	pool := NewPool[uint64](8)
	p0 := pool.Alloc()
	*p0 = 42
	pool.Free(p0)
	if p1 := pool.Alloc(); p1 != p0 {
		t.Error("allocation after a free did not reuse the just-freed chunk")
	}
	// LIFO order over several chunks.
	a, b, c := pool.Alloc(), pool.Alloc(), pool.Alloc()
	pool.Free(a)
	pool.Free(b)
	pool.Free(c)
	if pool.Alloc() != c || pool.Alloc() != b || pool.Alloc() != a {
		t.Error("free list is not LIFO")
	}
}

func TestPool_SlabGrowth(t *testing.T) {
	pool := NewPool[uint64](2)
	if pool.Slabs() != 0 {
		t.Errorf("fresh pool owns %d slabs, want 0", pool.Slabs())
	}
	p0, p1 := pool.Alloc(), pool.Alloc()
	if pool.Slabs() != 1 {
		t.Errorf("pool owns %d slabs after 2 allocations, want 1", pool.Slabs())
	}
	p2 := pool.Alloc() // third allocation must acquire a second slab
	if pool.Slabs() != 2 {
		t.Errorf("pool owns %d slabs after 3 allocations, want 2", pool.Slabs())
	}
	for _, p := range []*uint64{p0, p1, p2} {
		pool.Free(p)
	}
	for i0 := 0; i0 < 4; i0++ {
		pool.Alloc()
	}
	if pool.Slabs() != 2 { // freed chunks cover the demand, no new slab
		t.Errorf("pool owns %d slabs, want 2", pool.Slabs())
	}
}

func TestPool_Distinct(t *testing.T) {
	pool := NewPool[uint32](3)
	seen := make(map[*uint32]struct{})
	for i := uint32(0); i < uint32(100); i++ {
		p := pool.Alloc()
		if _, in := seen[p]; in {
			t.Fatalf("allocation %d returned a live chunk", i)
		}
		*p = i
		seen[p] = struct{}{}
	}
	for p := range seen {
		if *p >= 100 {
			t.Error("chunk payload was clobbered")
		}
	}
}

func TestPool_ZeroChunksPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewPool(0) did not panic")
		}
	}()
	NewPool[int](0)
}

func TestPool_Release(t *testing.T) {
	pool := NewPool[int](4)
	for i0 := 0; i0 < 10; i0++ {
		pool.Alloc()
	}
	pool.Release()
	if pool.Slabs() != 0 {
		t.Errorf("pool owns %d slabs after Release, want 0", pool.Slabs())
	}
	if pool.Alloc() == nil || pool.Slabs() != 1 { // usable again, grows fresh
		t.Error("pool is not usable after Release")
	}
}

func TestCounting_Balance(t *testing.T) {
	al := NewCounting[int](Heap[int]{})
	ps := make([]*int, 0, 100)
	for i := 0; i < 100; i++ {
		ps = append(ps, al.Alloc())
		if al.Count() != i+1 {
			t.Fatalf("count is %d after %d allocations", al.Count(), i+1)
		}
	}
	for i, p := range ps {
		al.Free(p)
		if al.Count() != len(ps)-i-1 {
			t.Fatalf("count is %d after %d frees", al.Count(), i+1)
		}
	}
}

func TestCounting_OverPool(t *testing.T) {
	pool := NewPool[int](2)
	al := NewCounting[int](pool)
	n := 31
	ps := make([]*int, 0, n)
	for i0 := 0; i0 < n; i0++ {
		ps = append(ps, al.Alloc())
	}
	if al.Count() > n {
		t.Errorf("outstanding chunks %d exceed %d", al.Count(), n)
	}
	if want := (n + 1) / 2; pool.Slabs() != want {
		t.Errorf("pool owns %d slabs for %d live chunks, want %d", pool.Slabs(), n, want)
	}
	for _, p := range ps {
		al.Free(p)
	}
	if al.Count() != 0 {
		t.Errorf("count is %d after freeing everything, want 0", al.Count())
	}
}

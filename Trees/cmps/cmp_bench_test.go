package cmps

import (
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/petar/GoLLRB/llrb"

	"github.com/g-m-twostay/go-containers/Trees"
)

// compares with https://github.com/google/btree, https://github.com/petar/GoLLRB,
// and https://github.com/emirpasic/gods using the same key stream. These are
// all ordered containers; only the balancing scheme differs.
const benchmarkItemCount = 1 << 16

func keys() []int {
	a := make([]int, benchmarkItemCount)
	s := uint64(0x9E3779B97F4A7C15)
	for i := range a {
		s ^= s << 13
		s ^= s >> 7
		s ^= s << 17
		a[i] = int(s % (benchmarkItemCount * 2))
	}
	return a
}

func intLT(a, b int) bool { return a < b }
func intEQ(a, b int) bool { return a == b }

func setupRBTree(b *testing.B, ks []int) *Trees.RBTree[int] {
	b.Helper()
	tree := Trees.New[int](intLT, intEQ)
	for _, k := range ks {
		tree.Insert(k)
	}
	return tree
}

func BenchmarkRBTree_Insert(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := Trees.New[int](intLT, intEQ)
		for _, k := range ks {
			tree.Insert(k)
		}
	}
}

func BenchmarkBTree_Insert(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := btree.NewOrderedG[int](32)
		for _, k := range ks {
			tree.ReplaceOrInsert(k)
		}
	}
}

func BenchmarkLLRB_Insert(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := llrb.New()
		for _, k := range ks {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
	}
}

func BenchmarkGodsRBT_Insert(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		tree := redblacktree.NewWithIntComparator()
		for _, k := range ks {
			tree.Put(k, nil)
		}
	}
}

func BenchmarkRBTree_Has(b *testing.B) {
	ks := keys()
	tree := setupRBTree(b, ks)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(ks[i%len(ks)])
	}
}

func BenchmarkBTree_Has(b *testing.B) {
	ks := keys()
	tree := btree.NewOrderedG[int](32)
	for _, k := range ks {
		tree.ReplaceOrInsert(k)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(ks[i%len(ks)])
	}
}

func BenchmarkLLRB_Has(b *testing.B) {
	ks := keys()
	tree := llrb.New()
	for _, k := range ks {
		tree.ReplaceOrInsert(llrb.Int(k))
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Has(llrb.Int(ks[i%len(ks)]))
	}
}

func BenchmarkGodsRBT_Has(b *testing.B) {
	ks := keys()
	tree := redblacktree.NewWithIntComparator()
	for _, k := range ks {
		tree.Put(k, nil)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Get(ks[i%len(ks)])
	}
}

func BenchmarkRBTree_Erase(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := setupRBTree(b, ks)
		b.StartTimer()
		for _, k := range ks {
			tree.Erase(k)
		}
	}
}

func BenchmarkBTree_Erase(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := btree.NewOrderedG[int](32)
		for _, k := range ks {
			tree.ReplaceOrInsert(k)
		}
		b.StartTimer()
		for _, k := range ks {
			tree.Delete(k)
		}
	}
}

func BenchmarkLLRB_Erase(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := llrb.New()
		for _, k := range ks {
			tree.ReplaceOrInsert(llrb.Int(k))
		}
		b.StartTimer()
		for _, k := range ks {
			tree.Delete(llrb.Int(k))
		}
	}
}

func BenchmarkGodsRBT_Erase(b *testing.B) {
	ks := keys()
	b.ResetTimer()
	for i0 := 0; i0 < b.N; i0++ {
		b.StopTimer()
		tree := redblacktree.NewWithIntComparator()
		for _, k := range ks {
			tree.Put(k, nil)
		}
		b.StartTimer()
		for _, k := range ks {
			tree.Remove(k)
		}
	}
}

package sparsevec

import (
	"sort"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/btree"
)

type pair struct {
	index int
	value int
}

func pairLess(a, b pair) bool { return a.index < b.index }

// getIndices returns total pseudo-random indices in ascending order, so the
// O(n) shift of an unsorted insert does not dominate the measurements.
func getIndices(total int) []int {
	const seed = 1234567890

	var (
		faker   = gofakeit.New(seed)
		indices = make([]int, total)
	)

	for i := range indices {
		indices[i] = faker.Number(0, 1<<26)
	}
	sort.Ints(indices)

	return indices
}

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		indices = getIndices(b.N)
		m       = make(map[int]int)
	)

	b.ResetTimer()

	for i, index := range indices {
		m[index] = i
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		indices = getIndices(b.N)
		m       = make(map[int]int)
	)

	for i, index := range indices {
		m[index] = i
	}

	b.ResetTimer()

	for _, index := range indices {
		_ = m[index]
	}
}

func BenchmarkBTree_Set(b *testing.B) {
	var (
		indices = getIndices(b.N)
		tr      = btree.NewG[pair](32, pairLess)
	)

	b.ResetTimer()

	for i, index := range indices {
		tr.ReplaceOrInsert(pair{index, i})
	}
}

func BenchmarkBTree_Get(b *testing.B) {
	var (
		indices = getIndices(b.N)
		tr      = btree.NewG[pair](32, pairLess)
	)

	for i, index := range indices {
		tr.ReplaceOrInsert(pair{index, i})
	}

	b.ResetTimer()

	for _, index := range indices {
		_, _ = tr.Get(pair{index: index})
	}
}

func BenchmarkSparseVec_Set(b *testing.B) {
	var (
		indices = getIndices(b.N)
		sv      = WithCapacity[int](b.N)
	)

	b.ResetTimer()

	for i, index := range indices {
		sv.Set(index, i)
	}
}

func BenchmarkSparseVec_Get(b *testing.B) {
	var (
		indices = getIndices(b.N)
		sv      = WithCapacity[int](b.N)
	)

	for i, index := range indices {
		sv.Set(index, i)
	}

	b.ResetTimer()

	for _, index := range indices {
		_, _ = sv.Get(index)
	}
}

func BenchmarkSparseVec_Iter(b *testing.B) {
	var (
		indices = getIndices(b.N)
		sv      = WithCapacity[int](b.N)
		sum     = 0
	)

	for i, index := range indices {
		sv.Set(index, i)
	}

	b.ResetTimer()

	sv.Iter(func(_ int, val int) bool {
		sum += val
		return true
	})

	_ = sum
}

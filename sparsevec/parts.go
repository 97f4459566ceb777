package sparsevec

import (
	"fmt"

	"github.com/aglyzov/go-sparse/alloc"
)

// IntoParts deconstructs the container into its raw parts: the sorted
// indices, the parallel values and the backing allocator. The returned
// slices alias the container's memory and keep its full capacity; the
// receiver is reset to empty and no longer owns the memory. O(1).
func (sv *SparseVec[T]) IntoParts() ([]int, []T, alloc.Allocator) {
	iv := lend(&sv.indices, sv.alloc)
	vv := lend(&sv.values, sv.alloc)
	return iv.full()[:iv.len], vv.full()[:vv.len], sv.alloc
}

// FromParts builds a SparseVec from previously deconstructed parts,
// validating that both slices have the same length and that indices are
// non-negative, unique and strictly ascending. A nil allocator means
// alloc.Default.
func FromParts[T any](indices []int, values []T, a alloc.Allocator) (*SparseVec[T], error) {
	if len(indices) != len(values) {
		return nil, fmt.Errorf("sparsevec: %d indices for %d values", len(indices), len(values))
	}
	if len(indices) > 0 && indices[0] < 0 {
		return nil, fmt.Errorf("sparsevec: negative index %d", indices[0])
	}
	for i := 1; i < len(indices); i++ {
		if indices[i] <= indices[i-1] {
			return nil, fmt.Errorf("sparsevec: indices out of order at %d: %d then %d",
				i, indices[i-1], indices[i])
		}
	}
	return FromRawParts(indices, values, a), nil
}

// FromRawParts is the O(1) trusting inverse of IntoParts: no validation is
// performed. The caller guarantees that both slices have the same length,
// that indices are non-negative, unique and strictly ascending, and that a
// (or alloc.Default, when a is nil) is the allocator that produced the
// slices' memory. The slices must not be used directly afterwards.
func FromRawParts[T any](indices []int, values []T, a alloc.Allocator) *SparseVec[T] {
	if a == nil {
		a = alloc.Default
	}
	return &SparseVec[T]{
		indices: bufFromSlice(indices),
		values:  bufFromSlice(values),
		alloc:   a,
	}
}

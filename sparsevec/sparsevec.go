package sparsevec

import (
	"fmt"
	"iter"
	"slices"

	"github.com/aglyzov/go-sparse/alloc"
)

// SparseVec maps a sparse set of non-negative integer indices to values of
// type T.
//
// Indices and values live in two parallel arrays sorted by index, so
// iteration is dense and ordered while Set and Del pay O(n) for the shift.
// Both arrays are backed by exactly one allocator, stored once in the
// container; the buffers themselves stay typed against the inert stand-in
// and the real allocator is lent to them only while memory moves.
type SparseVec[T any] struct {
	indices buf[int]
	values  buf[T]
	alloc   alloc.Allocator
}

// New returns an empty SparseVec backed by the default allocator.
func New[T any]() *SparseVec[T] { return NewIn[T](alloc.Default) }

// NewIn returns an empty SparseVec backed by a.
func NewIn[T any](a alloc.Allocator) *SparseVec[T] {
	return &SparseVec[T]{
		indices: newInert[int](),
		values:  newInert[T](),
		alloc:   a,
	}
}

// WithCapacity returns an empty SparseVec pre-sized for capacity entries,
// backed by the default allocator.
func WithCapacity[T any](capacity int) *SparseVec[T] {
	return WithCapacityIn[T](capacity, alloc.Default)
}

// WithCapacityIn returns an empty SparseVec pre-sized for capacity entries,
// backed by a. Allocation failure panics.
func WithCapacityIn[T any](capacity int, a alloc.Allocator) *SparseVec[T] {
	sv := NewIn[T](a)
	sv.Reserve(capacity)
	return sv
}

// Len returns the number of set indices.
func (sv *SparseVec[T]) Len() int { return sv.indices.len }

// Empty reports whether no index is set.
func (sv *SparseVec[T]) Empty() bool { return sv.indices.len == 0 }

func (sv *SparseVec[T]) search(index int) (int, bool) {
	return slices.BinarySearch(sv.indices.view(), index)
}

// Has reports whether index holds a value.
func (sv *SparseVec[T]) Has(index int) bool {
	_, ok := sv.search(index)
	return ok
}

// Get returns the value stored at index. The second result is false if
// index is unset.
func (sv *SparseVec[T]) Get(index int) (T, bool) {
	if at, ok := sv.search(index); ok {
		return sv.values.view()[at], true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the value stored at index, or nil if index is
// unset. The pointer stays valid until the next mutation.
func (sv *SparseVec[T]) Ptr(index int) *T {
	if at, ok := sv.search(index); ok {
		return &sv.values.view()[at]
	}
	return nil
}

// At returns a pointer to the value stored at index. Accessing an unset or
// negative index is a programmer error and panics; use Get or Ptr for the
// non-panicking query.
func (sv *SparseVec[T]) At(index int) *T {
	p := sv.Ptr(index)
	if p == nil {
		panic(fmt.Sprintf("sparsevec: index %d is not set", index))
	}
	return p
}

// Reserve ensures both arrays can take extra more entries without
// reallocating. Allocation failure panics.
func (sv *SparseVec[T]) Reserve(extra int) {
	if extra <= 0 {
		return
	}
	iv := lend(&sv.indices, sv.alloc)
	iv.grow(extra)
	sv.indices, _ = release(iv)

	vv := lend(&sv.values, sv.alloc)
	vv.grow(extra)
	sv.values, _ = release(vv)
}

// Set stores value at index and returns the value previously stored there,
// if any. A negative index panics.
func (sv *SparseVec[T]) Set(index int, value T) (prev T, replaced bool) {
	if index < 0 {
		panic(fmt.Sprintf("sparsevec: negative index %d", index))
	}
	at, ok := sv.search(index)
	if ok {
		vs := sv.values.view()
		prev, vs[at] = vs[at], value
		return prev, true
	}
	sv.Reserve(1)
	sv.indices.insert(at, index)
	sv.values.insert(at, value)
	return prev, false
}

// Del removes and returns the value stored at index. The second result is
// false if index was unset.
func (sv *SparseVec[T]) Del(index int) (T, bool) {
	at, ok := sv.search(index)
	if !ok {
		var zero T
		return zero, false
	}
	sv.indices.remove(at)
	return sv.values.remove(at), true
}

// Iter calls visit for every (index, value) pair in ascending index order
// until visit returns false. Mutating the container during iteration is
// undefined.
func (sv *SparseVec[T]) Iter(visit func(index int, value T) bool) {
	is, vs := sv.indices.view(), sv.values.view()
	for i, index := range is {
		if !visit(index, vs[i]) {
			return
		}
	}
}

// IterPtr is Iter with a pointer to each stored value, so the visitor can
// update values in place.
func (sv *SparseVec[T]) IterPtr(visit func(index int, value *T) bool) {
	is, vs := sv.indices.view(), sv.values.view()
	for i, index := range is {
		if !visit(index, &vs[i]) {
			return
		}
	}
}

// All returns the (index, value) pairs in ascending index order as a
// range-over-func sequence.
func (sv *SparseVec[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		sv.Iter(yield)
	}
}

// Clone returns a content copy backed by the same allocator.
func (sv *SparseVec[T]) Clone() *SparseVec[T] {
	n := sv.Len()
	out := WithCapacityIn[T](n, sv.alloc)
	copy(out.indices.full()[:n], sv.indices.view())
	copy(out.values.full()[:n], sv.values.view())
	out.indices.len, out.values.len = n, n
	return out
}

// Free releases both arrays through the container's allocator and resets
// the container to empty. Freeing twice is harmless; the container stays
// usable afterwards.
func (sv *SparseVec[T]) Free() {
	iv := lend(&sv.indices, sv.alloc)
	iv.free()
	sv.indices, _ = release(iv)

	vv := lend(&sv.values, sv.alloc)
	vv.free()
	sv.values, _ = release(vv)
}

// Equal reports whether a and b hold the same indices and values. Content
// only: allocator identity and spare capacity do not matter.
func Equal[T comparable](a, b *SparseVec[T]) bool {
	return slices.Equal(a.indices.view(), b.indices.view()) &&
		slices.Equal(a.values.view(), b.values.view())
}

// EqualFunc is Equal with a custom value comparison, allowing different
// value types on the two sides.
func EqualFunc[T1, T2 any](a *SparseVec[T1], b *SparseVec[T2], eq func(T1, T2) bool) bool {
	return slices.Equal(a.indices.view(), b.indices.view()) &&
		slices.EqualFunc(a.values.view(), b.values.view(), eq)
}

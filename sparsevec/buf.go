package sparsevec

import (
	"unsafe"

	"github.com/aglyzov/go-sparse/alloc"
)

// buf is a growable buffer kept as its raw parts: block pointer, element
// count, capacity and the allocator it is currently typed against.
//
// While a buffer is stored inside a SparseVec its allocator field holds the
// inert stand-in; the real allocator is lent to it only for the span of an
// operation that must move memory. lend and release swap the identity in
// O(1) without touching the block.
type buf[T any] struct {
	data  unsafe.Pointer // nil when cap == 0
	len   int
	cap   int
	alloc alloc.Allocator
}

// newInert returns an empty buffer typed against the stand-in allocator.
func newInert[T any]() buf[T] {
	return buf[T]{alloc: alloc.Inert{}}
}

// newWithCapacity returns an empty buffer pre-sized for capacity elements,
// typed against a. Allocation failure panics.
func newWithCapacity[T any](capacity int, a alloc.Allocator) buf[T] {
	b := buf[T]{alloc: a}
	if capacity > 0 {
		b.data = allocate[T](a, capacity)
		b.cap = capacity
	}
	return b
}

// bufFromSlice adopts a slice, keeping its full capacity. The resulting
// buffer is typed against the stand-in.
func bufFromSlice[T any](s []T) buf[T] {
	b := newInert[T]()
	if cap(s) > 0 {
		b.data = unsafe.Pointer(unsafe.SliceData(s))
		b.len, b.cap = len(s), cap(s)
	}
	return b
}

func allocate[T any](a alloc.Allocator, n int) unsafe.Pointer {
	p, err := a.Allocate(alloc.LayoutOf[T](n))
	if err != nil {
		panic("sparsevec: " + err.Error())
	}
	return p
}

// lend reattaches a real allocator to a stand-in-typed buffer, preserving
// pointer, length and capacity exactly. *b is replaced by a fresh empty
// stand-in buffer so the memory keeps exactly one owner.
//
// The caller guarantees that a is the allocator that produced the buffer's
// memory; the identity cannot be verified here.
func lend[T any](b *buf[T], a alloc.Allocator) buf[T] {
	if _, inert := b.alloc.(alloc.Inert); !inert {
		panic("sparsevec: lend to a buffer that already has an allocator")
	}
	out := *b
	out.alloc = a
	*b = newInert[T]()
	return out
}

// release detaches the real allocator from a buffer, retyping it against the
// stand-in. The inverse of lend; pointer, length and capacity are preserved.
func release[T any](b buf[T]) (buf[T], alloc.Allocator) {
	a := b.alloc
	if _, inert := a.(alloc.Inert); inert {
		panic("sparsevec: release of a stand-in-typed buffer")
	}
	b.alloc = alloc.Inert{}
	return b, a
}

// full returns the whole capacity as a slice.
func (b *buf[T]) full() []T {
	if b.data == nil {
		return nil
	}
	return unsafe.Slice((*T)(b.data), b.cap)
}

// view returns the live elements.
func (b *buf[T]) view() []T { return b.full()[:b.len] }

// grow ensures room for at least extra more elements, reallocating through
// the attached allocator. Must only be called with the real allocator
// attached; the stand-in's failing Allocate makes a violation loud.
func (b *buf[T]) grow(extra int) {
	if extra <= 0 || b.cap-b.len >= extra {
		return
	}
	newCap := b.cap * 2
	if newCap < b.len+extra {
		newCap = b.len + extra
	}
	if newCap < 4 {
		newCap = 4
	}
	data := allocate[T](b.alloc, newCap)
	copy(unsafe.Slice((*T)(data), newCap), b.view())
	if b.data != nil {
		b.alloc.Deallocate(b.data, alloc.LayoutOf[T](b.cap))
	}
	b.data, b.cap = data, newCap
}

// insert places v at position at, shifting the tail one slot right.
// Requires spare capacity; never touches the allocator.
func (b *buf[T]) insert(at int, v T) {
	s := b.full()[:b.len+1]
	copy(s[at+1:], s[at:])
	s[at] = v
	b.len++
}

// remove deletes the element at position at, shifting the tail one slot
// left. The vacated slot is zeroed so managed blocks drop their references.
func (b *buf[T]) remove(at int) T {
	s := b.view()
	v := s[at]
	copy(s[at:], s[at+1:])
	var zero T
	s[b.len-1] = zero
	b.len--
	return v
}

// free releases the block through the attached allocator and resets the
// buffer to empty. Must only be called with the real allocator attached.
func (b *buf[T]) free() {
	if b.data != nil {
		b.alloc.Deallocate(b.data, alloc.LayoutOf[T](b.cap))
	}
	b.data, b.len, b.cap = nil, 0, 0
}

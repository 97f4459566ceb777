// Package alloc defines the allocator capability backing the sparsevec
// containers: an Allocator acquires and releases raw memory blocks described
// by a Layout.
//
// Two concrete allocators are provided. Heap delegates to the Go runtime and
// is the default. Arena is a chunked bump allocator for pointer-free element
// types; it hands out blocks from large chunks and reclaims everything at
// once on Release.
//
// Inert is a stand-in allocator identity that never services a request. It
// exists so a buffer can be typed against an allocator without owning one;
// see the sparsevec package for the lending protocol built on top of it.
package alloc

import (
	"errors"
	"reflect"
	"unsafe"
)

var (
	// ErrAllocFailed reports that an allocator could not produce a block.
	ErrAllocFailed = errors.New("alloc: allocation failed")
	// ErrPointerElem reports a layout whose element type contains runtime
	// pointers, which manual allocators cannot host safely.
	ErrPointerElem = errors.New("alloc: element type contains pointers")
)

// Layout describes the shape of a block: Count contiguous elements of type
// Elem. Carrying the element type rather than a byte size lets managed
// allocators return typed blocks the garbage collector scans precisely.
type Layout struct {
	Elem  reflect.Type
	Count int
}

// LayoutOf returns the layout of n contiguous values of type T.
func LayoutOf[T any](n int) Layout {
	return Layout{Elem: reflect.TypeOf((*T)(nil)).Elem(), Count: n}
}

// Size returns the block size in bytes.
func (l Layout) Size() uintptr { return l.Elem.Size() * uintptr(l.Count) }

// Align returns the required block alignment in bytes.
func (l Layout) Align() uintptr { return uintptr(l.Elem.Align()) }

// An Allocator acquires and releases raw memory blocks.
type Allocator interface {
	// Allocate returns a zeroed block holding layout.Count elements of
	// layout.Elem, or an error. A zero-size layout yields a nil block.
	Allocate(layout Layout) (unsafe.Pointer, error)
	// Deallocate releases a block previously returned by Allocate with the
	// same layout.
	Deallocate(ptr unsafe.Pointer, layout Layout)
}

// Heap allocates through the Go runtime. Blocks are typed, so the collector
// tracks pointers stored in them; Deallocate is a no-op and a block is
// reclaimed once nothing references it.
type Heap struct{}

func (Heap) Allocate(layout Layout) (unsafe.Pointer, error) {
	if layout.Count == 0 {
		return nil, nil
	}
	s := reflect.MakeSlice(reflect.SliceOf(layout.Elem), layout.Count, layout.Count)
	return s.UnsafePointer(), nil
}

func (Heap) Deallocate(unsafe.Pointer, Layout) {}

// Default is the allocator used when none is given.
var Default Allocator = Heap{}

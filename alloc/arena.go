package alloc

import (
	"reflect"
	"unsafe"

	"github.com/hideo55/go-popcount"
)

// DefaultChunkSize is the chunk size used by NewArena(0).
const DefaultChunkSize = 64 << 10

// Arena is a chunked bump allocator. Blocks are carved off large chunks and
// are never reused; Deallocate only clears the block's liveness bit and the
// memory itself is reclaimed all at once by Release.
//
// Element types must be free of runtime pointers, because chunks are plain
// byte blocks the collector does not scan. Allocate rejects pointer-bearing
// layouts with ErrPointerElem.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	chunkSize int
	chunks    [][]byte
	off       uintptr // carve offset into the last chunk

	blocks []unsafe.Pointer // blocks in allocation order
	marks  []uint64         // liveness bit per block
}

// NewArena returns an Arena carving from chunks of chunkSize bytes.
// A non-positive chunkSize means DefaultChunkSize.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Arena{chunkSize: chunkSize}
}

func (a *Arena) Allocate(layout Layout) (unsafe.Pointer, error) {
	if hasPointers(layout.Elem) {
		return nil, ErrPointerElem
	}
	size := layout.Size()
	if size == 0 {
		return nil, nil
	}
	align := layout.Align()
	p := a.carve(size, align)
	if p == nil {
		n := a.chunkSize
		if need := int(size + align); n < need {
			n = need
		}
		a.chunks = append(a.chunks, make([]byte, n))
		a.off = 0
		p = a.carve(size, align)
	}
	a.blocks = append(a.blocks, p)
	a.mark(len(a.blocks) - 1)
	return p, nil
}

// Deallocate clears the block's liveness bit. The memory stays mapped until
// Release. Releasing a block the arena never produced is a programmer error.
func (a *Arena) Deallocate(p unsafe.Pointer, _ Layout) {
	for i := len(a.blocks) - 1; i >= 0; i-- {
		if a.blocks[i] == p {
			a.marks[i/64] &^= 1 << (i % 64)
			return
		}
	}
	panic("alloc: arena does not own the block")
}

// Live returns the number of allocated blocks not yet deallocated. Useful
// for leak diagnostics in tests.
func (a *Arena) Live() int {
	var n uint64
	for _, m := range a.marks {
		n += popcount.Count(m)
	}
	return int(n)
}

// Release drops every chunk at once. All outstanding blocks become invalid;
// the arena is empty and usable afterwards.
func (a *Arena) Release() {
	a.chunks, a.off = nil, 0
	a.blocks, a.marks = nil, nil
}

// carve cuts an aligned block off the last chunk, or returns nil when the
// chunk cannot fit it.
func (a *Arena) carve(size, align uintptr) unsafe.Pointer {
	if len(a.chunks) == 0 {
		return nil
	}
	chunk := a.chunks[len(a.chunks)-1]
	base := uintptr(unsafe.Pointer(unsafe.SliceData(chunk)))
	off := a.off
	if pad := (base + off) % align; pad != 0 {
		off += align - pad
	}
	if off+size > uintptr(len(chunk)) {
		return nil
	}
	a.off = off + size
	return unsafe.Pointer(&chunk[off])
}

func (a *Arena) mark(i int) {
	if i/64 == len(a.marks) {
		a.marks = append(a.marks, 0)
	}
	a.marks[i/64] |= 1 << (i % 64)
}

// hasPointers reports whether values of type t embed runtime pointers.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

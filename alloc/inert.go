package alloc

import "unsafe"

// Inert is a zero-size stand-in Allocator that never services a request.
// Every allocation fails with ErrAllocFailed, so nothing is ever backed by
// Inert memory, and therefore nothing may ever be released through it:
// reaching Deallocate means a buffer was freed without its real allocator
// reattached, and the panic is deliberate.
type Inert struct{}

func (Inert) Allocate(Layout) (unsafe.Pointer, error) { return nil, ErrAllocFailed }

func (Inert) Deallocate(unsafe.Pointer, Layout) {
	panic("alloc: deallocation through the inert allocator")
}

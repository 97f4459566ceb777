package alloc

import "unsafe"

// Counting wraps an Allocator and counts the calls that reach it. Tests use
// it to pin down how many times a container actually grows.
type Counting struct {
	Inner  Allocator
	Allocs int
	Frees  int
}

func (c *Counting) Allocate(layout Layout) (unsafe.Pointer, error) {
	p, err := c.Inner.Allocate(layout)
	if err == nil && p != nil {
		c.Allocs++
	}
	return p, err
}

func (c *Counting) Deallocate(p unsafe.Pointer, layout Layout) {
	if p != nil {
		c.Frees++
	}
	c.Inner.Deallocate(p, layout)
}

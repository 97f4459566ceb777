package sparsevec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aglyzov/go-sparse/alloc"
)

func TestLendRelease_PreservesParts(t *testing.T) {
	t.Parallel()

	b := newWithCapacity[int](8, alloc.Heap{})
	for i := 0; i < 5; i++ {
		b.insert(i, i*10)
	}

	stored, a := release(b)

	require.IsType(t, alloc.Inert{}, stored.alloc)
	assert.Equal(t, b.data, stored.data)
	assert.Equal(t, 5, stored.len)
	assert.Equal(t, 8, stored.cap)

	lent := lend(&stored, a)

	require.IsType(t, alloc.Heap{}, lent.alloc)
	assert.Equal(t, b.data, lent.data)
	assert.Equal(t, 5, lent.len)
	assert.Equal(t, 8, lent.cap)
	assert.Equal(t, []int{0, 10, 20, 30, 40}, lent.view())

	// the lent-from variable became a fresh empty stand-in buffer
	assert.Zero(t, stored.len)
	assert.Zero(t, stored.cap)
	assert.True(t, stored.data == nil)
	require.IsType(t, alloc.Inert{}, stored.alloc)
}

func TestLend_AttachedBufferPanics(t *testing.T) {
	t.Parallel()

	b := newWithCapacity[int](4, alloc.Heap{})

	assert.Panics(t, func() { lend(&b, alloc.Heap{}) })
}

func TestRelease_InertBufferPanics(t *testing.T) {
	t.Parallel()

	b := newInert[int]()

	assert.Panics(t, func() { release(b) })
}

func TestGrow_PreservesContents(t *testing.T) {
	t.Parallel()

	b := newWithCapacity[int](2, alloc.Heap{})
	b.insert(0, 7)
	b.insert(1, 8)

	b.grow(10)

	require.GreaterOrEqual(t, b.cap, 12)
	assert.Equal(t, []int{7, 8}, b.view())
}

func TestGrow_ThroughStandInPanics(t *testing.T) {
	t.Parallel()

	b := newInert[int]()

	assert.Panics(t, func() { b.grow(1) })
}

func TestGrow_ReallocatesThroughAttachedAllocator(t *testing.T) {
	t.Parallel()

	counting := &alloc.Counting{Inner: alloc.Heap{}}
	b := newWithCapacity[int](2, counting)
	require.Equal(t, 1, counting.Allocs)

	b.insert(0, 1)
	b.insert(1, 2)
	b.grow(1)

	assert.Equal(t, 2, counting.Allocs)
	assert.Equal(t, 1, counting.Frees) // the outgrown block went back
	assert.Equal(t, []int{1, 2}, b.view())

	b.grow(1) // spare room left, must not reallocate
	assert.Equal(t, 2, counting.Allocs)
}

func TestInsertRemove(t *testing.T) {
	t.Parallel()

	b := newWithCapacity[string](4, alloc.Heap{})
	b.insert(0, "c")
	b.insert(0, "a")
	b.insert(1, "b")

	assert.Equal(t, []string{"a", "b", "c"}, b.view())

	v := b.remove(1)

	assert.Equal(t, "b", v)
	assert.Equal(t, []string{"a", "c"}, b.view())
	assert.Equal(t, "", b.full()[2]) // vacated slot dropped its reference
}

func TestFree(t *testing.T) {
	t.Parallel()

	counting := &alloc.Counting{Inner: alloc.Heap{}}
	b := newWithCapacity[int](4, counting)

	b.free()

	assert.Equal(t, 1, counting.Frees)
	assert.True(t, b.data == nil)
	assert.Zero(t, b.len)
	assert.Zero(t, b.cap)

	b.free() // nothing left to release
	assert.Equal(t, 1, counting.Frees)
}

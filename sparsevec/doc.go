// Package sparsevec defines a sparse associative container mapping
// non-negative integer indices to values.
//
// Representation
// --------------
//
// A SparseVec keeps two parallel arrays: the set indices, sorted strictly
// ascending, and their values, position for position. Lookups are a binary
// search over the indices, iteration walks both arrays densely in order,
// and insertion or removal shifts the tails, so the structure favours
// compactness and iteration over write throughput.
//
// Allocator sharing
// -----------------
//
// Both arrays are backed by a single allocator instance stored once in the
// container. While an array is at rest it is typed against alloc.Inert, a
// stand-in that fails every allocation and treats deallocation as
// unreachable; any operation that must grow or free memory first lends the
// container's real allocator to the array, performs the work, and detaches
// it again. The lend/release pair only swaps the allocator identity - the
// block pointer, length and capacity never move - and the inert stand-in
// guarantees that a buffer whose real allocator was not reattached cannot
// silently allocate or free.
//
// A SparseVec is not safe for unsynchronized concurrent mutation. Reads
// (Get, Has, iteration) may run concurrently with each other but not with
// Set, Del, Reserve or Free.
package sparsevec

// Package alloc defines the allocator boundary used by aligned handles.
//
// # Layout
//
// A Layout is the pair (size, alignment) describing a memory request. The
// alignment is always a non-zero power of two and the size, rounded up to
// the alignment, never exceeds math.MaxInt. NewLayout reports violations as
// a *LayoutError; MustLayout panics with it.
//
// # Allocators
//
// Allocator is the three-call contract (Allocate, AllocateZeroed,
// Deallocate) that every backing store implements:
//
//   - Heap: Go-heap memory, over-allocated and offset to the alignment
//   - OffHeap: one anonymous mapping per allocation, invisible to the GC
//   - Tracking: wraps another Allocator, counts calls and verifies frees
//   - Limited: wraps another Allocator with a fail-fast byte budget
//
// # Failure Policy
//
// The package-level Allocate and AllocateZeroed helpers never return nil.
// A failed request is passed to HandleAllocError, which runs the installed
// hook (by default an error log line) and panics with *AllocError. There is
// no retry and no backpressure.
//
// # Zero-size Requests
//
// Requests of size zero never reach an Allocator. Allocate returns a
// non-nil, correctly aligned sentinel that must not be dereferenced, and
// Deallocate ignores it.
package alloc

// Package aligned provides owning handles for memory placed at a
// caller-chosen alignment.
//
// Go only guarantees a type's natural alignment, which is at most the
// machine word. SIMD kernels, DMA descriptors, O_DIRECT buffers and
// cache-line-isolated counters need more. This package allocates such
// memory through an alloc.Allocator and hands out single-owner handles
// that release it deterministically.
//
// # Quick Start
//
//	// 64-byte aligned value
//	b := aligned.New([4]float64{1, 2, 3, 4}, 64)
//	defer b.Free()
//	v := b.Get() // *[4]float64, address % 64 == 0
//
//	// page-aligned, zero-filled byte buffer
//	buf := aligned.NewBytes(8192, 4096)
//	defer buf.Free()
//	n, _ := f.Read(buf.Bytes())
//
//	// variable-length pointee
//	s := aligned.NewSlice[float32](1024, 32)
//	defer s.Free()
//
// # Handles
//
//   - Box[T]: exactly one value of type T
//   - Slice[T]: a run of values whose length is chosen at runtime
//   - Bytes: a byte run with zero-fill, copy and clone constructors
//
// Each handle remembers its alignment and the allocator it came from.
// Free runs the pointee's Finalize method (if *T implements Finalizer) and
// then returns the storage with the layout it was allocated with. Free is
// idempotent; using a handle after Free or IntoRaw panics with ErrReleased.
// WithBox and WithBytes scope a handle to a callback and release it on
// every exit path, including panics.
//
// # Alignment
//
// The requested alignment must be a non-zero power of two. Box and Slice
// raise it to the natural alignment of T when that is larger; Bytes uses it
// exactly. Invalid layouts panic with *alloc.LayoutError before any
// allocator call, and a refused allocation panics with *alloc.AllocError.
// Neither is meant to be recovered from.
//
// # Zero Size
//
// Zero-size values and empty slices never reach the allocator. Their
// handles point at a correctly aligned sentinel that must not be
// dereferenced, and Free has nothing to release.
//
// # Raw Round Trip
//
// IntoRaw gives up ownership and returns the pointer (or slice) together
// with its alignment. FromRaw, SliceFromRaw and BytesFromRaw take it back.
// The caller must pass the same allocator (WithAllocator) and alignment,
// and a pointer must be reclaimed at most once. Use alloc.OffHeap for
// pointers handed to foreign code and alloc.Tracking to verify the
// contract in tests.
//
// # Restrictions
//
// Storage obtained from an allocator is not scanned by the garbage
// collector, so T must not contain Go pointers (pointers, strings, slices,
// maps, channels, funcs or interfaces). Constructors panic with
// *PointerTypeError otherwise.
//
// # Thread Safety
//
// Handles carry no locks. A handle may be passed between goroutines and
// read concurrently; mutation and Free require exclusive access.
package aligned

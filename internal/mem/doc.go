// Package mem provides address arithmetic and Go-heap aligned allocation.
//
// # Aligned Allocation
//
// Alloc over-allocates a byte slice by align-1 bytes and returns the window
// that starts at the first address divisible by align. The whole backing
// array stays reachable through any pointer into the window, so the garbage
// collector keeps it alive for as long as the returned memory is referenced.
//
// # Pointer-free Types
//
// Memory returned by Alloc is typed as bytes and is never scanned by the
// garbage collector. Only types without Go pointers may be stored in it;
// HasPointers reports whether a type violates that.
package mem

// Package mmap provides anonymous memory mappings for off-heap allocation.
//
// # Overview
//
// Anonymous mappings hand out memory the Go garbage collector neither scans
// nor moves, with addresses that stay stable until the mapping is closed.
// This is what foreign callers exchanging raw pointers require.
//
// # Usage
//
//	m, err := mmap.MapAnon(64 << 10)
//	if err != nil { ... }
//	defer m.Close()
//
//	data := m.Bytes()
//
//	// Window aligned beyond the page size
//	m, err = mmap.MapAligned(8192, 1<<20)
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE
//   - Windows: VirtualAlloc with MEM_RESERVE|MEM_COMMIT
//
// # Thread Safety
//
// Close is idempotent and protected by atomic operations. Callers must
// ensure no goroutines access Bytes() after Close() returns.
package mmap

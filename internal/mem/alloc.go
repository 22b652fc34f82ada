package mem

import (
	"unsafe"
)

// MaxAlign is the largest alignment the Go runtime guarantees for any type
// (the alignment of uint64 on the current platform).
const MaxAlign = unsafe.Alignof(uint64(0))

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo(v uintptr) bool {
	return v != 0 && v&(v-1) == 0
}

// AlignUp rounds v up to the next multiple of align. align must be a power of two.
func AlignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

// AlignOffset returns the number of bytes to add to addr to reach the next
// multiple of align. align must be a power of two.
func AlignOffset(addr, align uintptr) uintptr {
	return (align - (addr & (align - 1))) & (align - 1)
}

// IsAligned reports whether p is a multiple of align.
func IsAligned(p unsafe.Pointer, align uintptr) bool {
	return uintptr(p)&(align-1) == 0
}

// Alloc allocates a zeroed byte slice of the given size whose first byte
// lives at an address divisible by align. align must be a power of two.
//
// Note: This function allocates up to align-1 bytes more than requested.
// The underlying array is kept alive by the returned slice.
func Alloc(size, align uintptr) []byte {
	if size == 0 {
		return nil
	}
	if align <= 1 {
		return make([]byte, size)
	}

	// Allocate size + align - 1 so an aligned window of size bytes always fits.
	buf := make([]byte, size+align-1)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := AlignOffset(addr, align)

	return buf[offset : offset+size : offset+size]
}

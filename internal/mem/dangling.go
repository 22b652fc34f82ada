package mem

import (
	"unsafe"
)

// danglingSpan bounds the alignments served from danglingBase. Larger
// alignments use the alignment value itself as the address, which is above
// the runtime's minimum legal pointer and never part of the Go heap.
const danglingSpan = 4096

var danglingBase [2 * danglingSpan]byte

// Dangling returns a non-nil pointer divisible by align that must never be
// dereferenced. It stands in for zero-size allocations.
func Dangling(align uintptr) unsafe.Pointer {
	if align <= danglingSpan {
		base := unsafe.Pointer(&danglingBase[0])
		return unsafe.Add(base, AlignOffset(uintptr(base), align))
	}
	return unsafe.Add(unsafe.Pointer(nil), align)
}

package alloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/hupe1980/aligned/internal/conv"
	"github.com/hupe1980/aligned/internal/mem"
)

// maxSize is the largest size a layout may describe once rounded up to its alignment.
const maxSize = uintptr(math.MaxInt)

// Layout describes a memory request: a byte size and a power-of-two alignment.
type Layout struct {
	size  uintptr
	align uintptr
}

// NewLayout validates size and align and returns the layout they describe.
func NewLayout(size, align uintptr) (Layout, error) {
	if !mem.IsPowerOfTwo(align) {
		return Layout{}, &LayoutError{Size: size, Align: align, cause: errAlignNotPowerOfTwo}
	}
	if size > maxSize-(align-1) {
		return Layout{}, &LayoutError{Size: size, Align: align, cause: errSizeOverflow}
	}
	return Layout{size: size, align: align}, nil
}

// MustLayout is like NewLayout but panics with *LayoutError on invalid input.
func MustLayout(size, align uintptr) Layout {
	l, err := NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	return l
}

// LayoutFor returns the natural layout of T.
func LayoutFor[T any]() Layout {
	var v T
	return Layout{size: unsafe.Sizeof(v), align: unsafe.Alignof(v)}
}

// ArrayLayoutFor returns the natural layout of n consecutive values of T.
func ArrayLayoutFor[T any](n uintptr) (Layout, error) {
	elem := LayoutFor[T]()
	size, err := conv.MulUintptr(elem.size, n)
	if err != nil {
		return Layout{}, &LayoutError{Size: elem.size, Align: elem.align, cause: fmt.Errorf("array of %d elements: %w", n, errSizeOverflow)}
	}
	return NewLayout(size, elem.align)
}

// Size returns the size in bytes.
func (l Layout) Size() uintptr { return l.size }

// Align returns the alignment in bytes.
func (l Layout) Align() uintptr { return l.align }

// PaddedSize returns the size rounded up to a multiple of the alignment.
func (l Layout) PaddedSize() uintptr {
	return mem.AlignUp(l.size, l.align)
}

// AlignTo returns a layout with the same size and an alignment of at least align.
func (l Layout) AlignTo(align uintptr) (Layout, error) {
	return NewLayout(l.size, max(l.align, align))
}

func (l Layout) String() string {
	return fmt.Sprintf("Layout{size: %d, align: %d}", l.size, l.align)
}

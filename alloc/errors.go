package alloc

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLayout is matched by every *LayoutError.
	ErrInvalidLayout = errors.New("alloc: invalid layout")
	// ErrOutOfMemory is matched by every *AllocError.
	ErrOutOfMemory = errors.New("alloc: out of memory")
	// ErrUnknownPointer is returned when a pointer is released that the allocator does not own.
	ErrUnknownPointer = errors.New("alloc: pointer not owned by allocator")
	// ErrLayoutMismatch is returned when a pointer is released with a layout other than the one it was allocated with.
	ErrLayoutMismatch = errors.New("alloc: layout does not match allocation")

	errAlignNotPowerOfTwo = errors.New("alignment is not a power of two")
	errSizeOverflow       = errors.New("size rounded up to alignment overflows address space")
)

// LayoutError indicates a size/alignment pair that does not form a valid layout.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type LayoutError struct {
	Size  uintptr
	Align uintptr
	cause error
}

func (e *LayoutError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("invalid layout: size = %d, align = %d", e.Size, e.Align)
	}
	return fmt.Sprintf("invalid layout: size = %d, align = %d (%v)", e.Size, e.Align, e.cause)
}

func (e *LayoutError) Unwrap() error { return e.cause }

// Is reports whether target is ErrInvalidLayout.
func (e *LayoutError) Is(target error) bool { return target == ErrInvalidLayout }

// AllocError indicates that an allocator could not satisfy a request.
// Allocators report failure with a nil pointer only; backend errors are
// logged by the allocator that hit them.
type AllocError struct {
	Layout Layout
}

func (e *AllocError) Error() string {
	return fmt.Sprintf("memory allocation of %d bytes (align %d) failed", e.Layout.Size(), e.Layout.Align())
}

// Is reports whether target is ErrOutOfMemory.
func (e *AllocError) Is(target error) bool { return target == ErrOutOfMemory }

// DeallocError indicates a release the allocator can prove is wrong: a
// double free, a foreign pointer or a mismatched layout.
type DeallocError struct {
	Addr   uintptr
	Layout Layout
	cause  error
}

func (e *DeallocError) Error() string {
	return fmt.Sprintf("invalid deallocation of %#x with %s: %v", e.Addr, e.Layout, e.cause)
}

func (e *DeallocError) Unwrap() error { return e.cause }

package stack

import (
	"reflect"
	"unsafe"

	"github.com/hupe1980/aligned"
	"github.com/hupe1980/aligned/internal/mem"
)

// Align16 holds a value at an address divisible by 16. The zero value holds
// the zero T. Compare wrapped values with Into, not ==.
type Align16[T any] struct {
	_   [0]uint64
	_   [16 - mem.MaxAlign]byte
	_   T
	off uint8
}

// NewAlign16 wraps v. T must not contain Go pointers.
func NewAlign16[T any](v T) Align16[T] {
	var a Align16[T]
	a.Set(v)
	return a
}

// Get moves the value to the aligned position of a and returns a pointer to
// it. Get writes to a and needs the same exclusive access as Set. The
// pointer stays valid until a is copied.
func (a *Align16[T]) Get() *T { return slot[T](unsafe.Pointer(a), &a.off, 16, true) }

// Set replaces the wrapped value.
func (a *Align16[T]) Set(v T) { *slot[T](unsafe.Pointer(a), &a.off, 16, false) = v }

// Into returns the wrapped value without moving it, so concurrent calls
// are safe.
func (a *Align16[T]) Into() T { return load[T](unsafe.Pointer(a), a.off) }

// Alignment returns 16.
func (a *Align16[T]) Alignment() uintptr { return 16 }

// Align32 holds a value at an address divisible by 32. The zero value holds
// the zero T. Compare wrapped values with Into, not ==.
type Align32[T any] struct {
	_   [0]uint64
	_   [32 - mem.MaxAlign]byte
	_   T
	off uint8
}

// NewAlign32 wraps v. T must not contain Go pointers.
func NewAlign32[T any](v T) Align32[T] {
	var a Align32[T]
	a.Set(v)
	return a
}

// Get moves the value to the aligned position of a and returns a pointer to
// it. Get writes to a and needs the same exclusive access as Set. The
// pointer stays valid until a is copied.
func (a *Align32[T]) Get() *T { return slot[T](unsafe.Pointer(a), &a.off, 32, true) }

// Set replaces the wrapped value.
func (a *Align32[T]) Set(v T) { *slot[T](unsafe.Pointer(a), &a.off, 32, false) = v }

// Into returns the wrapped value without moving it, so concurrent calls
// are safe.
func (a *Align32[T]) Into() T { return load[T](unsafe.Pointer(a), a.off) }

// Alignment returns 32.
func (a *Align32[T]) Alignment() uintptr { return 32 }

// Align64 holds a value at an address divisible by 64, one cache line on
// most hardware. The zero value holds the zero T. Compare wrapped values
// with Into, not ==.
type Align64[T any] struct {
	_   [0]uint64
	_   [64 - mem.MaxAlign]byte
	_   T
	off uint8
}

// NewAlign64 wraps v. T must not contain Go pointers.
func NewAlign64[T any](v T) Align64[T] {
	var a Align64[T]
	a.Set(v)
	return a
}

// Get moves the value to the aligned position of a and returns a pointer to
// it. Get writes to a and needs the same exclusive access as Set. The
// pointer stays valid until a is copied.
func (a *Align64[T]) Get() *T { return slot[T](unsafe.Pointer(a), &a.off, 64, true) }

// Set replaces the wrapped value.
func (a *Align64[T]) Set(v T) { *slot[T](unsafe.Pointer(a), &a.off, 64, false) = v }

// Into returns the wrapped value without moving it, so concurrent calls
// are safe.
func (a *Align64[T]) Into() T { return load[T](unsafe.Pointer(a), a.off) }

// Alignment returns 64.
func (a *Align64[T]) Alignment() uintptr { return 64 }

// load reads the value at its recorded offset. The offset is a multiple of
// the word size, so the read is aligned for T wherever the wrapper lives.
func load[T any](base unsafe.Pointer, off uint8) T {
	mustPointerFree[T]()
	return *(*T)(unsafe.Add(base, off))
}

func mustPointerFree[T any]() {
	if t := reflect.TypeOf((*T)(nil)).Elem(); mem.HasPointers(t) {
		panic(&aligned.PointerTypeError{Type: t})
	}
}

// slot returns the aligned position of the value inside the wrapper at base
// and records it in off. With move set, the bytes at the previous position
// are carried over first.
//
// base is word aligned, so the aligned position lies within the first
// align-MaxAlign bytes and the value always fits behind it.
func slot[T any](base unsafe.Pointer, off *uint8, align uintptr, move bool) *T {
	mustPointerFree[T]()

	want := mem.AlignOffset(uintptr(base), align)
	if have := uintptr(*off); have != want {
		if move {
			var zero T
			size := unsafe.Sizeof(zero)
			src := unsafe.Slice((*byte)(unsafe.Add(base, have)), size)
			dst := unsafe.Slice((*byte)(unsafe.Add(base, want)), size)
			copy(dst, src)
		}
		*off = uint8(want) //nolint:gosec // want < align <= 64
	}
	return (*T)(unsafe.Add(base, want))
}

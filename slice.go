package aligned

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/aligned/alloc"
)

// Slice owns a run of values of type T whose first element is stored at an
// address divisible by its alignment. The length is fixed at construction.
//
// The zero Slice is released; use NewSlice, SliceFrom or SliceFromRaw.
type Slice[T any] struct {
	// data is nil once released; empty slices point at the zero-size sentinel.
	data  []T
	align uintptr
	alloc alloc.Allocator
}

// NewSlice allocates n zero values of T aligned to max(align, natural
// alignment of T). align must be a non-zero power of two.
func NewSlice[T any](n int, align uintptr, opts ...Option) *Slice[T] {
	s := newSlice[T](n, align, true, opts)
	return &s
}

// SliceFrom allocates a copy of src aligned to max(align, natural alignment
// of T).
func SliceFrom[T any](src []T, align uintptr, opts ...Option) *Slice[T] {
	s := newSlice[T](len(src), align, false, opts)
	copy(s.data, src)
	return &s
}

func newSlice[T any](n int, align uintptr, zeroed bool, opts []Option) Slice[T] {
	mustPointerFree[T]()
	o := newOptions(opts)

	layout := arrayLayout[T](n, align)

	var ptr unsafe.Pointer
	if zeroed {
		ptr = alloc.AllocateZeroed(o.allocator, layout)
	} else {
		ptr = alloc.Allocate(o.allocator, layout)
	}

	return Slice[T]{
		data:  unsafe.Slice((*T)(ptr), n),
		align: layout.Align(),
		alloc: o.allocator,
	}
}

// SliceFromRaw takes ownership of a slice previously returned by IntoRaw.
// The length of data must be the length it was allocated with; see FromRaw
// for the remaining rules.
func SliceFromRaw[T any](data []T, align uintptr, opts ...Option) *Slice[T] {
	s := sliceFromRaw(data, align, opts)
	return &s
}

func sliceFromRaw[T any](data []T, align uintptr, opts []Option) Slice[T] {
	if data == nil {
		panic("aligned: SliceFromRaw with nil slice")
	}
	mustPointerFree[T]()
	o := newOptions(opts)

	layout := arrayLayout[T](len(data), align)

	return Slice[T]{
		data:  data[:len(data):len(data)],
		align: layout.Align(),
		alloc: o.allocator,
	}
}

// IntoRaw releases ownership without freeing and returns the slice and its
// alignment. Reclaim the memory with SliceFromRaw.
func (s *Slice[T]) IntoRaw() ([]T, uintptr) {
	data := s.live()
	s.data = nil
	return data, s.align
}

// Get returns the owned elements. The slice is valid until Free or IntoRaw.
func (s *Slice[T]) Get() []T {
	return s.live()
}

// Len returns the number of elements.
func (s *Slice[T]) Len() int {
	return len(s.live())
}

// Align returns the alignment of the first element.
func (s *Slice[T]) Align() uintptr {
	return s.align
}

// Clone returns a new Slice with the same elements, alignment and allocator.
// The clone never shares storage with s.
func (s *Slice[T]) Clone() *Slice[T] {
	return SliceFrom(s.live(), s.align, WithAllocator(s.alloc))
}

// Released reports whether the slice no longer owns its elements.
func (s *Slice[T]) Released() bool {
	return s == nil || s.data == nil
}

// Free finalizes every element and releases the storage. Calling Free on a
// released slice does nothing.
func (s *Slice[T]) Free() {
	if s.Released() {
		return
	}
	data := s.data
	s.data = nil

	// The size is derived from the live slice header, never cached.
	var zero T
	size := uintptr(len(data)) * unsafe.Sizeof(zero)
	defer alloc.Deallocate(s.alloc, unsafe.Pointer(unsafe.SliceData(data)), alloc.MustLayout(size, s.align))

	finalize(data)
}

func (s *Slice[T]) String() string {
	if s.Released() {
		return "Slice(released)"
	}
	return fmt.Sprint(s.data)
}

func (s *Slice[T]) live() []T {
	if s.Released() {
		panic(ErrReleased)
	}
	return s.data
}

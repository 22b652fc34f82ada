package aligned

import (
	"fmt"
	"unsafe"

	"github.com/hupe1980/aligned/alloc"
)

// Box owns exactly one value of type T stored at an address divisible by
// its alignment.
//
// The zero Box is released; use New or FromRaw.
type Box[T any] struct {
	ptr   *T
	align uintptr
	alloc alloc.Allocator
}

// New allocates storage aligned to max(align, natural alignment of T) and
// moves value into it. align must be a non-zero power of two.
//
// Zero-size T does not allocate. An invalid layout panics with
// *alloc.LayoutError and allocator exhaustion with *alloc.AllocError.
func New[T any](value T, align uintptr, opts ...Option) *Box[T] {
	mustPointerFree[T]()
	o := newOptions(opts)

	layout := cellLayout(unsafe.Sizeof(value), unsafe.Alignof(value), align)

	ptr := (*T)(alloc.Allocate(o.allocator, layout))
	// Zero-size values live at the sentinel address, which is never touched.
	if layout.Size() != 0 {
		*ptr = value
	}

	return &Box[T]{
		ptr:   ptr,
		align: layout.Align(),
		alloc: o.allocator,
	}
}

// FromRaw takes ownership of a pointer previously returned by IntoRaw.
//
// ptr must not be nil, must have been allocated by the allocator passed
// with WithAllocator (alloc.Global() by default) with exactly this
// alignment, and must not be owned by another handle. Breaking these rules
// leads to double frees or releases with the wrong layout.
func FromRaw[T any](ptr *T, align uintptr, opts ...Option) *Box[T] {
	if ptr == nil {
		panic("aligned: FromRaw with nil pointer")
	}
	mustPointerFree[T]()
	o := newOptions(opts)

	var zero T
	layout := cellLayout(unsafe.Sizeof(zero), unsafe.Alignof(zero), align)

	return &Box[T]{
		ptr:   ptr,
		align: layout.Align(),
		alloc: o.allocator,
	}
}

// IntoRaw releases ownership without freeing and returns the pointer and
// its alignment. The box is unusable afterwards; reclaim the memory with
// FromRaw.
func (b *Box[T]) IntoRaw() (*T, uintptr) {
	ptr := b.live()
	b.ptr = nil
	return ptr, b.align
}

// Align returns the alignment of the box.
func (b *Box[T]) Align() uintptr {
	return b.align
}

// Get returns a pointer to the owned value. The pointer is valid until Free
// or IntoRaw. For zero-size T it is the sentinel and must not be dereferenced.
func (b *Box[T]) Get() *T {
	return b.live()
}

// Value returns a copy of the owned value.
func (b *Box[T]) Value() T {
	ptr := b.live()
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return zero
	}
	return *ptr
}

// Set replaces the owned value.
func (b *Box[T]) Set(v T) {
	ptr := b.live()
	if unsafe.Sizeof(v) != 0 {
		*ptr = v
	}
}

// Released reports whether the box no longer owns a value.
func (b *Box[T]) Released() bool {
	return b == nil || b.ptr == nil
}

// Free finalizes the owned value and releases its storage. Calling Free on
// a released box does nothing.
func (b *Box[T]) Free() {
	if b.Released() {
		return
	}
	ptr := b.ptr
	b.ptr = nil

	var zero T
	size := unsafe.Sizeof(zero)
	defer alloc.Deallocate(b.alloc, unsafe.Pointer(ptr), alloc.MustLayout(size, b.align))

	finalize(unsafe.Slice(ptr, 1))
}

func (b *Box[T]) String() string {
	if b.Released() {
		return "Box(released)"
	}
	return fmt.Sprint(b.Value())
}

func (b *Box[T]) live() *T {
	if b.Released() {
		panic(ErrReleased)
	}
	return b.ptr
}

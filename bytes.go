package aligned

import (
	"bytes"
	"fmt"
)

// Bytes is a fixed-length byte buffer whose first byte is stored at an
// address divisible by its alignment. The alignment is used exactly as
// requested.
//
// The zero Bytes is released; use NewBytes, BytesFrom or BytesFromRaw.
type Bytes struct {
	buf Slice[byte]
}

// NewBytes allocates n zero bytes aligned to align.
func NewBytes(n int, align uintptr, opts ...Option) *Bytes {
	return &Bytes{buf: newSlice[byte](n, align, true, opts)}
}

// BytesFrom allocates a copy of src aligned to align.
func BytesFrom(src []byte, align uintptr, opts ...Option) *Bytes {
	b := &Bytes{buf: newSlice[byte](len(src), align, false, opts)}
	copy(b.buf.data, src)
	return b
}

// BytesFromRaw takes ownership of a buffer previously returned by IntoRaw.
// The length of buf must be the length it was allocated with, and opts must
// name the allocator that produced it.
func BytesFromRaw(buf []byte, align uintptr, opts ...Option) *Bytes {
	return &Bytes{buf: sliceFromRaw(buf, align, opts)}
}

// IntoRaw releases ownership without freeing and returns the buffer and its
// alignment. Reclaim the memory with BytesFromRaw.
func (b *Bytes) IntoRaw() ([]byte, uintptr) {
	return b.buf.IntoRaw()
}

// Bytes returns the buffer contents for reading and writing. The slice is
// valid until Free or IntoRaw.
func (b *Bytes) Bytes() []byte {
	return b.buf.Get()
}

// Len returns the buffer length.
func (b *Bytes) Len() int {
	return b.buf.Len()
}

// Align returns the buffer alignment.
func (b *Bytes) Align() uintptr {
	return b.buf.Align()
}

// Clone returns a new buffer with the same contents, alignment and
// allocator. The clone never shares storage with b.
func (b *Bytes) Clone() *Bytes {
	return BytesFrom(b.buf.Get(), b.buf.align, WithAllocator(b.buf.alloc))
}

// Equal reports whether b and other hold the same bytes. Alignment is not
// compared.
func (b *Bytes) Equal(other *Bytes) bool {
	return bytes.Equal(b.buf.Get(), other.buf.Get())
}

// Released reports whether the buffer no longer owns its storage.
func (b *Bytes) Released() bool {
	return b == nil || b.buf.Released()
}

// Free releases the storage. Calling Free on a released buffer does nothing.
func (b *Bytes) Free() {
	if b.Released() {
		return
	}
	b.buf.Free()
}

func (b *Bytes) String() string {
	if b.Released() {
		return "Bytes(released)"
	}
	return fmt.Sprint(b.buf.data)
}

package mmap

import (
	"os"
	"sync/atomic"
	"unsafe"
)

// Mapping represents an anonymous read-write memory mapping.
// It owns the underlying region and is responsible for unmapping it.
type Mapping struct {
	// region is the whole mapped range; data is the usable window inside it.
	region []byte
	data   []byte
	closed atomic.Bool
}

// PageSize returns the system page size.
func PageSize() int {
	return os.Getpagesize()
}

// MapAnon creates an anonymous mapping of size bytes. The returned memory is
// zeroed and page aligned.
func MapAnon(size int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	data, err := osMap(size)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		region: data,
		data:   data[:size:size],
	}, nil
}

// MapAligned creates an anonymous mapping whose usable window of size bytes
// starts at an address divisible by align. Alignments up to the page size
// cost nothing extra; larger ones over-map by align minus one page.
func MapAligned(size, align int) (*Mapping, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	if align <= 0 || align&(align-1) != 0 {
		return nil, ErrInvalidAlignment
	}

	page := PageSize()
	if align <= page {
		return MapAnon(size)
	}

	total := size + align - page
	if total < size {
		return nil, ErrInvalidSize
	}

	data, err := osMap(total)
	if err != nil {
		return nil, err
	}

	addr := uintptr(unsafe.Pointer(&data[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((uintptr(align) - addr&uintptr(align-1)) & uintptr(align-1))

	return &Mapping{
		region: data,
		data:   data[offset : offset+size : offset+size],
	}, nil
}

// Close unmaps the memory. It is idempotent.
func (m *Mapping) Close() error {
	if m.closed.Swap(true) {
		return nil // Already closed
	}
	return osUnmap(m.region)
}

// Bytes returns the usable window of the mapping.
// Warning: The slice is valid only until Close() is called.
// Accessing the slice after Close() results in undefined behavior (likely a crash).
func (m *Mapping) Bytes() []byte {
	if m.closed.Load() {
		return nil
	}
	return m.data
}

// Pointer returns the address of the first usable byte, or nil once closed.
func (m *Mapping) Pointer() unsafe.Pointer {
	if m.closed.Load() {
		return nil
	}
	return unsafe.Pointer(&m.data[0]) //nolint:gosec // unsafe is required for off-heap access
}

// Size returns the size of the usable window in bytes.
func (m *Mapping) Size() int {
	return len(m.data)
}

// Reserved returns the number of bytes actually mapped, including alignment slack.
func (m *Mapping) Reserved() int {
	return len(m.region)
}

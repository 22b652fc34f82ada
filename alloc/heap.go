package alloc

import (
	"runtime"
	"unsafe"

	"github.com/hupe1980/aligned/internal/mem"
)

// Heap is an Allocator backed by the Go heap.
//
// Each request over-allocates a byte slice and hands out its first aligned
// address. Deallocate is a no-op: the garbage collector reclaims the backing
// array once no pointer into it remains. Heap memory is not scanned for
// pointers, so it must only hold pointer-free data.
type Heap struct{}

// NewHeap returns a Heap allocator.
func NewHeap() *Heap {
	return &Heap{}
}

// Allocate implements Allocator.
func (h *Heap) Allocate(layout Layout) unsafe.Pointer {
	return h.alloc(layout)
}

// AllocateZeroed implements Allocator. Go heap memory is always zeroed.
func (h *Heap) AllocateZeroed(layout Layout) unsafe.Pointer {
	return h.alloc(layout)
}

// Deallocate implements Allocator.
func (h *Heap) Deallocate(unsafe.Pointer, Layout) {}

func (h *Heap) alloc(layout Layout) (ptr unsafe.Pointer) {
	if layout.size == 0 {
		return mem.Dangling(layout.align)
	}

	// Requests beyond what the runtime can address panic in makeslice;
	// report them as a failed allocation instead.
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(runtime.Error); !ok {
				panic(r)
			}
			ptr = nil
		}
	}()

	buf := mem.Alloc(layout.size, layout.align)
	return unsafe.Pointer(&buf[0]) //nolint:gosec // unsafe is required for memory alignment
}

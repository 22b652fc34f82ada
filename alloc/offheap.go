package alloc

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/hupe1980/aligned/internal/conv"
	"github.com/hupe1980/aligned/internal/mmap"
)

// OffHeap is an Allocator that gives every request its own anonymous memory
// mapping. The memory is invisible to the garbage collector and its address
// is stable until Deallocate, which makes it suitable for pointers handed to
// foreign code. Alignments above the page size are served by over-mapping.
//
// Each allocation costs at least one page; OffHeap is meant for page-sized
// and larger regions (DMA, O_DIRECT, SIMD working sets).
//
// OffHeap keeps a registry of live mappings keyed by address. Releasing a
// pointer it does not own, or with a layout other than the one it was
// allocated with, panics with *DeallocError.
type OffHeap struct {
	mu     sync.Mutex
	live   map[uintptr]mapping
	logger *Logger
}

type mapping struct {
	m      *mmap.Mapping
	layout Layout
}

// NewOffHeap creates an OffHeap allocator.
func NewOffHeap(opts ...Option) *OffHeap {
	o := newOptions("offheap", opts)
	return &OffHeap{
		live:   make(map[uintptr]mapping),
		logger: o.logger,
	}
}

// Allocate implements Allocator.
func (a *OffHeap) Allocate(layout Layout) unsafe.Pointer {
	return a.alloc(layout)
}

// AllocateZeroed implements Allocator. Anonymous mappings are always zeroed.
func (a *OffHeap) AllocateZeroed(layout Layout) unsafe.Pointer {
	return a.alloc(layout)
}

func (a *OffHeap) alloc(layout Layout) unsafe.Pointer {
	size, err := conv.UintptrToInt(layout.size)
	if err != nil {
		a.logger.LogBackendError("mmap", layout, err)
		return nil
	}
	align, err := conv.UintptrToInt(layout.align)
	if err != nil {
		a.logger.LogBackendError("mmap", layout, err)
		return nil
	}

	m, err := mmap.MapAligned(size, align)
	if err != nil {
		a.logger.LogBackendError("mmap", layout, err)
		return nil
	}

	ptr := m.Pointer()

	a.mu.Lock()
	a.live[uintptr(ptr)] = mapping{m: m, layout: layout}
	a.mu.Unlock()

	a.logger.LogAllocate(layout, ptr, true)
	return ptr
}

// Deallocate implements Allocator.
func (a *OffHeap) Deallocate(ptr unsafe.Pointer, layout Layout) {
	addr := uintptr(ptr)

	a.mu.Lock()
	got, ok := a.live[addr]
	if !ok {
		a.mu.Unlock()
		panic(&DeallocError{Addr: addr, Layout: layout, cause: ErrUnknownPointer})
	}
	if got.layout != layout {
		a.mu.Unlock()
		panic(&DeallocError{Addr: addr, Layout: layout, cause: fmt.Errorf("%w: allocated with %s", ErrLayoutMismatch, got.layout)})
	}
	delete(a.live, addr)
	a.mu.Unlock()

	if err := got.m.Close(); err != nil {
		a.logger.LogBackendError("munmap", layout, err)
		return
	}
	a.logger.LogDeallocate(layout, ptr)
}

// Live returns the number of allocations not yet released.
func (a *OffHeap) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.live)
}

// Reserved returns the number of bytes currently mapped, including page
// rounding slack reported by the mappings.
func (a *OffHeap) Reserved() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	total := 0
	for _, e := range a.live {
		total += e.m.Reserved()
	}
	return total
}

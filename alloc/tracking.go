package alloc

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// Stats is a snapshot of a Tracking allocator's counters.
//
// Note on semantics:
//   - Allocs/ZeroedAllocs/Deallocs/Failures: historical call counts
//   - LiveAllocs/LiveBytes: allocations not yet released
//   - PeakBytes: high-water mark of LiveBytes
type Stats struct {
	Allocs       uint64 // Historical: successful Allocate calls
	ZeroedAllocs uint64 // Historical: successful AllocateZeroed calls
	Deallocs     uint64 // Historical: Deallocate calls
	Failures     uint64 // Historical: requests the inner allocator refused
	LiveAllocs   uint64 // Current: allocations not yet released
	LiveBytes    uint64 // Current: bytes not yet released
	PeakBytes    uint64 // Historical: maximum LiveBytes
}

type atomicStats struct {
	Allocs       atomic.Uint64
	ZeroedAllocs atomic.Uint64
	Deallocs     atomic.Uint64
	Failures     atomic.Uint64
	LiveBytes    atomic.Uint64
	PeakBytes    atomic.Uint64
}

// Tracking wraps an Allocator, counts every call and verifies every release
// against the layout the pointer was allocated with. A double free, a
// foreign pointer or a mismatched layout panics with *DeallocError before
// the inner allocator sees it.
type Tracking struct {
	inner  Allocator
	mu     sync.Mutex
	live   map[uintptr]Layout
	stats  atomicStats
	logger *Logger
}

// NewTracking wraps inner. If inner is nil, Global() is used.
func NewTracking(inner Allocator, opts ...Option) *Tracking {
	if inner == nil {
		inner = Global()
	}
	o := newOptions("tracking", opts)
	return &Tracking{
		inner:  inner,
		live:   make(map[uintptr]Layout),
		logger: o.logger,
	}
}

// Allocate implements Allocator.
func (t *Tracking) Allocate(layout Layout) unsafe.Pointer {
	return t.alloc(layout, false)
}

// AllocateZeroed implements Allocator.
func (t *Tracking) AllocateZeroed(layout Layout) unsafe.Pointer {
	return t.alloc(layout, true)
}

func (t *Tracking) alloc(layout Layout, zeroed bool) unsafe.Pointer {
	var ptr unsafe.Pointer
	if zeroed {
		ptr = t.inner.AllocateZeroed(layout)
	} else {
		ptr = t.inner.Allocate(layout)
	}
	if ptr == nil {
		t.stats.Failures.Add(1)
		return nil
	}

	t.mu.Lock()
	t.live[uintptr(ptr)] = layout
	t.mu.Unlock()

	if zeroed {
		t.stats.ZeroedAllocs.Add(1)
	} else {
		t.stats.Allocs.Add(1)
	}
	used := t.stats.LiveBytes.Add(uint64(layout.size))
	for {
		peak := t.stats.PeakBytes.Load()
		if used <= peak || t.stats.PeakBytes.CompareAndSwap(peak, used) {
			break
		}
	}

	t.logger.LogAllocate(layout, ptr, zeroed)
	return ptr
}

// Deallocate implements Allocator.
func (t *Tracking) Deallocate(ptr unsafe.Pointer, layout Layout) {
	addr := uintptr(ptr)

	t.mu.Lock()
	got, ok := t.live[addr]
	if !ok {
		t.mu.Unlock()
		panic(&DeallocError{Addr: addr, Layout: layout, cause: ErrUnknownPointer})
	}
	if got != layout {
		t.mu.Unlock()
		panic(&DeallocError{Addr: addr, Layout: layout, cause: fmt.Errorf("%w: allocated with %s", ErrLayoutMismatch, got)})
	}
	delete(t.live, addr)
	t.mu.Unlock()

	t.inner.Deallocate(ptr, layout)

	t.stats.Deallocs.Add(1)
	t.stats.LiveBytes.Add(-uint64(layout.size))
	t.logger.LogDeallocate(layout, ptr)
}

// Owns reports whether ptr is a live allocation made through t.
func (t *Tracking) Owns(ptr unsafe.Pointer) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.live[uintptr(ptr)]
	return ok
}

// Stats returns the current allocator statistics.
func (t *Tracking) Stats() Stats {
	t.mu.Lock()
	live := uint64(len(t.live))
	t.mu.Unlock()

	return Stats{
		Allocs:       t.stats.Allocs.Load(),
		ZeroedAllocs: t.stats.ZeroedAllocs.Load(),
		Deallocs:     t.stats.Deallocs.Load(),
		Failures:     t.stats.Failures.Load(),
		LiveAllocs:   live,
		LiveBytes:    t.stats.LiveBytes.Load(),
		PeakBytes:    t.stats.PeakBytes.Load(),
	}
}

func (t *Tracking) String() string {
	s := t.Stats()
	return fmt.Sprintf(
		"Tracking{live: %d, live bytes: %d, peak bytes: %d, allocs: %d, zeroed: %d, deallocs: %d, failures: %d}",
		s.LiveAllocs, s.LiveBytes, s.PeakBytes, s.Allocs, s.ZeroedAllocs, s.Deallocs, s.Failures,
	)
}

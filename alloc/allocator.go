package alloc

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/hupe1980/aligned/internal/mem"
)

// Allocator is the memory source behind aligned handles.
//
// Implementations are only called with layouts of non-zero size. Allocate
// and AllocateZeroed return a pointer divisible by layout.Align() or nil if
// the request cannot be satisfied. Deallocate receives exactly the layout
// the pointer was allocated with.
type Allocator interface {
	Allocate(layout Layout) unsafe.Pointer
	AllocateZeroed(layout Layout) unsafe.Pointer
	Deallocate(ptr unsafe.Pointer, layout Layout)
}

// AllocErrorHook is called with the failed layout before HandleAllocError panics.
type AllocErrorHook func(layout Layout)

type allocatorHolder struct {
	a Allocator
}

var (
	global    atomic.Pointer[allocatorHolder]
	errorHook atomic.Pointer[AllocErrorHook]
)

func init() {
	global.Store(&allocatorHolder{a: NewHeap()})
}

// Global returns the process-wide default allocator (initially a Heap).
func Global() Allocator {
	return global.Load().a
}

// SetGlobal replaces the process-wide default allocator and returns the
// previous one. Handles remember the allocator they were created with, so
// existing handles keep releasing through the old allocator. Passing nil
// restores a Heap.
func SetGlobal(a Allocator) Allocator {
	if a == nil {
		a = NewHeap()
	}
	return global.Swap(&allocatorHolder{a: a}).a
}

// SetAllocErrorHook installs h as the hook HandleAllocError runs before
// panicking and returns the previous hook. Passing nil restores the default
// hook, which logs the failure at error level.
func SetAllocErrorHook(h AllocErrorHook) AllocErrorHook {
	if p := errorHook.Swap(&h); p != nil {
		return *p
	}
	return nil
}

func defaultAllocErrorHook(layout Layout) {
	currentLogger().LogAllocFailure(layout)
}

// HandleAllocError reports a failed allocation. It runs the installed hook
// and then panics with *AllocError; it never returns.
func HandleAllocError(layout Layout) {
	if p := errorHook.Load(); p != nil && *p != nil {
		(*p)(layout)
	} else {
		defaultAllocErrorHook(layout)
	}
	panic(&AllocError{Layout: layout})
}

// Allocate requests memory for layout from a. Zero-size layouts are served
// by an aligned sentinel without calling a. Failure is fatal (see
// HandleAllocError), so the result is never nil.
func Allocate(a Allocator, layout Layout) unsafe.Pointer {
	return allocate(a, layout, false)
}

// AllocateZeroed is like Allocate but the returned memory is zero-filled.
func AllocateZeroed(a Allocator, layout Layout) unsafe.Pointer {
	return allocate(a, layout, true)
}

func allocate(a Allocator, layout Layout, zeroed bool) unsafe.Pointer {
	if layout.align == 0 {
		panic(&LayoutError{Size: layout.size, Align: layout.align, cause: errAlignNotPowerOfTwo})
	}
	if layout.size == 0 {
		return mem.Dangling(layout.align)
	}

	var ptr unsafe.Pointer
	if zeroed {
		ptr = a.AllocateZeroed(layout)
	} else {
		ptr = a.Allocate(layout)
	}
	if ptr == nil {
		HandleAllocError(layout)
	}

	if !mem.IsAligned(ptr, layout.align) {
		panic(fmt.Sprintf("alloc: pointer = %p is not a multiple of alignment = %d", ptr, layout.align))
	}
	return ptr
}

// Deallocate returns memory obtained from Allocate or AllocateZeroed to a.
// Zero-size layouts are ignored.
func Deallocate(a Allocator, ptr unsafe.Pointer, layout Layout) {
	if layout.size == 0 {
		return
	}
	a.Deallocate(ptr, layout)
}

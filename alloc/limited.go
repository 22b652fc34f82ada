package alloc

import (
	"unsafe"

	"github.com/hupe1980/aligned/internal/conv"
	"github.com/hupe1980/aligned/internal/resource"
)

// Limited wraps an Allocator with a byte budget. A request that would push
// the reserved total past the limit is refused immediately, which the
// package helpers turn into the fatal out-of-memory path.
type Limited struct {
	inner  Allocator
	budget *resource.Budget
	logger *Logger
}

// NewLimited wraps inner with a budget of limitBytes. If inner is nil,
// Global() is used. A limit of 0 only tracks usage.
func NewLimited(inner Allocator, limitBytes int64, opts ...Option) *Limited {
	if inner == nil {
		inner = Global()
	}
	o := newOptions("limited", opts)
	return &Limited{
		inner:  inner,
		budget: resource.NewBudget(limitBytes),
		logger: o.logger,
	}
}

// Allocate implements Allocator.
func (l *Limited) Allocate(layout Layout) unsafe.Pointer {
	return l.alloc(layout, false)
}

// AllocateZeroed implements Allocator.
func (l *Limited) AllocateZeroed(layout Layout) unsafe.Pointer {
	return l.alloc(layout, true)
}

func (l *Limited) alloc(layout Layout, zeroed bool) unsafe.Pointer {
	n, err := conv.UintptrToInt64(layout.size)
	if err != nil {
		l.logger.LogBackendError("reserve", layout, err)
		return nil
	}
	if err := l.budget.Reserve(n); err != nil {
		l.logger.LogBackendError("reserve", layout, err)
		return nil
	}

	var ptr unsafe.Pointer
	if zeroed {
		ptr = l.inner.AllocateZeroed(layout)
	} else {
		ptr = l.inner.Allocate(layout)
	}
	if ptr == nil {
		l.budget.Release(n)
	}
	return ptr
}

// Deallocate implements Allocator.
func (l *Limited) Deallocate(ptr unsafe.Pointer, layout Layout) {
	l.inner.Deallocate(ptr, layout)
	l.budget.Release(int64(layout.size)) //nolint:gosec // size was checked in alloc
}

// Usage returns the number of bytes currently reserved.
func (l *Limited) Usage() int64 {
	return l.budget.Used()
}

// Peak returns the highest number of bytes reserved at once.
func (l *Limited) Peak() int64 {
	return l.budget.Peak()
}

// Limit returns the configured budget in bytes (0 if unlimited).
func (l *Limited) Limit() int64 {
	return l.budget.Limit()
}

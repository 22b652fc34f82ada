package aligned

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/hupe1980/aligned/alloc"
)

// finalizable records every Finalize call through onFinalize.
type finalizable struct {
	ID int64
}

var onFinalize func(f *finalizable)

func (f *finalizable) Finalize() {
	if onFinalize != nil {
		onFinalize(f)
	}
}

func setOnFinalize(t *testing.T, fn func(f *finalizable)) {
	t.Helper()
	onFinalize = fn
	t.Cleanup(func() { onFinalize = nil })
}

func newTracking() *alloc.Tracking {
	return alloc.NewTracking(alloc.NewHeap(), alloc.WithLogger(alloc.NoopLogger()))
}

// silenceAllocErrors replaces the alloc-error hook for the duration of the test.
func silenceAllocErrors(t *testing.T) {
	t.Helper()
	prev := alloc.SetAllocErrorHook(func(alloc.Layout) {})
	t.Cleanup(func() { alloc.SetAllocErrorHook(prev) })
}

func addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func testName(key string, v uintptr) string {
	return fmt.Sprintf("%s=%d", key, v)
}

package alloc

import (
	"bytes"
	"log/slog"
	"math/bits"
	"sync"
	"unsafe"
)

const uintptrBits = bits.UintSize

// stubAllocator records calls and can be told to refuse requests.
type stubAllocator struct {
	mu       sync.Mutex
	heap     Heap
	fail     bool
	allocs   int
	zeroed   int
	deallocs int
}

func (s *stubAllocator) Allocate(layout Layout) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil
	}
	s.allocs++
	return s.heap.Allocate(layout)
}

func (s *stubAllocator) AllocateZeroed(layout Layout) unsafe.Pointer {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil
	}
	s.zeroed++
	return s.heap.AllocateZeroed(layout)
}

func (s *stubAllocator) Deallocate(ptr unsafe.Pointer, layout Layout) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deallocs++
}

func (s *stubAllocator) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.allocs + s.zeroed + s.deallocs
}

// misaligned returns pointers one byte past an aligned address.
type misaligned struct{ Heap }

func (m *misaligned) Allocate(layout Layout) unsafe.Pointer {
	p := m.Heap.Allocate(MustLayout(layout.size+1, layout.align))
	return unsafe.Add(p, 1)
}

// captureLogs routes the package logger into a buffer for the duration of the test.
func captureLogs(t interface{ Cleanup(func()) }) *syncBuffer {
	buf := &syncBuffer{}
	prev := currentLogger()
	SetLogger(NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(prev) })
	return buf
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

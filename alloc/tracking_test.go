package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/aligned/testutil"
)

func TestTracking_Stats(t *testing.T) {
	tr := NewTracking(NewHeap(), WithLogger(NoopLogger()))

	a := MustLayout(100, 8)
	b := MustLayout(28, 64)

	pa := Allocate(tr, a)
	pb := AllocateZeroed(tr, b)
	assert.True(t, tr.Owns(pa))
	assert.True(t, tr.Owns(pb))

	s := tr.Stats()
	assert.Equal(t, uint64(1), s.Allocs)
	assert.Equal(t, uint64(1), s.ZeroedAllocs)
	assert.Equal(t, uint64(2), s.LiveAllocs)
	assert.Equal(t, uint64(128), s.LiveBytes)
	assert.Equal(t, uint64(128), s.PeakBytes)

	Deallocate(tr, pa, a)
	Deallocate(tr, pb, b)
	assert.False(t, tr.Owns(pa))

	s = tr.Stats()
	assert.Equal(t, uint64(2), s.Deallocs)
	assert.Zero(t, s.LiveAllocs)
	assert.Zero(t, s.LiveBytes)
	assert.Equal(t, uint64(128), s.PeakBytes)
	assert.Contains(t, tr.String(), "live: 0")
}

func TestTracking_ZeroSize(t *testing.T) {
	tr := NewTracking(nil, WithLogger(NoopLogger()))

	layout := MustLayout(0, 4096)
	p := Allocate(tr, layout)
	Deallocate(tr, p, layout)

	assert.Equal(t, Stats{}, tr.Stats())
}

func TestTracking_Failure(t *testing.T) {
	prev := SetAllocErrorHook(func(Layout) {})
	defer SetAllocErrorHook(prev)

	tr := NewTracking(&stubAllocator{fail: true}, WithLogger(NoopLogger()))

	err := testutil.RecoverError(func() { Allocate(tr, MustLayout(8, 8)) })
	assert.ErrorIs(t, err, ErrOutOfMemory)
	assert.Equal(t, uint64(1), tr.Stats().Failures)
	assert.Zero(t, tr.Stats().LiveAllocs)
}

func TestTracking_InvalidDeallocate(t *testing.T) {
	stub := &stubAllocator{}
	tr := NewTracking(stub, WithLogger(NoopLogger()))

	layout := MustLayout(16, 16)
	p := Allocate(tr, layout)

	err := testutil.RecoverError(func() { tr.Deallocate(p, MustLayout(16, 8)) })
	assert.ErrorIs(t, err, ErrLayoutMismatch)
	assert.Contains(t, err.Error(), "allocated with Layout{size: 16, align: 16}")

	tr.Deallocate(p, layout)

	err = testutil.RecoverError(func() { tr.Deallocate(p, layout) })
	assert.ErrorIs(t, err, ErrUnknownPointer)

	assert.Equal(t, 1, stub.deallocs, "invalid releases never reach the inner allocator")
}

func TestTracking_Concurrent(t *testing.T) {
	tr := NewTracking(NewHeap(), WithLogger(NoopLogger()))
	layout := MustLayout(64, 64)

	var g errgroup.Group
	for i := 0; i < 8; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				p := Allocate(tr, layout)
				Deallocate(tr, p, layout)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	s := tr.Stats()
	assert.Equal(t, uint64(800), s.Allocs)
	assert.Equal(t, uint64(800), s.Deallocs)
	assert.Zero(t, s.LiveBytes)
}

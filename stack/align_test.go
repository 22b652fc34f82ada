package stack

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/aligned"
	"github.com/hupe1980/aligned/internal/mem"
	"github.com/hupe1980/aligned/testutil"
)

type quad struct {
	A, B, C, D float32
}

func addr[T any](p *T) uintptr {
	return uintptr(unsafe.Pointer(p))
}

func TestStructural_Alignment(t *testing.T) {
	assert.Equal(t, uintptr(2), unsafe.Alignof(Align2[byte]{}))
	assert.Equal(t, uintptr(4), unsafe.Alignof(Align4[byte]{}))
	assert.Equal(t, mem.MaxAlign, unsafe.Alignof(Align8[byte]{}))

	// The wrapper never lowers the natural alignment of T.
	assert.Equal(t, unsafe.Alignof(uint64(0)), unsafe.Alignof(Align2[uint64]{}))

	a8 := NewAlign8(byte(1))
	assert.Equal(t, mem.MaxAlign, a8.Alignment())
}

func TestStructural_EmbeddedAtOddOffset(t *testing.T) {
	type record struct {
		Tag byte
		A2  Align2[byte]
		B   byte
		A4  Align4[byte]
		C   byte
		A8  Align8[byte]
	}

	var r record
	assert.Equal(t, uintptr(2), unsafe.Offsetof(r.A2))
	assert.Equal(t, uintptr(8), unsafe.Offsetof(r.A4))
	assert.Zero(t, unsafe.Offsetof(r.A8)%mem.MaxAlign)

	assert.Zero(t, addr(r.A2.Get())%2)
	assert.Zero(t, addr(r.A4.Get())%4)
	assert.Zero(t, addr(r.A8.Get())%mem.MaxAlign)
}

func TestStructural_Arrays(t *testing.T) {
	var arr [7]Align4[[3]byte]
	for i := range arr {
		arr[i].Set([3]byte{byte(i), 1, 2})
	}
	for i := range arr {
		assert.Zero(t, addr(arr[i].Get())%4, "element %d", i)
		assert.Equal(t, [3]byte{byte(i), 1, 2}, arr[i].Into())
	}
}

func TestStructural_AnyType(t *testing.T) {
	a := NewAlign8("text")
	assert.Equal(t, "text", a.V)

	*a.Get() = "other"
	assert.Equal(t, "other", a.Into())

	b := NewAlign2([]int{1, 2})
	b.Set(append(b.V, 3))
	assert.Equal(t, []int{1, 2, 3}, b.Into())
}

func TestRelocating_NewAndGet(t *testing.T) {
	q := quad{1, 2, 3, 4}

	a16 := NewAlign16(q)
	a32 := NewAlign32(q)
	a64 := NewAlign64(q)

	assert.Zero(t, addr(a16.Get())%16)
	assert.Zero(t, addr(a32.Get())%32)
	assert.Zero(t, addr(a64.Get())%64)

	assert.Equal(t, q, a16.Into())
	assert.Equal(t, q, a32.Into())
	assert.Equal(t, q, a64.Into())

	assert.Equal(t, uintptr(16), a16.Alignment())
	assert.Equal(t, uintptr(32), a32.Alignment())
	assert.Equal(t, uintptr(64), a64.Alignment())
}

func TestRelocating_ZeroValue(t *testing.T) {
	var a Align64[[5]uint16]
	assert.Equal(t, [5]uint16{}, a.Into())
	assert.Zero(t, addr(a.Get())%64)
}

func TestRelocating_SurvivesCopies(t *testing.T) {
	// Element stride is not a multiple of 64, so elements sit at different
	// offsets modulo the alignment and every copy has to relocate.
	src := NewAlign64([3]uint32{7, 8, 9})

	arr := make([]Align64[[3]uint32], 9)
	for i := range arr {
		arr[i] = src
	}
	for i := range arr {
		p := arr[i].Get()
		require.Zero(t, addr(p)%64, "element %d", i)
		require.Equal(t, [3]uint32{7, 8, 9}, *p, "element %d", i)
	}

	// Copy between elements after Get fixed their positions.
	for i := 1; i < len(arr); i++ {
		arr[i].Get()[0] = uint32(i)
		arr[i-1] = arr[i]
		require.Equal(t, [3]uint32{uint32(i), 8, 9}, arr[i-1].Into())
	}
}

func TestRelocating_EmbeddedAtOddOffset(t *testing.T) {
	type frame struct {
		Tag  byte
		Regs Align32[[8]float32]
		Len  uint16
		Mask Align16[uint64]
	}

	frames := make([]frame, 5)
	for i := range frames {
		frames[i].Tag = byte(i)
		frames[i].Regs.Set([8]float32{float32(i), 1})
		frames[i].Mask.Set(uint64(i) << 32)
		frames[i].Len = 8
	}

	moved := append([]frame{{}}, frames...)
	for i, f := range moved[1:] {
		assert.Zero(t, addr(f.Regs.Get())%32)
		assert.Zero(t, addr(f.Mask.Get())%16)
		assert.Equal(t, [8]float32{float32(i), 1}, f.Regs.Into())
		assert.Equal(t, uint64(i)<<32, f.Mask.Into())
		assert.Equal(t, byte(i), f.Tag)
		assert.Equal(t, uint16(8), f.Len)
	}
}

func TestRelocating_SetAfterCopy(t *testing.T) {
	a := NewAlign32(uint8(1))
	b := a
	b.Set(2)
	c := b

	assert.Equal(t, uint8(1), a.Into())
	assert.Equal(t, uint8(2), b.Into())
	assert.Equal(t, uint8(2), c.Into())
}

func TestRelocating_ConcurrentInto(t *testing.T) {
	type holder struct {
		tag byte
		a   Align64[[4]uint64]
	}

	src := NewAlign64([4]uint64{1, 2, 3, 4})
	h := &holder{tag: 1}
	h.a = src

	var g errgroup.Group
	for i := 0; i < 4; i++ {
		g.Go(func() error {
			for j := 0; j < 100; j++ {
				if h.a.Into() != [4]uint64{1, 2, 3, 4} {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Zero(t, addr(h.a.Get())%64)
	assert.Equal(t, [4]uint64{1, 2, 3, 4}, h.a.Into())
}

func TestRelocating_IntoDoesNotMove(t *testing.T) {
	arr := make([]Align32[uint64], 3)
	for i := range arr {
		arr[i] = NewAlign32(uint64(i + 10))
	}

	before := arr[1].off
	assert.Equal(t, uint64(11), arr[1].Into())
	assert.Equal(t, before, arr[1].off)
}

func TestRelocating_ZeroSize(t *testing.T) {
	a := NewAlign16(struct{}{})
	assert.Equal(t, struct{}{}, a.Into())
	assert.Zero(t, addr(a.Get())%16)
}

func TestRelocating_PointerType(t *testing.T) {
	err := testutil.RecoverError(func() { NewAlign16("text") })
	assert.ErrorIs(t, err, aligned.ErrPointerType)

	var a Align64[*int]
	err = testutil.RecoverError(func() { a.Get() })
	assert.ErrorIs(t, err, aligned.ErrPointerType)
}

func BenchmarkAlign64Get(b *testing.B) {
	arr := make([]Align64[quad], 16)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		arr[i%len(arr)].Get().A++
	}
}

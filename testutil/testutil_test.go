package testutil

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNG_Deterministic(t *testing.T) {
	a := NewRNG(4711)
	b := NewRNG(4711)

	assert.Equal(t, a.Bytes(64), b.Bytes(64))
	assert.Equal(t, a.Intn(1000), b.Intn(1000))
	assert.Equal(t, int64(4711), a.Seed())

	first := NewRNG(1).Bytes(16)
	r := NewRNG(1)
	_ = r.Bytes(16)
	r.Reset()
	assert.Equal(t, first, r.Bytes(16))
}

func TestRNG_Alignment(t *testing.T) {
	rng := NewRNG(4711)
	for i := 0; i < 100; i++ {
		a := rng.Alignment(12)
		assert.NotZero(t, a)
		assert.Zero(t, a&(a-1), "alignment %d must be a power of two", a)
		assert.LessOrEqual(t, a, uintptr(4096))
	}
}

func TestRecover(t *testing.T) {
	assert.Nil(t, Recover(func() {}))
	assert.Equal(t, "boom", Recover(func() { panic("boom") }))

	sentinel := errors.New("sentinel")
	assert.Equal(t, sentinel, RecoverError(func() { panic(sentinel) }))
	assert.EqualError(t, RecoverError(func() { panic(42) }), "panic: 42")
	assert.NoError(t, RecoverError(func() {}))
}

func TestAddr(t *testing.T) {
	assert.Zero(t, Addr[byte](nil))
	b := make([]byte, 4)
	assert.NotZero(t, Addr(b))
}

package testutil

import (
	"fmt"
	"math/rand"
	"sync"
	"unsafe"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), //nolint:gosec // deterministic test input
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	_, _ = r.rand.Read(b)
	return b
}

// Alignment returns a pseudo-random power of two in [1, 1<<maxShift].
func (r *RNG) Alignment(maxShift int) uintptr {
	return uintptr(1) << r.Intn(maxShift+1)
}

// Addr returns the address of the first element of b, or 0 for a nil slice.
func Addr[T any](b []T) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// Recover runs fn and returns the value it panicked with, or nil.
func Recover(fn func()) (r any) {
	defer func() {
		r = recover()
	}()
	fn()
	return nil
}

// RecoverError runs fn and returns its panic value as an error. It returns
// nil if fn did not panic and wraps non-error panic values.
func RecoverError(fn func()) error {
	r := Recover(fn)
	switch v := r.(type) {
	case nil:
		return nil
	case error:
		return v
	default:
		return fmt.Errorf("panic: %v", v)
	}
}

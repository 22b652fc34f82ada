package stack

import (
	"unsafe"
)

// Align2 holds V at an address divisible by 2.
type Align2[T any] struct {
	_ [0]uint16
	V T
}

// NewAlign2 wraps v.
func NewAlign2[T any](v T) Align2[T] {
	return Align2[T]{V: v}
}

// Get returns a pointer to the wrapped value.
func (a *Align2[T]) Get() *T { return &a.V }

// Set replaces the wrapped value.
func (a *Align2[T]) Set(v T) { a.V = v }

// Into returns the wrapped value.
func (a *Align2[T]) Into() T { return a.V }

// Alignment returns the alignment of the wrapper, at least 2.
func (a *Align2[T]) Alignment() uintptr { return unsafe.Alignof(*a) }

// Align4 holds V at an address divisible by 4.
type Align4[T any] struct {
	_ [0]uint32
	V T
}

// NewAlign4 wraps v.
func NewAlign4[T any](v T) Align4[T] {
	return Align4[T]{V: v}
}

// Get returns a pointer to the wrapped value.
func (a *Align4[T]) Get() *T { return &a.V }

// Set replaces the wrapped value.
func (a *Align4[T]) Set(v T) { a.V = v }

// Into returns the wrapped value.
func (a *Align4[T]) Into() T { return a.V }

// Alignment returns the alignment of the wrapper, at least 4.
func (a *Align4[T]) Alignment() uintptr { return unsafe.Alignof(*a) }

// Align8 holds V at an address divisible by the alignment of uint64: 8 on
// 64-bit platforms, 4 on 32-bit ones. Alignment reports the value in effect.
type Align8[T any] struct {
	_ [0]uint64
	V T
}

// NewAlign8 wraps v.
func NewAlign8[T any](v T) Align8[T] {
	return Align8[T]{V: v}
}

// Get returns a pointer to the wrapped value.
func (a *Align8[T]) Get() *T { return &a.V }

// Set replaces the wrapped value.
func (a *Align8[T]) Set(v T) { a.V = v }

// Into returns the wrapped value.
func (a *Align8[T]) Into() T { return a.V }

// Alignment returns the alignment of the wrapper.
func (a *Align8[T]) Alignment() uintptr { return unsafe.Alignof(*a) }

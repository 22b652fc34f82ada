package mmap

import "errors"

var (
	// ErrInvalidSize is returned when the requested size is invalid (e.g. zero or too large).
	ErrInvalidSize = errors.New("mmap: invalid size")
	// ErrInvalidAlignment is returned when the requested alignment is not a power of two.
	ErrInvalidAlignment = errors.New("mmap: invalid alignment")
)

package aligned

// WithBox creates a Box, passes it to fn and frees it when fn returns or
// panics. If fn hands the pointer off with IntoRaw, nothing is freed.
func WithBox[T any](value T, align uintptr, fn func(*Box[T]) error, opts ...Option) error {
	b := New(value, align, opts...)
	defer b.Free()
	return fn(b)
}

// WithBytes creates a zero-filled Bytes of length n, passes it to fn and
// frees it when fn returns or panics.
func WithBytes(n int, align uintptr, fn func(*Bytes) error, opts ...Option) error {
	b := NewBytes(n, align, opts...)
	defer b.Free()
	return fn(b)
}

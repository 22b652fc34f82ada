package aligned

import (
	"github.com/hupe1980/aligned/alloc"
)

type options struct {
	allocator alloc.Allocator
}

// Option configures handle constructors.
type Option func(*options)

// WithAllocator sets the allocator a handle is created with and released to.
// FromRaw, SliceFromRaw and BytesFromRaw must receive the allocator that
// produced the pointer.
//
// If nil is passed, alloc.Global() is used.
func WithAllocator(a alloc.Allocator) Option {
	return func(o *options) {
		o.allocator = a
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.allocator == nil {
		o.allocator = alloc.Global()
	}
	return o
}

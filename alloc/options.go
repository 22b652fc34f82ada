package alloc

type options struct {
	logger *Logger
	name   string
}

// Option configures allocator constructors.
type Option func(*options)

// WithLogger sets the logger an allocator reports to.
//
// If nil is passed, the package logger (see SetLogger) is used.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithName sets the name attached to the allocator's log records.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func newOptions(kind string, opts []Option) options {
	o := options{name: kind}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = currentLogger()
	}
	o.logger = o.logger.WithAllocator(o.name)
	return o
}

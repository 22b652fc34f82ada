package alloc

import (
	"log/slog"
	"os"
	"sync/atomic"
	"unsafe"
)

// Logger wraps slog.Logger with allocator-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

var pkgLogger atomic.Pointer[Logger]

func init() {
	pkgLogger.Store(NewLogger(nil))
}

// SetLogger sets the package logger used by the default alloc-error hook and
// by allocators created without WithLogger. Passing nil installs NoopLogger.
func SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	pkgLogger.Store(l)
}

func currentLogger() *Logger {
	return pkgLogger.Load()
}

// WithAllocator adds an allocator name field to the logger.
func (l *Logger) WithAllocator(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("allocator", name),
	}
}

// LogAllocate logs a successful allocation.
func (l *Logger) LogAllocate(layout Layout, ptr unsafe.Pointer, zeroed bool) {
	l.Debug("allocate",
		"size", layout.Size(),
		"align", layout.Align(),
		"zeroed", zeroed,
		"addr", uintptr(ptr),
	)
}

// LogDeallocate logs a release.
func (l *Logger) LogDeallocate(layout Layout, ptr unsafe.Pointer) {
	l.Debug("deallocate",
		"size", layout.Size(),
		"align", layout.Align(),
		"addr", uintptr(ptr),
	)
}

// LogAllocFailure logs a request an allocator could not satisfy.
func (l *Logger) LogAllocFailure(layout Layout) {
	l.Error("memory allocation failed",
		"size", layout.Size(),
		"align", layout.Align(),
	)
}

// LogBackendError logs an error reported by the allocator's backing store.
func (l *Logger) LogBackendError(op string, layout Layout, err error) {
	l.Warn(op+" failed",
		"size", layout.Size(),
		"align", layout.Align(),
		"error", err,
	)
}

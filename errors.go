package aligned

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrReleased is the panic value raised when a handle is used after Free or IntoRaw.
	ErrReleased = errors.New("aligned: use of released handle")

	// ErrPointerType is matched by every *PointerTypeError.
	ErrPointerType = errors.New("aligned: type contains Go pointers")
)

// PointerTypeError indicates a pointee type that holds Go pointers and
// therefore cannot live in memory the garbage collector does not scan.
type PointerTypeError struct {
	Type reflect.Type
}

func (e *PointerTypeError) Error() string {
	return fmt.Sprintf("aligned: type %s contains Go pointers", e.Type)
}

// Is reports whether target is ErrPointerType.
func (e *PointerTypeError) Is(target error) bool { return target == ErrPointerType }

package aligned

import (
	"fmt"
	"reflect"

	"github.com/hupe1980/aligned/alloc"
	"github.com/hupe1980/aligned/internal/conv"
	"github.com/hupe1980/aligned/internal/mem"
)

// Finalizer is implemented by pointee types that hold resources of their
// own. Free calls Finalize on the pointee (on every element of a Slice)
// before the storage is released.
type Finalizer interface {
	Finalize()
}

func mustPointerFree[T any]() {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if mem.HasPointers(t) {
		panic(&PointerTypeError{Type: t})
	}
}

// cellLayout validates the requested alignment against size and then raises
// it to natural.
func cellLayout(size, natural, align uintptr) alloc.Layout {
	l, err := alloc.NewLayout(size, align)
	if err != nil {
		panic(err)
	}
	if l, err = l.AlignTo(natural); err != nil {
		panic(err)
	}
	return l
}

func arrayLayout[T any](n int, align uintptr) alloc.Layout {
	count, err := conv.IntToUintptr(n)
	if err != nil {
		panic(fmt.Sprintf("aligned: invalid length %d", n))
	}
	// Reject a bad alignment before reporting a size overflow.
	if _, err := alloc.NewLayout(0, align); err != nil {
		panic(err)
	}
	elem, err := alloc.ArrayLayoutFor[T](count)
	if err != nil {
		panic(err)
	}
	return cellLayout(elem.Size(), elem.Align(), align)
}

// finalize runs Finalize on every element of s if *T implements Finalizer.
func finalize[T any](s []T) {
	if len(s) == 0 {
		return
	}
	if _, ok := any(&s[0]).(Finalizer); !ok {
		return
	}
	for i := range s {
		any(&s[i]).(Finalizer).Finalize()
	}
}

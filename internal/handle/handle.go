// Package handle owns native resource pointers together with the function
// that releases them.
package handle

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrNullHandle is returned when a native constructor yielded no resource.
var ErrNullHandle = errors.New("native constructor returned a null handle")

// Handle exclusively owns one native resource. It is live until Release
// is called, after which it holds nothing.
type Handle[T any] struct {
	ptr     *T
	release func(*T) error
}

// New takes ownership of ptr. It fails with ErrNullHandle when ptr is nil.
func New[T any](ptr *T, release func(*T) error) (*Handle[T], error) {
	if ptr == nil {
		return nil, fmt.Errorf("%s: %w", typeName[T](), ErrNullHandle)
	}
	return &Handle[T]{ptr: ptr, release: release}, nil
}

// Borrow returns the owned pointer. Borrowing a released handle is a
// programming error and panics.
func (h *Handle[T]) Borrow() *T {
	if h.ptr == nil {
		panic(fmt.Sprintf("handle: %s used after release", typeName[T]()))
	}
	return h.ptr
}

// Live reports whether the handle still owns its resource.
func (h *Handle[T]) Live() bool {
	return h != nil && h.ptr != nil
}

// Release invokes the release function exactly once and returns its
// result. Later calls do nothing and return nil.
func (h *Handle[T]) Release() error {
	if !h.Live() {
		return nil
	}
	ptr := h.ptr
	h.ptr = nil
	if h.release == nil {
		return nil
	}
	return h.release(ptr)
}

func (h *Handle[T]) String() string {
	state := "released"
	if h.Live() {
		state = "live"
	}
	return fmt.Sprintf("Handle[%s](%s)", typeName[T](), state)
}

func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}

// Package notnull provides NotNull, a pointer wrapper that cannot hold nil.
//
// Adapted from the GSL not_null idea: construction is the only place a nil
// can sneak in, so construction is the only place that checks.
package notnull

import (
	"reflect"

	"github.com/wippyai/typekit/errors"
)

// NotNull wraps a *T that is guaranteed non-nil. The zero NotNull violates
// that guarantee and panics on access; always build through From or Must.
type NotNull[T any] struct {
	ptr *T
}

// From wraps p, rejecting nil.
func From[T any](p *T) (NotNull[T], error) {
	if p == nil {
		return NotNull[T]{}, errors.NilPointer(errors.OpBuild, reflect.TypeOf(p).String())
	}
	return NotNull[T]{ptr: p}, nil
}

// Must is From that panics on nil.
func Must[T any](p *T) NotNull[T] {
	n, err := From(p)
	if err != nil {
		panic(err)
	}
	return n
}

// Get returns the wrapped pointer. It panics on a zero NotNull, which can
// only exist through misuse of the zero value.
func (n NotNull[T]) Get() *T {
	if n.ptr == nil {
		panic("notnull: use of zero NotNull")
	}
	return n.ptr
}

// Deref returns the pointed-to value.
func (n NotNull[T]) Deref() T {
	return *n.Get()
}

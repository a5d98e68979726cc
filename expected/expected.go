// Package expected provides Expected, a result wrapper that holds either a
// value, a failure, or nothing at all.
package expected

import (
	"fmt"

	"github.com/wippyai/typekit/errors"
)

type state uint8

const (
	stateEmpty state = iota
	stateErr
	stateValue
)

// Expected holds exactly one of: nothing, an error, or a value of type T.
// The zero Expected is empty.
type Expected[T any] struct {
	value T
	err   error
	state state
}

// Of returns an Expected holding v.
func Of[T any](v T) Expected[T] {
	return Expected[T]{value: v, state: stateValue}
}

// FromErr returns an Expected holding err. A nil err yields an empty
// Expected.
func FromErr[T any](err error) Expected[T] {
	if err == nil {
		return Expected[T]{}
	}
	return Expected[T]{err: err, state: stateErr}
}

// From runs fn and captures its outcome: the value on success, the error
// otherwise.
func From[T any](fn func() (T, error)) Expected[T] {
	v, err := fn()
	if err != nil {
		return FromErr[T](err)
	}
	return Of(v)
}

// Capture runs fn and captures its outcome, converting a panic into a held
// error rather than unwinding further.
func Capture[T any](fn func() T) (e Expected[T]) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				e = FromErr[T](err)
				return
			}
			e = FromErr[T](fmt.Errorf("recovered: %v", r))
		}
	}()
	return Of(fn())
}

// HasValue reports whether a value is held.
func (e Expected[T]) HasValue() bool {
	return e.state == stateValue
}

// HasErr reports whether a failure is held.
func (e Expected[T]) HasErr() bool {
	return e.state == stateErr
}

// IsEmpty reports whether nothing is held.
func (e Expected[T]) IsEmpty() bool {
	return e.state == stateEmpty
}

// Get returns the held value. It returns the held error in the failure
// state and an empty-access error when nothing is held.
func (e Expected[T]) Get() (T, error) {
	var zero T
	switch e.state {
	case stateValue:
		return e.value, nil
	case stateErr:
		return zero, e.err
	default:
		return zero, errors.Empty(errors.OpAccess)
	}
}

// MustGet is Get that panics on any non-value state.
func (e Expected[T]) MustGet() T {
	v, err := e.Get()
	if err != nil {
		panic(err)
	}
	return v
}

// Err returns the held error, or nil when no failure is held.
func (e Expected[T]) Err() error {
	if e.state != stateErr {
		return nil
	}
	return e.err
}

// OrElse returns the held value, or fallback in the error and empty states.
func (e Expected[T]) OrElse(fallback T) T {
	if e.state != stateValue {
		return fallback
	}
	return e.value
}

// Set replaces the content with v.
func (e *Expected[T]) Set(v T) {
	*e = Of(v)
}

// SetErr replaces the content with err.
func (e *Expected[T]) SetErr(err error) {
	*e = FromErr[T](err)
}

// Clear empties the Expected.
func (e *Expected[T]) Clear() {
	*e = Expected[T]{}
}

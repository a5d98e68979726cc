// Package validated provides Validated, a value that passed its validators
// at construction and on every subsequent assignment.
package validated

import (
	"go.uber.org/multierr"

	"github.com/wippyai/typekit/errors"
)

// Validator reports why a candidate value is invalid, or nil.
type Validator[T any] func(T) error

// Validated holds a value of type T that satisfied every validator the
// container was built with. Reads cannot fail; writes revalidate and leave
// the held value untouched on failure.
type Validated[T any] struct {
	value      T
	validators []Validator[T]
}

// New validates v against all validators and returns the Validated on
// success. Every validator runs; failures are aggregated into one
// validation error.
func New[T any](v T, validators ...Validator[T]) (*Validated[T], error) {
	vd := &Validated[T]{validators: validators}
	if err := vd.check(v); err != nil {
		return nil, err
	}
	vd.value = v
	return vd, nil
}

// Must is New that panics on validation failure.
func Must[T any](v T, validators ...Validator[T]) *Validated[T] {
	vd, err := New(v, validators...)
	if err != nil {
		panic(err)
	}
	return vd
}

// Get returns the held value.
func (vd *Validated[T]) Get() T {
	return vd.value
}

// Set replaces the held value after revalidation. On failure the previous
// value is kept.
func (vd *Validated[T]) Set(v T) error {
	if err := vd.check(v); err != nil {
		return err
	}
	vd.value = v
	return nil
}

func (vd *Validated[T]) check(v T) error {
	var errs error
	for _, validate := range vd.validators {
		if err := validate(v); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return errors.Validation(errors.OpValidate, errs)
	}
	return nil
}

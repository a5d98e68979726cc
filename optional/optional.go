// Package optional provides Option, a value that may or may not be present.
package optional

// Option represents an optional value of type T: either Some (holding a
// value) or None. The zero Option is None.
type Option[T any] struct {
	value T
	ok    bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsSome reports whether a value is present.
func (o Option[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// MustGet returns the value and panics when the Option is empty.
func (o Option[T]) MustGet() T {
	if !o.ok {
		panic("optional: MustGet on None")
	}
	return o.value
}

// OrElse returns the value when present, fallback otherwise.
func (o Option[T]) OrElse(fallback T) T {
	if !o.ok {
		return fallback
	}
	return o.value
}

// OrZero returns the value when present, the zero value otherwise.
func (o Option[T]) OrZero() T {
	return o.value
}

// Map transforms the held value, preserving None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.ok {
		return None[U]()
	}
	return Some(fn(o.value))
}

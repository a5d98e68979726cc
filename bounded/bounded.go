// Package bounded provides a contiguous array with a fixed capacity chosen
// at construction time.
package bounded

import (
	"iter"

	"github.com/wippyai/typekit/errors"
)

// Array is a fixed-capacity contiguous buffer. Capacity never changes after
// construction; length grows with PushBack up to that capacity.
type Array[T any] struct {
	items []T
}

// New returns an empty array with the given capacity. A negative capacity
// is a programming error and panics.
func New[T any](capacity int) *Array[T] {
	if capacity < 0 {
		panic("bounded: negative capacity")
	}
	return &Array[T]{items: make([]T, 0, capacity)}
}

// FromSlice returns an array with the given capacity seeded with items.
func FromSlice[T any](capacity int, items ...T) (*Array[T], error) {
	if capacity < 0 {
		panic("bounded: negative capacity")
	}
	if len(items) > capacity {
		return nil, errors.Capacity(errors.OpBuild, capacity)
	}
	a := New[T](capacity)
	a.items = append(a.items, items...)
	return a, nil
}

// Len returns the number of stored elements.
func (a *Array[T]) Len() int {
	return len(a.items)
}

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int {
	return cap(a.items)
}

// Full reports whether no more elements fit.
func (a *Array[T]) Full() bool {
	return len(a.items) == cap(a.items)
}

// Empty reports whether no elements are stored.
func (a *Array[T]) Empty() bool {
	return len(a.items) == 0
}

// PushBack appends v, failing when the capacity is exhausted.
func (a *Array[T]) PushBack(v T) error {
	if a.Full() {
		return errors.Capacity(errors.OpStore, cap(a.items))
	}
	a.items = append(a.items, v)
	return nil
}

// PopBack removes and returns the last element.
func (a *Array[T]) PopBack() (T, error) {
	var zero T
	if len(a.items) == 0 {
		return zero, errors.Empty(errors.OpAccess)
	}
	last := len(a.items) - 1
	v := a.items[last]
	a.items[last] = zero
	a.items = a.items[:last]
	return v, nil
}

// At returns the element at index i.
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.items) {
		var zero T
		return zero, errors.OutOfBounds(errors.OpIndex, i, len(a.items))
	}
	return a.items[i], nil
}

// MustAt is At that panics on an out-of-bounds index.
func (a *Array[T]) MustAt(i int) T {
	v, err := a.At(i)
	if err != nil {
		panic(err)
	}
	return v
}

// SetAt replaces the element at index i.
func (a *Array[T]) SetAt(i int, v T) error {
	if i < 0 || i >= len(a.items) {
		return errors.OutOfBounds(errors.OpIndex, i, len(a.items))
	}
	a.items[i] = v
	return nil
}

// Slice returns a live view of the stored elements. Mutations through the
// view are visible to the array; appends are not.
func (a *Array[T]) Slice() []T {
	return a.items
}

// All iterates the stored elements in index order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range a.items {
			if !yield(i, v) {
				return
			}
		}
	}
}

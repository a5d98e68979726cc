// Package algo holds small generic helpers over slices and ordered values.
package algo

import "golang.org/x/exp/constraints"

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if b < a {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if b > a {
		return b
	}
	return a
}

// Clamp restricts v to the inclusive range [lo, hi]. It panics when lo > hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if lo > hi {
		panic("algo: Clamp with lo > hi")
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Transform applies fn to every element of in and returns the results.
func Transform[T, U any](in []T, fn func(T) U) []U {
	if in == nil {
		return nil
	}
	out := make([]U, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Accumulate folds in left-to-right starting from init.
func Accumulate[T, A any](in []T, init A, fn func(A, T) A) A {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Contains reports whether in has an element equal to target.
func Contains[T comparable](in []T, target T) bool {
	for _, v := range in {
		if v == target {
			return true
		}
	}
	return false
}

// AllOf reports whether pred holds for every element. It is true for an
// empty slice.
func AllOf[T any](in []T, pred func(T) bool) bool {
	for _, v := range in {
		if !pred(v) {
			return false
		}
	}
	return true
}

// AnyOf reports whether pred holds for at least one element.
func AnyOf[T any](in []T, pred func(T) bool) bool {
	for _, v := range in {
		if pred(v) {
			return true
		}
	}
	return false
}

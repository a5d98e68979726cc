// Package errors provides structured error types for the typekit library.
//
// Errors are categorized by Op (which API surface the failure came from) and
// Kind (error category). The Error type carries the requested and active type
// names for access failures, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.OpAccess, errors.KindBadAccess).
//		Want("int64").
//		Got("string").
//		Detail("value holds another type").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BadAccess(errors.OpAccess, "int64", "string")
//	err := errors.OutOfBounds(errors.OpIndex, 10, 5)
//
// All errors implement the standard error interface and support errors.Is/As.
// The package sentinels (ErrEmpty, ErrOverflow, ...) match by kind alone:
//
//	if errors.Is(err, errors.ErrOverflow) { ... }
package errors

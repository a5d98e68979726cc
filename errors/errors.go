package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Op indicates which API surface the error came from
type Op string

const (
	OpAccess   Op = "access"   // typed reads from containers
	OpStore    Op = "store"    // writes into containers
	OpCompare  Op = "compare"  // three-way comparison
	OpBuild    Op = "build"    // type-set / registry construction
	OpIndex    Op = "index"    // positional access
	OpParse    Op = "parse"    // string to typed value conversion
	OpValidate Op = "validate" // value validation
	OpMap      Op = "map"      // memory-mapped file operations
)

// Kind categorizes the error
type Kind string

const (
	KindBadAccess    Kind = "bad_access"
	KindEmpty        Kind = "empty"
	KindTypeMismatch Kind = "type_mismatch"
	KindOutOfBounds  Kind = "out_of_bounds"
	KindCapacity     Kind = "capacity"
	KindNilPointer   Kind = "nil_pointer"
	KindValidation   Kind = "validation"
	KindInvalidInput Kind = "invalid_input"
	KindOverflow     Kind = "overflow"
	KindClosed       Kind = "closed"
	KindNotFound     Kind = "not_found"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Op     Op
	Kind   Kind
	Want   string // requested type, when a typed access failed
	Got    string // active type, empty when the container held nothing
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Op))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Want != "" || e.Got != "" {
		b.WriteString(": ")
		if e.Want != "" && e.Got != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
			b.WriteString(", got ")
			b.WriteString(e.Got)
		} else if e.Want != "" {
			b.WriteString("want ")
			b.WriteString(e.Want)
		} else {
			b.WriteString("got ")
			b.WriteString(e.Got)
		}
	}

	if e.Detail != "" {
		if e.Want != "" || e.Got != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error. A target with an empty Op
// matches on Kind alone, which is what the package sentinels rely on.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		if t.Op != "" && e.Op != t.Op {
			return false
		}
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for matching by kind with stdlib errors.Is, regardless of Op.
var (
	ErrBadAccess    = &Error{Kind: KindBadAccess}
	ErrEmpty        = &Error{Kind: KindEmpty}
	ErrTypeMismatch = &Error{Kind: KindTypeMismatch}
	ErrOutOfBounds  = &Error{Kind: KindOutOfBounds}
	ErrCapacity     = &Error{Kind: KindCapacity}
	ErrNilPointer   = &Error{Kind: KindNilPointer}
	ErrValidation   = &Error{Kind: KindValidation}
	ErrInvalidInput = &Error{Kind: KindInvalidInput}
	ErrOverflow     = &Error{Kind: KindOverflow}
	ErrClosed       = &Error{Kind: KindClosed}
	ErrNotFound     = &Error{Kind: KindNotFound}
)

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(op Op, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Op:   op,
			Kind: kind,
		},
	}
}

// Want sets the requested type name
func (b *Builder) Want(t string) *Builder {
	b.err.Want = t
	return b
}

// Got sets the active type name
func (b *Builder) Got(t string) *Builder {
	b.err.Got = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// E is shorthand for a detail-only error without builder ceremony.
func E(op Op, kind Kind, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
	}
}

// Convenience constructors for common error patterns

// BadAccess creates a typed-access failure. got is the name of the active
// type; pass "" when the container held nothing.
func BadAccess(op Op, want, got string) *Error {
	detail := "value holds another type"
	if got == "" {
		detail = "value is empty"
	}
	return &Error{
		Op:     op,
		Kind:   KindBadAccess,
		Want:   want,
		Got:    got,
		Detail: detail,
	}
}

// Empty creates an empty-container access error
func Empty(op Op) *Error {
	return &Error{
		Op:     op,
		Kind:   KindEmpty,
		Detail: "no value present",
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(op Op, index, length int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Capacity creates a fixed-capacity exhaustion error
func Capacity(op Op, capacity int) *Error {
	return &Error{
		Op:     op,
		Kind:   KindCapacity,
		Detail: fmt.Sprintf("capacity %d exhausted", capacity),
		Value:  capacity,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(op Op, goType string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNilPointer,
		Want:   goType,
		Detail: "nil pointer",
	}
}

// Validation wraps one or more validator failures
func Validation(op Op, cause error) *Error {
	return &Error{
		Op:     op,
		Kind:   KindValidation,
		Detail: "value did not pass validation",
		Cause:  cause,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(op Op, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Overflow creates a numeric overflow error
func Overflow(op Op, value any, targetType string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindOverflow,
		Want:   targetType,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// Closed creates a use-after-close error
func Closed(op Op, what string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindClosed,
		Detail: what + " is closed",
	}
}

// NotFound creates a not-found error
func NotFound(op Op, what, name string) *Error {
	return &Error{
		Op:     op,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(op Op, kind Kind, cause error, detail string) *Error {
	return &Error{
		Op:     op,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// IsKind reports whether err or anything in its chain is an *Error of the
// given kind, regardless of Op.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// IsBadAccess reports whether err is a typed-access failure.
func IsBadAccess(err error) bool {
	return IsKind(err, KindBadAccess)
}

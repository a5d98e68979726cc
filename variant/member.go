package variant

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/wippyai/typekit/variant/internal/registry"
)

// Comparable is implemented by types that define their own three-way
// comparison.
type Comparable[T any] interface {
	// Cmp returns < 0 if this is less than other, 0 if they are equal, or
	// > 0 if this is greater than other.
	Cmp(other T) int
}

// Member is one entry of a closed type set. Build members with Ordered,
// Comparer, or Of and pass them to NewSet.
type Member struct {
	entry registry.Entry
}

// Type returns the member's Go type.
func (m Member) Type() TypeID {
	return TypeID{rt: m.entry.Type}
}

// MemberOption customizes one member's compiled operations.
type MemberOption[T any] func(*memberConfig[T])

type memberConfig[T any] struct {
	stringify func(T) string
	compare   func(a, b T) int
	destroy   func(T)
	custom    bool // any option applied; the member's table cannot be shared
}

// WithString overrides the member's string rendering.
func WithString[T any](fn func(T) string) MemberOption[T] {
	return func(c *memberConfig[T]) {
		c.stringify = fn
		c.custom = true
	}
}

// WithCompare overrides the member's same-type comparison.
func WithCompare[T any](fn func(a, b T) int) MemberOption[T] {
	return func(c *memberConfig[T]) {
		c.compare = fn
		c.custom = true
	}
}

// WithDestroy registers a hook invoked exactly once when a stored value of
// this member is overwritten, reset, or replaced.
func WithDestroy[T any](fn func(T)) MemberOption[T] {
	return func(c *memberConfig[T]) {
		c.destroy = fn
		c.custom = true
	}
}

// Ordered declares a member whose values compare with the language ordering
// operators.
func Ordered[T constraints.Ordered](opts ...MemberOption[T]) Member {
	cfg := applyOptions(opts)
	if cfg.compare == nil {
		cfg.compare = func(a, b T) int {
			switch {
			case a < b:
				return -1
			case a > b:
				return 1
			default:
				return 0
			}
		}
	}
	return makeMember(cfg)
}

// Comparer declares a member whose values compare through their Cmp method.
func Comparer[T Comparable[T]](opts ...MemberOption[T]) Member {
	cfg := applyOptions(opts)
	if cfg.compare == nil {
		cfg.compare = func(a, b T) int {
			return sign(a.Cmp(b))
		}
	}
	return makeMember(cfg)
}

// Of declares a member with no native ordering. Values of this member
// compare by their string rendering unless WithCompare supplies one.
func Of[T any](opts ...MemberOption[T]) Member {
	return makeMember(applyOptions(opts))
}

func applyOptions[T any](opts []MemberOption[T]) memberConfig[T] {
	var cfg memberConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func makeMember[T any](cfg memberConfig[T]) Member {
	rt := reflect.TypeOf((*T)(nil)).Elem()

	stringify := cfg.stringify
	if stringify == nil {
		stringify = renderValue[T]
	}

	e := registry.Entry{
		Type:   rt,
		Custom: cfg.custom,
		Stringify: func(v any) string {
			return stringify(v.(T))
		},
	}
	if cfg.compare != nil {
		cmp := cfg.compare
		e.Compare = func(a, b any) int {
			return sign(cmp(a.(T), b.(T)))
		}
	}
	if cfg.destroy != nil {
		destroy := cfg.destroy
		e.Destroy = func(v any) {
			destroy(v.(T))
		}
	}
	return Member{entry: e}
}

// renderValue is the default string rendering: fmt.Stringer when implemented,
// strconv fast paths for the built-in scalar kinds, fmt.Sprint otherwise.
func renderValue[T any](v T) string {
	switch x := any(v).(type) {
	case fmt.Stringer:
		return x.String()
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.FormatInt(int64(x), 10)
	case int8:
		return strconv.FormatInt(int64(x), 10)
	case int16:
		return strconv.FormatInt(int64(x), 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case uint:
		return strconv.FormatUint(uint64(x), 10)
	case uint8:
		return strconv.FormatUint(uint64(x), 10)
	case uint16:
		return strconv.FormatUint(uint64(x), 10)
	case uint32:
		return strconv.FormatUint(uint64(x), 10)
	case uint64:
		return strconv.FormatUint(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

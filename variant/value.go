package variant

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/wippyai/typekit/errors"
	"github.com/wippyai/typekit/optional"
	"github.com/wippyai/typekit/variant/internal/registry"
)

// Value holds at most one value from its Set's closed type set. The zero
// Value is unusable; create Values through Set.New or NewValue.
//
// Exactly one of "empty" or "holding member Tk" is true at any observation
// point. The active member's destroy hook runs exactly once, when the held
// value is overwritten or reset.
type Value struct {
	set     *Set
	active  reflect.Type // nil when empty
	payload any
}

// NewValue returns a Value of s holding v.
func NewValue[T any](s *Set, v T) *Value {
	u := s.New()
	Store(u, v)
	return u
}

// Set returns the closed type set this value belongs to.
func (v *Value) Set() *Set {
	return v.set
}

// IsEmpty reports whether no value is held.
func (v *Value) IsEmpty() bool {
	return v.active == nil
}

// TypeTag returns the identifier of the active member, or None when empty.
func (v *Value) TypeTag() optional.Option[TypeID] {
	if v.active == nil {
		return optional.None[TypeID]()
	}
	return optional.Some(TypeID{rt: v.active})
}

// Store places x into v, destroying any previously held value first. The
// previous value's destroy hook runs before x is stored, so a failed hook
// can never observe the new value.
//
// T must be a member of v's set; storing a non-member is a programming
// error and panics.
func Store[T any](v *Value, x T) *Value {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if !v.set.table.Contains(rt) {
		panic(fmt.Sprintf("variant: type %s is not a member of set %s", rt, v.set.table.Signature()))
	}
	v.destroyActive()
	v.payload = x
	v.active = rt
	return v
}

// Get returns the held value as T. It fails with a BadAccess error when v is
// empty or the active member is not T.
func Get[T any](v *Value) (T, error) {
	var zero T
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if v.active == nil {
		return zero, errors.BadAccess(errors.OpAccess, rt.String(), "")
	}
	if v.active != rt {
		return zero, errors.BadAccess(errors.OpAccess, rt.String(), v.active.String())
	}
	return v.payload.(T), nil
}

// MustGet is Get that panics on BadAccess.
func MustGet[T any](v *Value) T {
	x, err := Get[T](v)
	if err != nil {
		panic(err)
	}
	return x
}

// Is reports whether the active member is T.
func Is[T any](v *Value) bool {
	return v.active != nil && v.active == reflect.TypeOf((*T)(nil)).Elem()
}

// Reset destroys the held value, if any, and marks v empty. Idempotent.
func (v *Value) Reset() {
	v.destroyActive()
}

func (v *Value) destroyActive() {
	if v.active == nil {
		return
	}
	entry := v.lookup(v.active)
	if entry.Destroy != nil {
		entry.Destroy(v.payload)
	}
	v.payload = nil
	v.active = nil
}

// String renders the held value through the set's stringify operation; an
// empty Value renders as "".
func (v *Value) String() string {
	if v.active == nil {
		return ""
	}
	return v.lookup(v.active).Stringify(v.payload)
}

// Compare three-way compares v against o and returns -1, 0, or 1.
//
// When both sides hold the same member, that member's comparison decides.
// Otherwise (differing members, or either side empty) both sides are
// rendered to strings and compared lexicographically, which totally orders
// every pair of values of the set by a surrogate key. Two distinct values
// that render identically compare equal under the fallback.
//
// Comparing values of different sets is a programming error and panics. Sets
// are the same when they declare the same member types in the same order;
// each side still dispatches through its own declaration's operations.
func (v *Value) Compare(o *Value) int {
	if v.set.table.Signature() != o.set.table.Signature() {
		panic("variant: comparing values from different type sets")
	}
	if v.active != nil && v.active == o.active {
		entry := v.lookup(v.active)
		if entry.Compare != nil {
			return entry.Compare(v.payload, o.payload)
		}
	}
	return strings.Compare(v.String(), o.String())
}

// Equal reports v == o under Compare.
func (v *Value) Equal(o *Value) bool {
	return v.Compare(o) == 0
}

// Less reports v < o under Compare.
func (v *Value) Less(o *Value) bool {
	return v.Compare(o) < 0
}

// LessEq reports v <= o under Compare.
func (v *Value) LessEq(o *Value) bool {
	return v.Compare(o) <= 0
}

// Greater reports v > o under Compare.
func (v *Value) Greater(o *Value) bool {
	return v.Compare(o) > 0
}

// GreaterEq reports v >= o under Compare.
func (v *Value) GreaterEq(o *Value) bool {
	return v.Compare(o) >= 0
}

// lookup resolves the registry entry for an active member. A miss means the
// discriminant no longer names a member of the set, which violates the
// container invariant and cannot be recovered from.
func (v *Value) lookup(rt reflect.Type) registry.Entry {
	entry, ok := v.set.table.Lookup(rt)
	if !ok {
		panic(fmt.Sprintf("variant: active type %s missing from operation table %s", rt, v.set.table.Signature()))
	}
	return entry
}

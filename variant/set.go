package variant

import (
	"reflect"

	"go.uber.org/zap"

	"github.com/wippyai/typekit/variant/internal/registry"
)

// TypeID identifies one member type of a closed set. The zero TypeID
// identifies nothing.
type TypeID struct {
	rt reflect.Type
}

// TypeIDOf returns the identifier for T.
func TypeIDOf[T any]() TypeID {
	return TypeID{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// String returns the Go name of the identified type, or "<none>" for the
// zero TypeID.
func (id TypeID) String() string {
	if id.rt == nil {
		return "<none>"
	}
	return id.rt.String()
}

// IsZero reports whether the TypeID identifies nothing.
func (id TypeID) IsZero() bool {
	return id.rt == nil
}

// Set is a compiled closed type set. All Values created from the same Set
// share one immutable operation table. Sets declared with the same member
// types and no member options share the table process-wide; a set with any
// option-carrying member gets its own table, keeping its hooks to itself.
type Set struct {
	table *registry.Table
}

// NewSet compiles the closed type set from its members. It panics on an
// empty member list or duplicate member types: the set is fixed at
// definition time and violations are programming errors.
func NewSet(members ...Member) *Set {
	if len(members) == 0 {
		panic("variant: set needs at least one member")
	}
	entries := make([]registry.Entry, len(members))
	for i, m := range members {
		entries[i] = m.entry
	}
	table := registry.Compile(entries)
	Logger().Debug("compiled type set",
		zap.String("signature", table.Signature()),
		zap.Int("members", table.Len()),
	)
	return &Set{table: table}
}

// Len returns the number of member types.
func (s *Set) Len() int {
	return s.table.Len()
}

// Contains reports whether id is a member of the set.
func (s *Set) Contains(id TypeID) bool {
	if id.rt == nil {
		return false
	}
	return s.table.Contains(id.rt)
}

// Types returns the member type identifiers in declaration order.
func (s *Set) Types() []TypeID {
	rts := s.table.Types()
	ids := make([]TypeID, len(rts))
	for i, rt := range rts {
		ids[i] = TypeID{rt: rt}
	}
	return ids
}

// New returns an empty Value of this set.
func (s *Set) New() *Value {
	return &Value{set: s}
}

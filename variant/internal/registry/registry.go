// Package registry compiles and memoizes per-type-set operation tables.
//
// A Table maps each member type of a closed type set to the three operations
// the variant container dispatches through: destroy, compare, and stringify.
// Tables built from default operations are memoized by set signature and
// shared process-wide; tables carrying custom per-member operations are
// compiled fresh for every declaration, since two same-typed sets may bind
// different hooks. No table is mutated after construction.
package registry

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Entry holds the compiled operations for one member type. The operation
// funcs receive the type-erased payload; callers guarantee the dynamic type
// matches Type before dispatching.
type Entry struct {
	Type      reflect.Type
	Destroy   func(v any)        // optional release hook, may be nil
	Compare   func(a, b any) int // nil means string-fallback comparison
	Stringify func(v any) string
	Custom    bool // operations were overridden; excludes the table from memoization
}

// Table is the immutable operation registry for one closed type set.
type Table struct {
	entries map[reflect.Type]Entry
	order   []reflect.Type
	sig     string
}

// tables memoizes compiled option-free tables by signature plus the
// per-member op layout. Concurrent first-time compilation is resolved by
// LoadOrStore: losers discard their build.
var tables sync.Map // string -> *Table

// Compile builds the operation table for the given member entries. Order is
// significant only for Signature; lookup is by type.
//
// A table whose entries all use default operations is memoized and shared
// across declarations. The memo key is the signature plus each member's
// compare-presence, so a natively ordered member and a string-fallback
// member of the same type never alias. Any entry marked Custom carries
// closures specific to one declaration, so its table is never shared: a
// later set with the same member types must not inherit another set's hooks.
//
// Compile panics on an empty member list, on a missing stringify operation,
// and on duplicate member types: these are definition-time programming
// errors, not runtime failures.
func Compile(entries []Entry) *Table {
	if len(entries) == 0 {
		panic("registry: type set needs at least one member")
	}

	byType := make(map[reflect.Type]Entry, len(entries))
	order := make([]reflect.Type, 0, len(entries))
	names := make([]string, 0, len(entries))
	ops := make([]byte, 0, len(entries))
	shareable := true
	for _, e := range entries {
		if e.Type == nil {
			panic("registry: entry has no type")
		}
		if e.Stringify == nil {
			panic(fmt.Sprintf("registry: member %s has no stringify operation", e.Type))
		}
		if _, dup := byType[e.Type]; dup {
			panic(fmt.Sprintf("registry: duplicate member type %s", e.Type))
		}
		if e.Custom {
			shareable = false
		}
		if e.Compare != nil {
			ops = append(ops, 'c')
		} else {
			ops = append(ops, '-')
		}
		byType[e.Type] = e
		order = append(order, e.Type)
		names = append(names, typeName(e.Type))
	}

	sig := strings.Join(names, "|")
	t := &Table{entries: byType, order: order, sig: sig}
	if !shareable {
		return t
	}

	key := sig + "#" + string(ops)
	if cached, ok := tables.Load(key); ok {
		return cached.(*Table)
	}
	actual, _ := tables.LoadOrStore(key, t)
	return actual.(*Table)
}

// Lookup returns the entry for rt and whether rt is a member of the set.
func (t *Table) Lookup(rt reflect.Type) (Entry, bool) {
	e, ok := t.entries[rt]
	return e, ok
}

// Contains reports whether rt is a member of the set.
func (t *Table) Contains(rt reflect.Type) bool {
	_, ok := t.entries[rt]
	return ok
}

// Types returns the member types in declaration order.
func (t *Table) Types() []reflect.Type {
	out := make([]reflect.Type, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of members.
func (t *Table) Len() int {
	return len(t.order)
}

// Signature returns the stable identity of the set: the member type names in
// declaration order.
func (t *Table) Signature() string {
	return t.sig
}

func typeName(rt reflect.Type) string {
	if pkg := rt.PkgPath(); pkg != "" {
		return pkg + "." + rt.Name()
	}
	return rt.String()
}

// Package variant implements a tagged-union value over a closed set of types.
//
// A Set declares the closed type set once; a Value holds at most one value
// from that set at a time. Destruction, comparison, and stringification
// dispatch through an operation table compiled per set and shared by every
// Value of that set, so callers never need to know which member is active.
//
//	cells := variant.NewSet(
//	    variant.Ordered[int64](),
//	    variant.Ordered[float64](),
//	    variant.Of[string](),
//	)
//
//	v := cells.New()
//	variant.Store(v, int64(5))
//	n, err := variant.Get[int64](v) // 5, nil
//	_, err = variant.Get[string](v) // BadAccess
//
// Comparison is total: values holding the same member compare with that
// member's native ordering, while values holding different members (or no
// value) fall back to lexicographic comparison of their string renderings.
// The fallback gives a consistent surrogate order, not semantic equality.
//
// A Value is a plain value type with no internal synchronization; concurrent
// mutation of the same Value requires external coordination. Compiled
// operation tables are immutable and safe for concurrent readers.
package variant

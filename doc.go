// Package typekit provides typed value containers for Go: a closed-set
// variant value with per-set comparison and rendering, plus the small
// supporting containers that usually travel with it.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	typekit/             Root package documentation
//	├── variant/         Closed type sets and tagged values with three-way compare
//	├── optional/        Presence-tracking Option type
//	├── expected/        Value-or-error-or-empty result container
//	├── validated/       Values guarded by validator functions
//	├── notnull/         Pointers proven non-nil at construction
//	├── boxed/           Value-semantics heap box with deep clone
//	├── bounded/         Fixed-capacity array with checked access
//	├── parse/           Delimited text to typed value conversion
//	├── mmfile/          Read-only memory-mapped file views
//	├── bench/           Labeled wall-clock timers
//	├── algo/            Generic slice and ordering helpers
//	└── errors/          Structured error types shared by all packages
//
// # Quick Start
//
// Declare a closed type set once, then move values of its member types
// through a single container:
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
//
//	variant.Store(v, "5.5")         // replaces the int64
//	_, err = variant.Get[int64](v)  // bad_access: value holds another type
//
// Values from the same set order totally: members with a numeric or custom
// comparison use it, and mixed-member comparisons fall back to comparing
// rendered strings.
//
//	a := variant.NewValue(cells, int64(5))
//	b := variant.NewValue(cells, "5")
//	a.Compare(b) // 0: both render "5"
//
// # Type Safety Model
//
// Set membership is checked at definition time and on every store: storing a
// non-member type panics, because the set of types is part of the program's
// design, not its input. Reading the wrong type out of a value is an
// expected runtime condition and returns a structured error instead.
//
// # Thread Safety
//
// Sets are immutable after NewSet and safe for concurrent use. Values are
// NOT thread-safe; confine each Value to one goroutine or synchronize
// access.
package typekit

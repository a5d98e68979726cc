package variant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/wippyai/typekit/errors"
)

func newCellSet() *Set {
	return NewSet(
		Ordered[int64](),
		Ordered[float64](),
		Of[string](),
	)
}

func TestValue_CreatedEmpty(t *testing.T) {
	v := newCellSet().New()

	if !v.IsEmpty() {
		t.Error("new value should be empty")
	}
	if v.TypeTag().IsSome() {
		t.Error("empty value should have no type tag")
	}
	if got := v.String(); got != "" {
		t.Errorf("String() = %q, want empty", got)
	}
}

func TestStore_RoundTrip(t *testing.T) {
	s := newCellSet()

	t.Run("int64", func(t *testing.T) {
		v := s.New()
		Store(v, int64(5))
		got, err := Get[int64](v)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != 5 {
			t.Errorf("Get() = %d, want 5", got)
		}
	})

	t.Run("float64", func(t *testing.T) {
		v := s.New()
		Store(v, 5.5)
		got, err := Get[float64](v)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != 5.5 {
			t.Errorf("Get() = %v, want 5.5", got)
		}
	})

	t.Run("string", func(t *testing.T) {
		v := s.New()
		Store(v, "hello")
		got, err := Get[string](v)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != "hello" {
			t.Errorf("Get() = %q, want %q", got, "hello")
		}
	})
}

func TestGet_TypeMismatch(t *testing.T) {
	v := newCellSet().New()
	Store(v, int64(5))

	_, err := Get[string](v)
	if err == nil {
		t.Fatal("Get of inactive member should fail")
	}
	if !errors.IsBadAccess(err) {
		t.Errorf("error kind = %v, want bad_access", err)
	}

	_, err = Get[float64](v)
	if !errors.IsBadAccess(err) {
		t.Errorf("error kind = %v, want bad_access", err)
	}
}

func TestGet_Empty(t *testing.T) {
	s := newCellSet()

	check := func(t *testing.T, v *Value) {
		t.Helper()
		if _, err := Get[int64](v); !errors.IsBadAccess(err) {
			t.Errorf("Get[int64] on empty = %v, want bad_access", err)
		}
		if _, err := Get[float64](v); !errors.IsBadAccess(err) {
			t.Errorf("Get[float64] on empty = %v, want bad_access", err)
		}
		if _, err := Get[string](v); !errors.IsBadAccess(err) {
			t.Errorf("Get[string] on empty = %v, want bad_access", err)
		}
	}

	t.Run("fresh", func(t *testing.T) {
		check(t, s.New())
	})

	t.Run("after reset", func(t *testing.T) {
		v := s.New()
		Store(v, int64(1))
		v.Reset()
		check(t, v)
	})
}

func TestStore_ReplacesAcrossMembers(t *testing.T) {
	v := newCellSet().New()

	Store(v, int64(5))
	if got := v.TypeTag().MustGet(); got != TypeIDOf[int64]() {
		t.Errorf("TypeTag() = %v, want int64", got)
	}
	if got := v.String(); got != "5" {
		t.Errorf("String() = %q, want %q", got, "5")
	}

	Store(v, 5.5)
	if got := v.TypeTag().MustGet(); got != TypeIDOf[float64]() {
		t.Errorf("TypeTag() = %v, want float64", got)
	}
	if got, err := Get[float64](v); err != nil || got != 5.5 {
		t.Errorf("Get[float64]() = %v, %v", got, err)
	}
	if _, err := Get[int64](v); !errors.IsBadAccess(err) {
		t.Errorf("Get[int64] after float store = %v, want bad_access", err)
	}
	if got := v.String(); got != "5.5" {
		t.Errorf("String() = %q, want %q", got, "5.5")
	}
}

// Exactly one of empty / holding-Tk holds at every observation point.
func TestMutualExclusion(t *testing.T) {
	v := newCellSet().New()

	observe := func(step string, wantTag TypeID) {
		t.Helper()
		tag, ok := v.TypeTag().Get()
		if wantTag.IsZero() {
			if !v.IsEmpty() || ok {
				t.Errorf("%s: want empty, got tag %v", step, tag)
			}
			return
		}
		if v.IsEmpty() || !ok {
			t.Errorf("%s: want %v active, got empty", step, wantTag)
			return
		}
		if tag != wantTag {
			t.Errorf("%s: tag = %v, want %v", step, tag, wantTag)
		}
	}

	observe("initial", TypeID{})
	Store(v, int64(1))
	observe("store int64", TypeIDOf[int64]())
	Store(v, "x")
	observe("store string", TypeIDOf[string]())
	v.Reset()
	observe("reset", TypeID{})
	v.Reset()
	observe("reset twice", TypeID{})
	Store(v, 2.5)
	observe("store float64", TypeIDOf[float64]())
}

func TestStore_NonMemberPanics(t *testing.T) {
	v := newCellSet().New()

	defer func() {
		if recover() == nil {
			t.Error("storing a non-member type should panic")
		}
	}()
	Store(v, uint32(1))
}

func TestNewSet_Panics(t *testing.T) {
	t.Run("no members", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewSet() should panic")
			}
		}()
		NewSet()
	})

	t.Run("duplicate members", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("duplicate member should panic")
			}
		}()
		NewSet(Ordered[int64](), Ordered[int64]())
	})
}

func TestCompare_SameMember(t *testing.T) {
	s := newCellSet()
	a := NewValue(s, int64(5))
	b := NewValue(s, int64(5))
	c := NewValue(s, int64(6))

	if got := a.Compare(b); got != 0 {
		t.Errorf("Compare(5, 5) = %d, want 0", got)
	}
	if got := a.Compare(c); got != -1 {
		t.Errorf("Compare(5, 6) = %d, want -1", got)
	}
	if got := c.Compare(a); got != 1 {
		t.Errorf("Compare(6, 5) = %d, want 1", got)
	}
}

func TestCompare_CrossMemberFallsBackToString(t *testing.T) {
	s := newCellSet()
	num := NewValue(s, int64(5))
	str := NewValue(s, "5")

	if got, want := num.Compare(str), strings.Compare(num.String(), str.String()); got != want {
		t.Errorf("Compare = %d, want string order %d", got, want)
	}
	if got := num.Compare(str); got != 0 {
		t.Errorf("int64(5) vs string(\"5\") = %d, want 0 under surrogate order", got)
	}

	flt := NewValue(s, 5.5)
	if got, want := flt.Compare(str), strings.Compare("5.5", "5"); got != want {
		t.Errorf("Compare = %d, want %d", got, want)
	}
}

func TestCompare_Totality(t *testing.T) {
	s := newCellSet()
	values := []*Value{
		s.New(),
		NewValue(s, int64(-3)),
		NewValue(s, int64(5)),
		NewValue(s, 5.5),
		NewValue(s, "5"),
		NewValue(s, "zebra"),
	}

	for i, a := range values {
		for j, b := range values {
			ab := a.Compare(b)
			ba := b.Compare(a)
			if ab < -1 || ab > 1 {
				t.Errorf("Compare(%d, %d) = %d, outside {-1,0,1}", i, j, ab)
			}
			if ab != -ba {
				t.Errorf("Compare(%d, %d) = %d, but Compare(%d, %d) = %d", i, j, ab, j, i, ba)
			}
			if i == j && ab != 0 {
				t.Errorf("Compare(%d, %d) = %d, want 0", i, i, ab)
			}
		}
	}
}

func TestCompare_Empty(t *testing.T) {
	s := newCellSet()
	e1 := s.New()
	e2 := s.New()

	if got := e1.Compare(e2); got != 0 {
		t.Errorf("empty vs empty = %d, want 0", got)
	}

	// An empty value renders as "" and so orders before any non-empty
	// rendering under the surrogate order.
	v := NewValue(s, int64(5))
	if got := e1.Compare(v); got != -1 {
		t.Errorf("empty vs 5 = %d, want -1", got)
	}
	if got := v.Compare(e1); got != 1 {
		t.Errorf("5 vs empty = %d, want 1", got)
	}
}

func TestCompare_DifferentSetsPanics(t *testing.T) {
	a := NewValue(NewSet(Ordered[int64]()), int64(1))
	b := NewValue(NewSet(Ordered[float64]()), 1.0)

	defer func() {
		if recover() == nil {
			t.Error("comparing values of different sets should panic")
		}
	}()
	a.Compare(b)
}

func TestCompare_SharedSetAcrossDeclarations(t *testing.T) {
	s1 := newCellSet()
	s2 := newCellSet()

	a := NewValue(s1, int64(5))
	b := NewValue(s2, int64(5))
	if got := a.Compare(b); got != 0 {
		t.Errorf("Compare across identical set declarations = %d, want 0", got)
	}
}

func TestCompare_MemberOptionsStayWithDeclaration(t *testing.T) {
	plain := NewSet(Ordered[uint]())
	reversed := NewSet(Ordered[uint](
		WithCompare(func(a, b uint) int {
			switch {
			case a < b:
				return 1
			case a > b:
				return -1
			default:
				return 0
			}
		}),
	))

	one := NewValue(reversed, uint(1))
	two := NewValue(reversed, uint(2))
	if got := one.Compare(two); got != 1 {
		t.Errorf("reversed Compare(1, 2) = %d, want 1", got)
	}

	a := NewValue(plain, uint(1))
	b := NewValue(plain, uint(2))
	if got := a.Compare(b); got != -1 {
		t.Errorf("plain Compare(1, 2) = %d, want -1", got)
	}
}

func TestDestroy_HookAfterPlainDeclaration(t *testing.T) {
	// A plain set with the same member type must not capture the table the
	// hooked set compiles afterwards.
	plain := NewSet(Ordered[uint16]())

	destroys := 0
	hooked := NewSet(Ordered[uint16](WithDestroy(func(uint16) { destroys++ })))

	v := hooked.New()
	Store(v, uint16(7))
	v.Reset()
	if destroys != 1 {
		t.Errorf("destroys = %d, want 1", destroys)
	}

	p := plain.New()
	Store(p, uint16(7))
	p.Reset()
	if destroys != 1 {
		t.Errorf("destroys after plain set reset = %d, want 1", destroys)
	}
}

func TestDerivedOperators(t *testing.T) {
	s := newCellSet()
	five := NewValue(s, int64(5))
	fiveToo := NewValue(s, int64(5))
	six := NewValue(s, int64(6))

	if !five.Equal(fiveToo) {
		t.Error("5 == 5")
	}
	if !five.Less(six) {
		t.Error("5 < 6")
	}
	if !five.LessEq(fiveToo) {
		t.Error("5 <= 5")
	}
	if !six.Greater(five) {
		t.Error("6 > 5")
	}
	if !six.GreaterEq(six) {
		t.Error("6 >= 6")
	}
	if five.Equal(six) {
		t.Error("5 != 6")
	}
}

// tracked carries its own destroy counter so the hook compiled into the
// operation table stays stateless.
type tracked struct {
	id       int
	destroys *int
}

func newTrackedSet() *Set {
	return NewSet(
		Of[tracked](
			WithDestroy(func(v tracked) { *v.destroys++ }),
			WithString(func(v tracked) string { return fmt.Sprintf("tracked(%d)", v.id) }),
		),
		Ordered[int64](),
	)
}

func TestDestroy_RunsExactlyOnce(t *testing.T) {
	s := newTrackedSet()

	t.Run("overwrite same member", func(t *testing.T) {
		destroys := 0
		stores := 0

		v := s.New()
		Store(v, tracked{id: 1, destroys: &destroys})
		stores++
		Store(v, tracked{id: 2, destroys: &destroys})
		stores++
		v.Reset()

		if destroys != stores {
			t.Errorf("destroys = %d, stores = %d", destroys, stores)
		}
	})

	t.Run("overwrite with other member", func(t *testing.T) {
		destroys := 0

		v := s.New()
		Store(v, tracked{id: 1, destroys: &destroys})
		Store(v, int64(9))
		if destroys != 1 {
			t.Errorf("destroys after cross-member store = %d, want 1", destroys)
		}
		v.Reset()
		if destroys != 1 {
			t.Errorf("destroys after reset of int64 = %d, want 1", destroys)
		}
	})

	t.Run("reset is idempotent", func(t *testing.T) {
		destroys := 0

		v := s.New()
		Store(v, tracked{id: 1, destroys: &destroys})
		v.Reset()
		v.Reset()
		if destroys != 1 {
			t.Errorf("destroys = %d, want 1", destroys)
		}
	})
}

func TestString_Renderings(t *testing.T) {
	s := newCellSet()
	tests := []struct {
		name string
		v    *Value
		want string
	}{
		{"empty", s.New(), ""},
		{"int64", NewValue(s, int64(5)), "5"},
		{"negative int64", NewValue(s, int64(-12)), "-12"},
		{"float64", NewValue(s, 5.5), "5.5"},
		{"string", NewValue(s, "hello"), "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	v := newCellSet().New()

	if Is[int64](v) {
		t.Error("empty value should not report any member")
	}
	Store(v, int64(5))
	if !Is[int64](v) {
		t.Error("Is[int64] should hold")
	}
	if Is[string](v) {
		t.Error("Is[string] should not hold")
	}
}

func TestMustGet(t *testing.T) {
	s := newCellSet()
	v := NewValue(s, int64(5))

	if got := MustGet[int64](v); got != 5 {
		t.Errorf("MustGet() = %d", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("MustGet on wrong member should panic")
		}
	}()
	MustGet[string](v)
}

func TestSet_Introspection(t *testing.T) {
	s := newCellSet()

	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	if !s.Contains(TypeIDOf[int64]()) {
		t.Error("set should contain int64")
	}
	if s.Contains(TypeIDOf[uint8]()) {
		t.Error("set should not contain uint8")
	}
	if s.Contains(TypeID{}) {
		t.Error("set should not contain the zero TypeID")
	}

	types := s.Types()
	want := []TypeID{TypeIDOf[int64](), TypeIDOf[float64](), TypeIDOf[string]()}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Types()[%d] = %v, want %v", i, types[i], want[i])
		}
	}
}

func TestTypeID_String(t *testing.T) {
	if got := TypeIDOf[int64]().String(); got != "int64" {
		t.Errorf("TypeIDOf[int64]().String() = %q", got)
	}
	if got := (TypeID{}).String(); got != "<none>" {
		t.Errorf("zero TypeID String() = %q", got)
	}
}

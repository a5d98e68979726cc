package bounded

import (
	"testing"

	"github.com/wippyai/typekit/errors"
)

func TestNew(t *testing.T) {
	a := New[int](4)
	if a.Len() != 0 || a.Cap() != 4 {
		t.Errorf("Len, Cap = %d, %d; want 0, 4", a.Len(), a.Cap())
	}
	if !a.Empty() || a.Full() {
		t.Error("new array should be empty and not full")
	}
}

func TestNew_NegativeCapacityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("New(-1) should panic")
		}
	}()
	New[int](-1)
}

func TestPushBack(t *testing.T) {
	a := New[string](2)

	if err := a.PushBack("a"); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if err := a.PushBack("b"); err != nil {
		t.Fatalf("PushBack: %v", err)
	}
	if !a.Full() {
		t.Error("array should be full")
	}

	err := a.PushBack("c")
	if err == nil {
		t.Fatal("PushBack beyond capacity should fail")
	}
	if !errors.IsKind(err, errors.KindCapacity) {
		t.Errorf("error kind = %v, want capacity", err)
	}
	if a.Len() != 2 {
		t.Errorf("Len() = %d after failed push, want 2", a.Len())
	}
}

func TestPopBack(t *testing.T) {
	a := New[int](3)
	_ = a.PushBack(1)
	_ = a.PushBack(2)

	v, err := a.PopBack()
	if err != nil || v != 2 {
		t.Errorf("PopBack() = %d, %v; want 2", v, err)
	}
	if a.Len() != 1 {
		t.Errorf("Len() = %d, want 1", a.Len())
	}

	_, _ = a.PopBack()
	_, err = a.PopBack()
	if !errors.IsKind(err, errors.KindEmpty) {
		t.Errorf("PopBack on empty = %v, want kind empty", err)
	}
}

func TestAt(t *testing.T) {
	a, err := FromSlice(3, 10, 20, 30)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}

	tests := []struct {
		index   int
		want    int
		wantErr bool
	}{
		{0, 10, false},
		{2, 30, false},
		{-1, 0, true},
		{3, 0, true},
	}

	for _, tt := range tests {
		v, err := a.At(tt.index)
		if tt.wantErr {
			if !errors.IsKind(err, errors.KindOutOfBounds) {
				t.Errorf("At(%d) error = %v, want out_of_bounds", tt.index, err)
			}
			continue
		}
		if err != nil || v != tt.want {
			t.Errorf("At(%d) = %d, %v; want %d", tt.index, v, err, tt.want)
		}
	}
}

func TestSetAt(t *testing.T) {
	a, _ := FromSlice(2, 1, 2)

	if err := a.SetAt(1, 9); err != nil {
		t.Fatalf("SetAt: %v", err)
	}
	if got := a.MustAt(1); got != 9 {
		t.Errorf("MustAt(1) = %d, want 9", got)
	}

	if err := a.SetAt(2, 0); !errors.IsKind(err, errors.KindOutOfBounds) {
		t.Errorf("SetAt(2) = %v, want out_of_bounds", err)
	}
}

func TestMustAt_Panics(t *testing.T) {
	a := New[int](1)

	defer func() {
		if recover() == nil {
			t.Error("MustAt out of bounds should panic")
		}
	}()
	a.MustAt(0)
}

func TestFromSlice_Overflow(t *testing.T) {
	_, err := FromSlice(1, 1, 2)
	if !errors.IsKind(err, errors.KindCapacity) {
		t.Errorf("FromSlice beyond capacity = %v, want capacity", err)
	}
}

func TestSlice_IsLiveView(t *testing.T) {
	a, _ := FromSlice(2, 1, 2)
	s := a.Slice()
	s[0] = 9
	if got := a.MustAt(0); got != 9 {
		t.Errorf("MustAt(0) = %d, want 9", got)
	}
}

func TestAll(t *testing.T) {
	a, _ := FromSlice(3, 5, 6, 7)

	var got []int
	for i, v := range a.All() {
		got = append(got, i+v)
	}
	want := []int{5, 7, 9}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("All()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

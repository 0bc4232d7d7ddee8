package contiguous

import (
	"errors"
	"testing"
)

func TestValueVectorElements(t *testing.T) {
	t.Run("PushBackThenPopBack", func(t *testing.T) {
		x := *Of(1, 2, 3)
		v := New[Vector[int]]()
		v.PushBack(x)
		if err := v.PopBack(); err != nil {
			t.Fatal(err)
		}
		assertInts(t, "caller's vector after PopBack", &x, 1, 2, 3)
	})

	t.Run("CloneThenClear", func(t *testing.T) {
		a := New[Vector[int]]()
		a.PushBack(*Of(1, 2, 3))
		b := a.Clone()
		b.Clear()
		first := a.Get(0)
		assertInts(t, "source element after clearing the clone", &first, 1, 2, 3)
	})

	t.Run("CloneIsIndependent", func(t *testing.T) {
		a := New[Vector[int]]()
		a.PushBack(*Of(1, 2))
		b := a.Clone()
		b.Ptr(0).PushBack(3)
		b.Ptr(0).Set(0, 10)
		first := a.Get(0)
		assertInts(t, "source element after mutating the clone", &first, 1, 2)
	})

	t.Run("Filled", func(t *testing.T) {
		proto := *Of(7)
		v := Filled(3, proto)
		v.Release()
		assertInts(t, "fill value after Release", &proto, 7)
	})

	t.Run("ThreeLevels", func(t *testing.T) {
		inner := New[Vector[int]]()
		inner.PushBack(*Of(1, 2))
		outer := New[Vector[Vector[int]]]()
		outer.PushBack(*inner)
		c := outer.Clone()
		c.Clear()
		got := inner.Get(0)
		assertInts(t, "innermost vector after clearing the outer clone", &got, 1, 2)
		mid := outer.Get(0)
		got = mid.Get(0)
		assertInts(t, "outer's own copy after clearing the clone", &got, 1, 2)
	})
}

func TestValueArrayElements(t *testing.T) {
	t.Run("PushBackThenPopBack", func(t *testing.T) {
		x := *ArrayOf(3, 1, 2, 3)
		v := New[Array[int]]()
		v.PushBack(x)
		if err := v.PopBack(); err != nil {
			t.Fatal(err)
		}
		if x.Get(0) != 1 || x.Get(2) != 3 {
			t.Errorf("caller's array after PopBack = %v, want [1 2 3]", x.Slice())
		}
	})

	t.Run("CloneThenRelease", func(t *testing.T) {
		a := New[Array[int]]()
		a.PushBack(*ArrayOf(3, 4, 5, 6))
		b := a.Clone()
		b.Release()
		first := a.Get(0)
		if first.Get(0) != 4 || first.Get(2) != 6 {
			t.Errorf("source element after releasing the clone = %v, want [4 5 6]", first.Slice())
		}
	})

	t.Run("ArrayOfArrays", func(t *testing.T) {
		a := ArrayOf(2, *ArrayOf(2, 1, 2), *ArrayOf(2, 3, 4))
		b := a.Clone()
		b.Ptr(1).Set(0, 30)
		if second := a.Get(1); second.Get(0) != 3 {
			t.Error("mutating the cloned inner array changed the source")
		}
	})
}

func TestInterfaceContainerElements(t *testing.T) {
	t.Run("CloneThenClear", func(t *testing.T) {
		a := New[any]()
		a.PushBack(Of(1, 2, 3))
		b := a.Clone()
		if b.Get(0) == a.Get(0) {
			t.Fatal("cloned interface element aliases the source")
		}
		b.Clear()
		assertInts(t, "source element after clearing the clone", a.Get(0).(*Vector[int]), 1, 2, 3)
	})

	t.Run("PushBackThenPopBack", func(t *testing.T) {
		x := Of(1, 2, 3)
		v := New[any]()
		v.PushBack(x)
		if err := v.PopBack(); err != nil {
			t.Fatal(err)
		}
		assertInts(t, "caller's vector after PopBack", x, 1, 2, 3)
	})

	t.Run("NarrowerInterface", func(t *testing.T) {
		a := New[Releaser]()
		a.PushBack(ArrayOf(2, "x", "y"))
		b := a.Clone()
		b.Clear()
		if got := a.Get(0).(*Array[string]).Get(1); got != "y" {
			t.Errorf("source element after clearing the clone = %q, want %q", got, "y")
		}
	})

	t.Run("MixedValues", func(t *testing.T) {
		v := Of[any](1, "two", (*Vector[int])(nil), nil)
		c := v.Clone()
		for i := 0; i < v.Len(); i++ {
			if c.Get(i) != v.Get(i) {
				t.Errorf("element %d = %v, want %v", i, c.Get(i), v.Get(i))
			}
		}
	})
}

func TestReallocationsFollowStorage(t *testing.T) {
	grown := func() *Vector[int] {
		v := New[int]()
		for i := 0; i < 8; i++ {
			v.PushBack(i)
		}
		return v
	}

	a, b := grown(), New[int]()
	a.Swap(b)
	if a.Len() != 0 || a.Reallocations() != 0 {
		t.Errorf("after Swap a: len=%d reallocs=%d, want 0 0", a.Len(), a.Reallocations())
	}
	if b.Len() != 8 || b.Reallocations() != 4 {
		t.Errorf("after Swap b: len=%d reallocs=%d, want 8 4", b.Len(), b.Reallocations())
	}

	m := b.Move()
	if m.Reallocations() != 4 || b.Reallocations() != 0 {
		t.Errorf("after Move: moved=%d source=%d, want 4 0", m.Reallocations(), b.Reallocations())
	}

	c := New[int]()
	c.MoveFrom(m)
	if c.Reallocations() != 4 || m.Reallocations() != 0 {
		t.Errorf("after MoveFrom: dst=%d src=%d, want 4 0", c.Reallocations(), m.Reallocations())
	}

	c.Assign(Of(1, 2))
	if c.Reallocations() != 0 {
		t.Errorf("after Assign reallocs = %d, want 0", c.Reallocations())
	}
}

func TestNilVectorCheckedAccess(t *testing.T) {
	var v *Vector[int]

	if _, err := v.At(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("At(0) on nil error = %v", err)
	}
	if _, err := v.AtPtr(0); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("AtPtr(0) on nil error = %v", err)
	}
	if _, err := v.Front(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Front() on nil error = %v", err)
	}
	if _, err := v.Back(); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Back() on nil error = %v", err)
	}
	for range v.All() {
		t.Error("All() on nil yielded an element")
	}

	w := Of(1, 2, 3)
	w.MoveFrom(nil)
	if w.Len() != 0 || w.Cap() != 0 {
		t.Errorf("MoveFrom(nil) len=%d cap=%d, want 0 0", w.Len(), w.Cap())
	}
}

// TestGrowthLeavesOldBlock checks that reallocation does not write to the
// block it replaces.
func TestGrowthLeavesOldBlock(t *testing.T) {
	v := Of(1, 2, 3)
	old := v.Slice()
	v.Reserve(16)
	v.Set(0, 100)
	if old[0] != 1 || old[1] != 2 || old[2] != 3 {
		t.Errorf("old block after Reserve = %v, want [1 2 3]", old)
	}
}

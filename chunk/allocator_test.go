package chunk

import "testing"

func TestAllocator_GetFree_Reuse(t *testing.T) {
	a := NewAllocator[int](8)
	if a.Capacity() != 8 {
		t.Fatalf(`expected capacity 8, got %d`, a.Capacity())
	}

	c1 := a.Get()
	if c1.Cap() != 8 || !c1.Empty() {
		t.Fatalf(`expected fresh empty chunk of cap 8, got cap=%d len=%d`, c1.Cap(), c1.Len())
	}

	if err := c1.Push(42); err != nil {
		t.Fatal(err)
	}
	c1.SetNext(c1) // simulate having been linked into a stack

	a.Free(c1)

	c2 := a.Get()
	if !c2.Empty() {
		t.Fatal(`expected recycled chunk to come back empty`)
	}
	if c2.Next() != nil {
		t.Fatal(`expected recycled chunk to come back unlinked`)
	}
}

func TestAllocator_DefaultCapacity(t *testing.T) {
	a := NewAllocator[int](0)
	if a.Capacity() != DefaultCapacity {
		t.Fatalf(`expected default capacity %d, got %d`, DefaultCapacity, a.Capacity())
	}

	a = NewAllocator[int](-5)
	if a.Capacity() != DefaultCapacity {
		t.Fatalf(`expected default capacity %d, got %d`, DefaultCapacity, a.Capacity())
	}
}

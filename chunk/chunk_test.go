package chunk

import (
	"errors"
	"testing"
)

func TestChunk_PushPop_LIFO(t *testing.T) {
	c := newChunk[int](4)

	for i := 1; i <= 4; i++ {
		if err := c.Push(i); err != nil {
			t.Fatalf(`unexpected error pushing %d: %v`, i, err)
		}
	}

	if !c.Full() {
		t.Fatal(`expected chunk to be full`)
	}
	if err := c.Push(5); !errors.Is(err, ErrFull) {
		t.Fatalf(`expected ErrFull, got %v`, err)
	}

	for i := 4; i >= 1; i-- {
		x, ok := c.Pop()
		if !ok || x != i {
			t.Fatalf(`pop %d: got (%d, %v)`, i, x, ok)
		}
	}

	if !c.Empty() {
		t.Fatal(`expected chunk to be empty`)
	}
	if _, ok := c.Pop(); ok {
		t.Fatal(`expected pop on empty chunk to fail`)
	}
}

func TestChunk_PushRange(t *testing.T) {
	c := newChunk[int](3)

	tail := c.PushRange([]int{1, 2, 3, 4, 5})
	if c.Len() != 3 || !c.Full() {
		t.Fatalf(`expected chunk full with 3 items, got len=%d`, c.Len())
	}
	if len(tail) != 2 || tail[0] != 4 || tail[1] != 5 {
		t.Fatalf(`unexpected tail: %v`, tail)
	}

	// LIFO: the last of the pushed range pops first.
	x, ok := c.Pop()
	if !ok || x != 3 {
		t.Fatalf(`got (%d, %v)`, x, ok)
	}
}

func TestChunk_PushRange_PartialRoom(t *testing.T) {
	c := newChunk[int](4)
	if err := c.Push(1); err != nil {
		t.Fatal(err)
	}

	tail := c.PushRange([]int{2, 3, 4, 5})
	if c.Len() != 4 {
		t.Fatalf(`expected len 4, got %d`, c.Len())
	}
	if len(tail) != 1 || tail[0] != 5 {
		t.Fatalf(`unexpected tail: %v`, tail)
	}
}

func TestChunk_LinkChain(t *testing.T) {
	a := newChunk[int](2)
	b := newChunk[int](2)

	if a.Next() != nil {
		t.Fatal(`expected nil next by default`)
	}
	a.SetNext(b)
	if a.Next() != b {
		t.Fatal(`expected Next to return linked chunk`)
	}
}

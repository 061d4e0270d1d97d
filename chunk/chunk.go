package chunk

import "errors"

// DefaultCapacity is the capacity a Chunk is given when none is supplied to
// NewAllocator, matching the "default 64" called out in the specification.
const DefaultCapacity = 64

// ErrFull is returned by Chunk.Push when the chunk has no remaining room.
var ErrFull = errors.New(`chunk: full`)

// Chunk is a fixed-capacity, LIFO-ordered bounded sequence of task items.
// It is not safe for concurrent use: a Chunk is mutated only by the single
// worker that currently owns it. Once published to a stack it must not be
// touched again until it is popped or stolen back.
type Chunk[T any] struct {
	items []T
	// next chains Chunks into a singly-linked stack. Owned by whichever
	// stack currently holds this Chunk; zero otherwise.
	next *Chunk[T]
}

func newChunk[T any](capacity int) *Chunk[T] {
	return &Chunk[T]{items: make([]T, 0, capacity)}
}

// Push appends x as the new top of the chunk, returning ErrFull if the
// chunk has reached capacity.
func (c *Chunk[T]) Push(x T) error {
	if c.Full() {
		return ErrFull
	}
	c.items = append(c.items, x)
	return nil
}

// PushRange copies items from s into the chunk until either s is exhausted
// or the chunk fills, returning the unconsumed tail of s (empty if all of s
// was copied in). The caller is expected to allocate a fresh Chunk for any
// remaining tail.
func (c *Chunk[T]) PushRange(s []T) (tail []T) {
	room := c.Cap() - c.Len()
	if room > len(s) {
		room = len(s)
	}
	c.items = append(c.items, s[:room]...)
	return s[room:]
}

// Pop removes and returns the most recently pushed item. ok is false if the
// chunk is empty.
func (c *Chunk[T]) Pop() (x T, ok bool) {
	if c.Empty() {
		return x, false
	}
	n := len(c.items) - 1
	x = c.items[n]
	var zero T
	c.items[n] = zero // avoid pinning T behind the backing array
	c.items = c.items[:n]
	return x, true
}

// Len reports the number of items currently held.
func (c *Chunk[T]) Len() int { return len(c.items) }

// Cap reports the chunk's fixed capacity.
func (c *Chunk[T]) Cap() int { return cap(c.items) }

// Empty reports whether the chunk holds no items.
func (c *Chunk[T]) Empty() bool { return len(c.items) == 0 }

// Full reports whether the chunk has reached capacity.
func (c *Chunk[T]) Full() bool { return len(c.items) == cap(c.items) }

// Next returns the chunk this one is linked to, as the current node of a
// lifo.Stack chain. Zero if this chunk isn't currently linked into a stack.
//
// WARNING: exported only for use by package lifo; Chunk's own methods are
// the only safe way to mutate chunk contents.
func (c *Chunk[T]) Next() *Chunk[T] { return c.next }

// SetNext links c to next, as part of building or unlinking a lifo.Stack
// chain.
//
// WARNING: exported only for use by package lifo.
func (c *Chunk[T]) SetNext(next *Chunk[T]) { c.next = next }

// reset clears the chunk for reuse by the Allocator, dropping references so
// the garbage collector can reclaim popped values, and detaching it from
// whatever stack it was previously linked into.
func (c *Chunk[T]) reset() {
	clear(c.items)
	c.items = c.items[:0]
	c.next = nil
}

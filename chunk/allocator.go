package chunk

import "sync"

// Allocator is a fixed-size slab that constructs and recycles Chunks of a
// single capacity, so a worker churning through many short-lived Chunks
// does not generate corresponding garbage-collector traffic.
//
// Allocator is safe for concurrent use, but per §4.2's ABA discussion a
// Chunk must never be freed back to an Allocator while a concurrent pusher
// might still hold its old address as a lock-free CAS input. Callers
// satisfy this by only calling Free after a Chunk has been fully drained
// and is no longer reachable from any stack (see worklist.ChunkedAdaptor).
type Allocator[T any] struct {
	capacity int
	pool     sync.Pool
}

// NewAllocator constructs an Allocator whose Chunks each have the given
// capacity. A non-positive capacity defaults to DefaultCapacity.
func NewAllocator[T any](capacity int) *Allocator[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	a := &Allocator[T]{capacity: capacity}
	a.pool.New = func() any { return newChunk[T](a.capacity) }
	return a
}

// Capacity returns the fixed capacity of Chunks produced by this Allocator.
func (a *Allocator[T]) Capacity() int { return a.capacity }

// Get returns a ready-to-use, empty Chunk, either freshly constructed or
// recycled from a prior Free.
func (a *Allocator[T]) Get() *Chunk[T] {
	return a.pool.Get().(*Chunk[T])
}

// Free returns c to the slab for reuse. c must not be touched by the
// caller again afterwards, and must not still be reachable from any stack
// (see the ABA warning on Allocator).
func (a *Allocator[T]) Free(c *Chunk[T]) {
	c.reset()
	a.pool.Put(c)
}

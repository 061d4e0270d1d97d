package worklist

import (
	"github.com/joeycumines/graphwork/chunk"
	"github.com/joeycumines/graphwork/lifo"
)

// InitialQueue composes two worklists per §4.3: a single global Init stack,
// seeded by the driver before workers start (PushInitial), and a per-
// locality Stealing worklist fed by running workers (Push). Pop prefers
// Running, falling back to Init — naturally draining seed work as stealing
// spins up, without a separate "am I still in startup" flag.
type InitialQueue[T any] struct {
	init    lifo.Stack[T]
	running *Stealing[T]
}

// NewInitialQueue wraps running with a fresh global Init stack.
func NewInitialQueue[T any](running *Stealing[T]) *InitialQueue[T] {
	return &InitialQueue[T]{running: running}
}

// PushInitial seeds c onto the global Init queue, bypassing any worker's
// local chunk. Intended for use by the driver before workers start polling.
func (q *InitialQueue[T]) PushInitial(c *chunk.Chunk[T]) {
	q.init.Push(c)
}

// Push adds c to id's locality in the Running worklist.
func (q *InitialQueue[T]) Push(id WorkerID, c *chunk.Chunk[T]) {
	q.running.Push(id, c)
}

// Pop prefers Running, falling back to Init.
func (q *InitialQueue[T]) Pop(id WorkerID) *chunk.Chunk[T] {
	if c := q.running.Pop(id); c != nil {
		return c
	}
	return q.init.Pop()
}

// Empty reports whether both the Running and Init worklists are
// (best-effort) empty.
func (q *InitialQueue[T]) Empty() bool {
	return q.running.Empty() && q.init.Empty()
}

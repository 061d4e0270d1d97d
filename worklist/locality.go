package worklist

import (
	"github.com/joeycumines/graphwork/chunk"
	"github.com/joeycumines/graphwork/lifo"
)

// WorkerID is a stable, contiguous index assigned to each worker for
// locality addressing — the "effective id" of §3/§9.
type WorkerID int

// Localities is a per-locality array of lifo.Stack instances, one per
// scheduling locality (typically per-core). LevelLocalAlt of §4.3: push and
// pop both route to the caller's own locality; items never migrate on their
// own.
type Localities[T any] struct {
	stacks []lifo.Stack[T]
}

// NewLocalities constructs a Localities with n stacks. n must be positive.
func NewLocalities[T any](n int) *Localities[T] {
	if n <= 0 {
		panic(`worklist: localities: n must be positive`)
	}
	return &Localities[T]{stacks: make([]lifo.Stack[T], n)}
}

// N reports the number of localities.
func (l *Localities[T]) N() int { return len(l.stacks) }

// Push adds c to the stack local to id.
func (l *Localities[T]) Push(id WorkerID, c *chunk.Chunk[T]) {
	l.stacks[l.index(id)].Push(c)
}

// Pop removes a chunk from the stack local to id, or nil if empty.
func (l *Localities[T]) Pop(id WorkerID) *chunk.Chunk[T] {
	return l.stacks[l.index(id)].Pop()
}

// Steal attempts to take a chunk from the stack local to victim.
func (l *Localities[T]) Steal(victim WorkerID) *chunk.Chunk[T] {
	return l.stacks[l.index(victim)].Steal()
}

// Empty reports whether the stack local to id has no chunks resident
// (best-effort, see lifo.Stack.Empty).
func (l *Localities[T]) Empty(id WorkerID) bool {
	return l.stacks[l.index(id)].Empty()
}

func (l *Localities[T]) index(id WorkerID) int {
	return int(id) % len(l.stacks)
}

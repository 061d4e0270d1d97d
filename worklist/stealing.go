package worklist

import "github.com/joeycumines/graphwork/chunk"

// Stealing composes a Localities array into the LevelStealingAlt scheduler
// of §4.3: pop the caller's own locality first; on empty, round-robin over
// siblings starting at (id+1) mod N, attempting Steal on each until one
// succeeds or all have been tried. Victim order is deterministic, by
// design, to avoid convoy effects and keep stealing reproducible for
// testing.
type Stealing[T any] struct {
	localities *Localities[T]
}

// NewStealing wraps localities with round-robin stealing.
func NewStealing[T any](localities *Localities[T]) *Stealing[T] {
	return &Stealing[T]{localities: localities}
}

// Push adds c to the caller's own locality.
func (s *Stealing[T]) Push(id WorkerID, c *chunk.Chunk[T]) {
	s.localities.Push(id, c)
}

// Pop returns a chunk local to id if any is resident, otherwise attempts to
// steal one from each sibling locality in turn, returning nil once every
// sibling has been tried without success. Steal does not wait for a
// contended head lock, so a nil result does not prove every locality empty.
func (s *Stealing[T]) Pop(id WorkerID) *chunk.Chunk[T] {
	if c := s.localities.Pop(id); c != nil {
		return c
	}

	n := s.localities.N()
	for i := 1; i < n; i++ {
		victim := WorkerID((int(id) + i) % n)
		if c := s.localities.Steal(victim); c != nil {
			return c
		}
	}
	return nil
}

// Empty reports whether every locality is (best-effort) empty.
func (s *Stealing[T]) Empty() bool {
	for id := 0; id < s.localities.N(); id++ {
		if !s.localities.Empty(WorkerID(id)) {
			return false
		}
	}
	return true
}

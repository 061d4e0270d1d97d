package lifo

import (
	"runtime"
	"sync/atomic"

	"github.com/joeycumines/graphwork/chunk"
)

// Stack is a lock-free LIFO stack of *chunk.Chunk[T]. The zero value is a
// valid, empty Stack. A Chunk must be on at most one Stack at a time.
type Stack[T any] struct {
	head atomic.Pointer[headState[T]]
}

// headState is the combined "head pointer + lock bit" word, replaced as a
// whole on every transition so that a concurrent reader always observes a
// consistent pairing of the two.
type headState[T any] struct {
	top    *chunk.Chunk[T]
	locked bool
}

func (s *Stack[T]) load() *headState[T] {
	st := s.head.Load()
	if st == nil {
		st = &headState[T]{}
		if !s.head.CompareAndSwap(nil, st) {
			st = s.head.Load()
		}
	}
	return st
}

// Push adds c as the new top of the stack. Lock-free: retries a CAS loop
// until it wins, which it always eventually does because every racing
// transition (another push, or a lock/unlock) changes the snapshot it reads,
// it never spins against its own stale read indefinitely.
func (s *Stack[T]) Push(c *chunk.Chunk[T]) {
	for {
		old := s.load()
		if old.locked {
			runtime.Gosched()
			continue
		}
		c.SetNext(old.top)
		next := &headState[T]{top: c, locked: false}
		if s.head.CompareAndSwap(old, next) {
			return
		}
	}
}

// Pop removes and returns the current top of the stack. The fast path
// checks emptiness without locking (best-effort: it may miss a chunk
// published immediately after the check, which only delays the pop, never
// corrupts state). Otherwise it acquires the head lock, as per §4.2.
func (s *Stack[T]) Pop() *chunk.Chunk[T] {
	if s.load().top == nil {
		return nil
	}
	top := s.lock()
	if top == nil {
		s.unlockAndSet(nil)
		return nil
	}
	next := top.Next()
	top.SetNext(nil)
	s.unlockAndSet(next)
	return top
}

// Steal behaves like Pop, except it uses a non-blocking try-lock: on
// contention it returns nil immediately rather than waiting, guaranteeing
// the stealer's own forward progress and bounding stealing overhead.
func (s *Stack[T]) Steal() *chunk.Chunk[T] {
	top, ok := s.tryLock()
	if !ok {
		return nil
	}
	if top == nil {
		s.unlockAndSet(nil)
		return nil
	}
	next := top.Next()
	top.SetNext(nil)
	s.unlockAndSet(next)
	return top
}

// Empty is a best-effort, non-locking check — see Pop's fast path caveat.
func (s *Stack[T]) Empty() bool {
	return s.load().top == nil
}

// lock spins until it acquires the head lock, returning the chunk that was
// on top at the moment of acquisition.
func (s *Stack[T]) lock() *chunk.Chunk[T] {
	for {
		if top, ok := s.tryLock(); ok {
			return top
		}
		runtime.Gosched()
	}
}

// tryLock attempts to acquire the head lock without blocking, returning the
// top chunk observed at acquisition time, and whether the lock was won.
func (s *Stack[T]) tryLock() (*chunk.Chunk[T], bool) {
	old := s.load()
	if old.locked {
		return nil, false
	}
	next := &headState[T]{top: old.top, locked: true}
	if !s.head.CompareAndSwap(old, next) {
		return nil, false
	}
	return old.top, true
}

// unlockAndSet releases the head lock, installing newTop as the new head in
// the same transition. Must only be called by whichever goroutine currently
// holds the lock.
func (s *Stack[T]) unlockAndSet(newTop *chunk.Chunk[T]) {
	for {
		old := s.head.Load()
		next := &headState[T]{top: newTop, locked: false}
		if s.head.CompareAndSwap(old, next) {
			return
		}
		// only the lock holder may mutate while locked==true, so a failed
		// CAS here means a spurious read race against load()'s lazy init;
		// retry is always safe.
	}
}

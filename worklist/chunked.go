package worklist

import "github.com/joeycumines/graphwork/chunk"

// Backend is satisfied by any worklist a ChunkedAdaptor can publish full
// chunks to and request chunks back from — *Stealing and *InitialQueue
// both qualify.
type Backend[T any] interface {
	Push(id WorkerID, c *chunk.Chunk[T])
	Pop(id WorkerID) *chunk.Chunk[T]
}

// Seeder is satisfied by a Backend that additionally supports seeding work
// before workers start polling — *InitialQueue qualifies.
type Seeder[T any] interface {
	Backend[T]
	PushInitial(c *chunk.Chunk[T])
}

// ChunkedAdaptor is the user-facing worklist handle for a single worker, per
// §4.4: it holds a thread-local "current chunk", publishing it to the
// underlying Backend once full and pulling a fresh one back once drained.
//
// A ChunkedAdaptor owns a private chunk.Allocator so that a chunk it frees
// is only ever reissued to this same adaptor — the "thread-local
// quarantine" §4.2 requires to avoid a freed chunk's address being reused
// as a concurrent pusher's stale CAS input.
type ChunkedAdaptor[T any] struct {
	backend Backend[T]
	id      WorkerID
	alloc   *chunk.Allocator[T]
	current *chunk.Chunk[T]
}

// NewChunkedAdaptor constructs a ChunkedAdaptor for worker id, publishing
// full/empty chunks to backend. chunkCapacity <= 0 uses chunk.DefaultCapacity.
func NewChunkedAdaptor[T any](backend Backend[T], id WorkerID, chunkCapacity int) *ChunkedAdaptor[T] {
	return &ChunkedAdaptor[T]{
		backend: backend,
		id:      id,
		alloc:   chunk.NewAllocator[T](chunkCapacity),
	}
}

// Push adds x to the worker's current chunk, publishing the prior chunk to
// the backend first if it was already full. The first push into a newly
// allocated chunk always succeeds.
func (a *ChunkedAdaptor[T]) Push(x T) {
	if a.current == nil {
		a.current = a.alloc.Get()
	} else if a.current.Full() {
		a.backend.Push(a.id, a.current)
		a.current = a.alloc.Get()
	}
	if err := a.current.Push(x); err != nil {
		// unreachable: a.current was just confirmed to have room
		panic(err)
	}
}

// PushRange pushes every element of s into the worker's current chunk,
// publishing and replacing it once full. Unlike a loop of Push calls, it
// bulk-copies each batch straight into the chunk via chunk.Chunk.PushRange,
// so a large slice costs one append per chunk rather than one per element.
func (a *ChunkedAdaptor[T]) PushRange(s []T) {
	for len(s) > 0 {
		if a.current == nil {
			a.current = a.alloc.Get()
		} else if a.current.Full() {
			a.backend.Push(a.id, a.current)
			a.current = a.alloc.Get()
		}
		s = a.current.PushRange(s)
	}
}

// PushInitial seeds x directly via the backend's initial-queue path,
// bypassing the worker's local chunk entirely. Only valid when the
// adaptor's backend is a Seeder (i.e. wraps an InitialQueue).
func (a *ChunkedAdaptor[T]) PushInitial(x T) {
	seeder, ok := a.backend.(Seeder[T])
	if !ok {
		panic(`worklist: chunked adaptor: backend does not support PushInitial`)
	}
	c := a.alloc.Get()
	if err := c.Push(x); err != nil {
		panic(err)
	}
	seeder.PushInitial(c)
}

// PushRangeInitial seeds every element of s via the backend's initial-queue
// path, the bulk counterpart to PushInitial: s is batched into
// allocator-capacity-sized chunks using chunk.Chunk.PushRange's bulk copy,
// and each filled chunk is handed to the seeder whole, rather than pushing
// one item (and one chunk) at a time. Only valid when the adaptor's backend
// is a Seeder.
func (a *ChunkedAdaptor[T]) PushRangeInitial(s []T) {
	seeder, ok := a.backend.(Seeder[T])
	if !ok {
		panic(`worklist: chunked adaptor: backend does not support PushInitial`)
	}
	for len(s) > 0 {
		c := a.alloc.Get()
		s = c.PushRange(s)
		seeder.PushInitial(c)
	}
}

// Pop removes and returns the most recently pushed item available to this
// worker, per the chunk's LIFO order and falling back to the backend (which
// may steal from a sibling) once the current chunk is drained.
func (a *ChunkedAdaptor[T]) Pop() (x T, ok bool) {
	for {
		if a.current != nil {
			if x, ok = a.current.Pop(); ok {
				return x, true
			}
			a.alloc.Free(a.current)
			a.current = nil
		}

		next := a.backend.Pop(a.id)
		if next == nil {
			return x, false
		}
		a.current = next
	}
}

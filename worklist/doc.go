// Package worklist composes lifo.Stack instances into the scheduling
// structures described in §4.3 and §4.4: a per-locality array of stacks
// addressed by an explicit worker id (WorkerID), a stealing layer that
// falls back to round-robin victim selection, an initial/running queue
// split for seed work, and a ChunkedAdaptor that batches individual task
// items into chunk.Chunk-sized transfers.
//
// Per §9's design note on global state, no component here keeps a
// goroutine-local notion of "which worker am I" — every operation takes an
// explicit WorkerID, which the caller (the louvain engine's parallel-for
// driver) assigns and threads through. This is the spec's own suggested
// resolution ("inject a scheduler handle rather than use thread-local
// globals") rather than a runtime/thread-local trick.
package worklist

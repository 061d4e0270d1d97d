// Package chunk provides a fixed-capacity, LIFO-ordered bounded buffer of
// task items (Chunk), and a fixed-size slab allocator (Allocator) that
// recycles Chunks without going back to the garbage collector on every
// allocation.
//
// Chunks are the unit of transfer between a worklist.ChunkedAdaptor and the
// underlying lock-free stack: a worker fills a Chunk locally, then publishes
// the whole thing at once, amortizing synchronization over K items.
package chunk

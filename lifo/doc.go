// Package lifo implements a lock-free, CAS-based LIFO stack of chunk.Chunk
// values, per §4.2 of the specification: push is lock-free (Treiber-style
// CAS), pop and steal serialize on a single head lock, and steal differs
// from pop only in using a non-blocking try-lock so a thief never stalls a
// victim.
//
// The head pointer and its lock bit are modeled as one immutable snapshot
// (headState), swapped atomically as a whole via atomic.Pointer — the Go
// equivalent of the tag-bit-on-a-pointer-word trick described in the
// specification, without resorting to unsafe bit-packing. Any push racing a
// locked pop/steal sees the snapshot change (because the lock flag is part
// of it) and retries, which is what gives push the "fails while locked,
// forcing retry" behavior §4.2 requires.
package lifo

// Package louvain implements the community-detection engine of §4.6–§4.8:
// the vertex-following preprocessor, the per-phase iteration engine (best-
// target selection under cautious locking, atomic community migration,
// modularity computation and convergence test), and the multi-phase driver.
//
// Per-vertex work within a phase is dispatched across goroutines via the
// worklist package (chunk.Chunk-batched, work-stealing), not via a bare
// parallel range over vertex ids — this is "the combined system of
// worklist + parallel Louvain iteration" the specification names as its
// core.
package louvain

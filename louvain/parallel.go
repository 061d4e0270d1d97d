package louvain

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/joeycumines/graphwork/worklist"
)

// parallelFor dispatches body(workerID, v) for every v in [0, n), fanned out
// across workers goroutines via a worklist.InitialQueue backend, per
// spec.md §4.3's description of that composition: every vertex id is seeded
// onto the global Init queue before any worker goroutine starts (the
// "pushed by the driver before kick-off" role), and each worker's own
// ChunkedAdaptor.Pop naturally drains the per-locality Stealing worklist
// first, falling back to Init only once its own and its siblings' local
// work is exhausted. This is the "combined system of worklist + parallel
// Louvain iteration" the specification names as its core — the per-vertex
// loop body is never just a bare range over vertex ids.
//
// The first body error (if body returns one) cancels ctx and is returned;
// other in-flight workers observe ctx.Done() and stop promptly.
func parallelFor(ctx context.Context, n, workers, chunkCapacity int, body func(workerID, v int) error) error {
	if n == 0 {
		return nil
	}
	if workers > n {
		workers = n
	}

	localities := worklist.NewLocalities[int](workers)
	stealing := worklist.NewStealing[int](localities)
	initial := worklist.NewInitialQueue[int](stealing)

	adaptors := make([]*worklist.ChunkedAdaptor[int], workers)
	for i := range adaptors {
		adaptors[i] = worklist.NewChunkedAdaptor[int](initial, worklist.WorkerID(i), chunkCapacity)
	}

	// Group vertex ids round-robin per worker, then hand each worker's slice
	// to PushRangeInitial in one call: it batches into chunkCapacity-sized
	// chunks via chunk.Chunk.PushRange's bulk copy instead of publishing one
	// singleton chunk per vertex.
	seeds := make([][]int, workers)
	for v := 0; v < n; v++ {
		seeds[v%workers] = append(seeds[v%workers], v)
	}
	for i, s := range seeds {
		adaptors[i].PushRangeInitial(s)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		i := i
		g.Go(func() error {
			a := adaptors[i]
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}

				v, ok := a.Pop()
				if !ok {
					if initial.Empty() {
						return nil
					}
					runtime.Gosched()
					continue
				}

				if err := body(i, v); err != nil {
					return err
				}
			}
		})
	}
	return g.Wait()
}

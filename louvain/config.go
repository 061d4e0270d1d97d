package louvain

import (
	"runtime"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Config models optional configuration, for NewEngine and Run. The pattern
// mirrors microbatch.BatcherConfig: a nil Config is legal, zero fields fall
// back to defaults, and NewEngine panics on an invalid combination rather
// than surfacing it deep in a parallel worker.
type Config struct {
	// Workers is the number of worker goroutines (and, equivalently,
	// scheduling localities) used per iteration. Defaults to
	// runtime.GOMAXPROCS(0) if <= 0.
	Workers int

	// ChunkCapacity is the fixed capacity of each chunk.Chunk used to batch
	// vertex ids through the worklist. Defaults to chunk.DefaultCapacity
	// if <= 0.
	ChunkCapacity int

	// ConvergenceThreshold is c_threshold of §4.7/§6: an iteration with
	// modularity gain below this value ends the phase. Defaults to 0.01.
	ConvergenceThreshold float64

	// MaxIterations bounds the per-phase loop, realizing the
	// "implementation-defined maximum iteration count" fallback mentioned
	// in §5 ("Cancellation"), since the engine has no other way to force
	// termination if modularity oscillates exactly at the threshold.
	// Defaults to 100 if <= 0.
	MaxIterations int

	// MinGraphSize is min_graph_size of §4.8: the driver will not continue
	// to a further phase once the graph shrinks to this size or below.
	// Defaults to 100 if <= 0.
	MinGraphSize int

	// EnableVF runs the vertex-following preprocessor (§4.6) before the
	// first phase, matching the CLI's -enable_VF flag (§6).
	EnableVF bool

	// Logger receives structured progress output (§6: "progress lines per
	// iteration"). Defaults to a stumpy-backed logiface.Logger writing to
	// stderr if nil.
	Logger *logiface.Logger[*stumpy.Event]
}

func (c *Config) resolve() Config {
	out := Config{
		Workers:              runtime.GOMAXPROCS(0),
		ChunkCapacity:        0, // resolved by chunk.NewAllocator's own default
		ConvergenceThreshold: 0.01,
		MaxIterations:        100,
		MinGraphSize:         100,
	}
	if c != nil {
		out.EnableVF = c.EnableVF
		if c.Workers > 0 {
			out.Workers = c.Workers
		}
		if c.ChunkCapacity > 0 {
			out.ChunkCapacity = c.ChunkCapacity
		}
		if c.ConvergenceThreshold > 0 {
			out.ConvergenceThreshold = c.ConvergenceThreshold
		}
		if c.MaxIterations > 0 {
			out.MaxIterations = c.MaxIterations
		}
		if c.MinGraphSize > 0 {
			out.MinGraphSize = c.MinGraphSize
		}
		out.Logger = c.Logger
	}
	if out.Logger == nil {
		out.Logger = stumpy.L.New(stumpy.L.WithStumpy())
	}
	if out.Workers <= 0 {
		panic(`louvain: resolved worker count must be positive`)
	}
	return out
}

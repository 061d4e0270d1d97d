package louvain

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/joeycumines/graphwork/community"
	"github.com/joeycumines/graphwork/graph"
)

// Result is what a single Engine.Run phase produces: the final per-vertex
// community assignment and the modularity accounting described in §4.7's
// post-iteration section and §8's testable properties.
type Result struct {
	Clusters   []community.ID
	Q          float64
	Iterations int
	EXX        float64
	A2X        float64
}

// Engine runs one phase (§4.8: a single level of the dendrogram) of the
// parallel Louvain algorithm described in §4. A phase owns one
// community.Table sized to the vertex count and one per-vertex
// sync.Mutex used for the cautious locking protocol of §9.
type Engine struct {
	g      graph.View
	cfg    Config
	tbl    *community.Table
	locks  []sync.Mutex
	alpha  float64
	m2     uint64
	follow []community.ID
}

// NewEngine initializes a phase over g: every vertex starts as a singleton
// community equal to its own id (§4.7 step 1-2), and the global constants
// m2/alpha (§3: "2m", "1/2m") are computed from the resulting degree
// weights. Initialization is itself dispatched through parallelFor so the
// worklist machinery is exercised on every phase, not only the main
// iteration loop.
//
// follow is the optional §4.6 vertex-following map (nil if VF was not run):
// follow[v] is the vertex id v's singleton community is pinned to if v was
// collapsed, community.Isolated if v has no edges, or community.Unassigned
// otherwise. Only Unassigned vertices run the gain pass. A collapsed vertex never
// runs its own gain computation — its edges still count normally towards
// whichever neighbor's degree_wt/modularity terms they touch, but v itself
// is relabeled to its target's final community only once, after Run
// finishes (see Driver.Run), rather than migrating independently every
// iteration.
func NewEngine(ctx context.Context, g graph.View, cfg *Config, follow []community.ID) (*Engine, error) {
	n := g.NumVertices()
	if n == 0 {
		return nil, inputErrorf(`graph has no vertices`)
	}
	c := cfg.resolve()

	e := &Engine{
		g:      g,
		cfg:    c,
		tbl:    community.NewTable(n),
		locks:  make([]sync.Mutex, n),
		follow: follow,
	}

	var m2 atomic.Uint64
	err := parallelFor(ctx, n, c.Workers, c.ChunkCapacity, func(_, v int) error {
		node := g.Node(v)
		node.PrevComm = int64(v)
		node.CurrComm = int64(v)

		var degWt uint64
		g.Neighbors(v, func(ed graph.Edge) { degWt += uint64(ed.Weight) })
		node.DegreeWeight = degWt

		e.tbl.Init(community.ID(v), 1, degWt)
		m2.Add(degWt)
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.m2 = m2.Load()
	if e.m2 > 0 {
		e.alpha = 1 / float64(e.m2)
	}

	c.Logger.Info().
		Int(`vertices`, n).
		Int(`m2`, int(e.m2)).
		Log(`louvain phase initialized`)

	return e, nil
}

// Table returns the phase's community.Table, exposed so callers can check
// the conservation invariant (§8 testable property #6) or feed a driver's
// next phase.
func (e *Engine) Table() *community.Table { return e.tbl }

// Run drives the §4.7 iteration loop to convergence: each round performs a
// cautious, lock-protected gain/migrate pass over every vertex followed by
// a lock-free pass recomputing each vertex's internal cluster weight, then
// checks the modularity delta against cfg.ConvergenceThreshold. It returns
// after cfg.MaxIterations rounds regardless of convergence, satisfying the
// "implementation-defined maximum" fallback noted in §5.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	n := e.g.NumVertices()
	c := e.cfg

	var qPrev float64
	var iterations int

	for iter := 0; iter < c.MaxIterations; iter++ {
		iterations = iter + 1

		var anyChange atomic.Bool
		err := parallelFor(ctx, n, c.Workers, c.ChunkCapacity, func(_, v int) error {
			if e.follow != nil && e.follow[v] != community.Unassigned {
				return nil
			}
			if vertexStep(e.g, e.tbl, e.locks, v, e.alpha) {
				anyChange.Store(true)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}

		if err := e.recomputeInternalWeights(ctx); err != nil {
			return nil, err
		}

		eXX, a2X := e.modularityTerms()
		q := e.alpha*eXX - e.alpha*e.alpha*a2X

		c.Logger.Info().
			Int(`iter`, iterations).
			Float64(`e_xx`, eXX).
			Float64(`a2_x`, a2X).
			Float64(`q`, q).
			Log(`louvain iteration complete`)

		converged := !anyChange.Load() || (iter > 0 && q-qPrev < c.ConvergenceThreshold)
		qPrev = q
		if converged {
			break
		}
	}

	clusters := make([]community.ID, n)
	for v := range clusters {
		if e.g.Degree(v) == 0 {
			clusters[v] = community.Isolated
			continue
		}
		clusters[v] = community.ID(e.g.Node(v).CurrComm)
	}

	eXX, a2X := e.modularityTerms()
	return &Result{
		Clusters:   clusters,
		Q:          e.alpha*eXX - e.alpha*e.alpha*a2X,
		Iterations: iterations,
		EXX:        eXX,
		A2X:        a2X,
	}, nil
}

// recomputeInternalWeights is the lock-free pass following each cautious
// migration round: by the time it runs, every vertex's CurrComm from this
// round is already visible (parallelFor's errgroup.Wait establishes the
// happens-before), so no synchronization is needed to read a neighbor's
// community.
func (e *Engine) recomputeInternalWeights(ctx context.Context) error {
	n := e.g.NumVertices()
	c := e.cfg
	return parallelFor(ctx, n, c.Workers, c.ChunkCapacity, func(_, v int) error {
		node := e.g.Node(v)
		cv := node.CurrComm
		var w uint64
		e.g.Neighbors(v, func(ed graph.Edge) {
			if e.g.Node(ed.Dst).CurrComm == cv {
				w += uint64(ed.Weight)
			}
		})
		node.ClusterWeightInternal = w
		return nil
	})
}

// modularityTerms computes e_xx (Σ cluster_wt_internal) and a2_x
// (Σ degree_wt(c)²) per §4.7's post-iteration section. Both are
// accumulated sequentially: cheap relative to the parallel passes that
// produce their inputs, and avoids a second atomic-accumulator round trip.
func (e *Engine) modularityTerms() (eXX, a2X float64) {
	n := e.g.NumVertices()
	for v := 0; v < n; v++ {
		eXX += float64(e.g.Node(v).ClusterWeightInternal)
	}
	for c := 0; c < e.tbl.N(); c++ {
		dw := float64(e.tbl.Record(community.ID(c)).DegreeWeight())
		a2X += dw * dw
	}
	return eXX, a2X
}

package louvain

import (
	"context"

	"github.com/joeycumines/graphwork/community"
	"github.com/joeycumines/graphwork/graph"
)

// DriverResult is what Driver.Run returns: the final cluster assignment,
// the number of dendrogram levels actually computed, and the vertex count
// VertexFollowing collapsed before phase 1 (0 if EnableVF is false).
type DriverResult struct {
	Clusters       []community.ID
	NumCommunities int
	Levels         int
	Followed       int
	Phase1         *Result
}

// Driver runs the §4.8 structure as a single phase. The source this was
// distilled from stops unconditionally after building the phase-1
// dendrogram level — it never implements graph contraction (coarsening the
// phase-1 communities into a condensed graph.View and recursing) — and that
// is the documented behavior Driver reproduces (see SPEC_FULL.md's
// supplemented-features section). Run contains no phase loop: it runs one
// engine phase and returns. MinGraphSize is only used to log when the graph
// is at or below that size; no continuation condition is evaluated after
// the phase.
type Driver struct {
	cfg Config
}

// NewDriver builds a Driver from the given configuration.
func NewDriver(cfg *Config) *Driver {
	return &Driver{cfg: cfg.resolve()}
}

// Run executes vertex-following (if enabled), then a single Louvain phase,
// then renumbers the resulting community ids to a dense contiguous range.
func (d *Driver) Run(ctx context.Context, g graph.View) (*DriverResult, error) {
	n := g.NumVertices()
	if n == 0 {
		return nil, inputErrorf(`graph has no vertices`)
	}

	var follow []community.ID
	var followed int
	if d.cfg.EnableVF {
		vf, f, err := VertexFollowing(ctx, g, &d.cfg)
		if err != nil {
			return nil, err
		}
		follow, followed = vf, f
	}

	if n <= d.cfg.MinGraphSize {
		d.cfg.Logger.Info().
			Int(`vertices`, n).
			Int(`min_graph_size`, d.cfg.MinGraphSize).
			Log(`graph at or below min_graph_size; running a single phase`)
	}

	engine, err := NewEngine(ctx, g, &d.cfg, follow)
	if err != nil {
		return nil, err
	}
	result, err := engine.Run(ctx)
	if err != nil {
		return nil, err
	}

	// Relabel each vertex-following-collapsed vertex to its target's final
	// community, now that the target has finished migrating. Isolated
	// (degree-0) vertices are left as Isolated.
	for v, target := range follow {
		if target == community.Unassigned || target == community.Isolated {
			continue
		}
		result.Clusters[v] = result.Clusters[int(target)]
	}

	k := community.RenumberContiguous(result.Clusters)

	d.cfg.Logger.Info().
		Int(`levels`, 1).
		Int(`communities`, k).
		Int(`followed`, followed).
		Float64(`q`, result.Q).
		Log(`louvain driver complete`)

	return &DriverResult{
		Clusters:       result.Clusters,
		NumCommunities: k,
		Levels:         1,
		Followed:       followed,
		Phase1:         result,
	}, nil
}

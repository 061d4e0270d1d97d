package louvain

import (
	"context"
	"sync/atomic"

	"github.com/joeycumines/graphwork/community"
	"github.com/joeycumines/graphwork/graph"
)

// VertexFollowing runs the §4.6 preprocessor: a single parallel pass that
// collapses degree-0 vertices into Isolated and degree-1 vertices into
// their unique neighbor's community, when that neighbor has degree > 1 or
// a larger id (the tie-break that avoids two mutual degree-1 vertices
// following each other into a cycle: the lower-id side follows, the
// higher-id side stays put).
// It returns the resulting cluster-assignment array and the number of
// vertices collapsed ("followed").
//
// VertexFollowing initializes every vertex's Node.CurrComm to its own
// vertex id before running the pass (phase 1's "curr_comm(v) = v", per
// §4.7 step 1), so it is safe to call standalone, ahead of Engine.Run.
func VertexFollowing(ctx context.Context, g graph.View, cfg *Config) (clusters []community.ID, followed int, err error) {
	c := cfg.resolve()
	n := g.NumVertices()

	clusters = make([]community.ID, n)
	for v := range clusters {
		clusters[v] = community.Unassigned
		node := g.Node(v)
		node.PrevComm = int64(v)
		node.CurrComm = int64(v)
	}

	var followedCount atomic.Int64

	err = parallelFor(ctx, n, c.Workers, c.ChunkCapacity, func(_, v int) error {
		deg := g.Degree(v)
		switch {
		case deg == 0:
			clusters[v] = community.Isolated

		case deg == 1:
			var neighbor int
			g.Neighbors(v, func(e graph.Edge) { neighbor = e.Dst })
			if g.Degree(neighbor) > 1 || v < neighbor {
				clusters[v] = community.ID(g.Node(neighbor).CurrComm)
				followedCount.Add(1)
			}
		}
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	c.Logger.Info().
		Int(`vertices`, n).
		Int(`followed`, int(followedCount.Load())).
		Log(`vertex-following preprocessing complete`)

	return clusters, int(followedCount.Load()), nil
}

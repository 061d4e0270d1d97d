package louvain

import (
	"sync"

	"github.com/joeycumines/graphwork/community"
	"github.com/joeycumines/graphwork/graph"
)

// vertexStep is the §4.7 per-vertex gain computation and migration,
// performed under the cautious two-phase lock (cautious.go). It returns
// whether v actually changed community.
func vertexStep(g graph.View, tbl *community.Table, locks []sync.Mutex, v int, alpha float64) bool {
	x := community.ID(g.Node(v).CurrComm)

	deg := g.Degree(v)
	lockIDs := make([]int, 0, deg+1)
	lockIDs = append(lockIDs, v)
	g.Neighbors(v, func(e graph.Edge) { lockIDs = append(lockIDs, e.Dst) })
	lockIDs = dedupeSorted(lockIDs)

	acquireCautious(lockIDs, locks)
	defer releaseCautious(lockIDs, locks)

	// local_map/counter: dense per-vertex scratch mapping community id to an
	// accumulated edge-weight bucket, per §4.7 step 3. Slot 0 is always x, so
	// e_ix can be read even when v has no edge into its own community aside
	// from a self-loop.
	localIdx := map[community.ID]int{x: 0}
	counter := []uint64{0}
	var selfLoopWt uint64

	g.Neighbors(v, func(e graph.Edge) {
		if e.Dst == v {
			selfLoopWt += uint64(e.Weight)
		}
		c := community.ID(g.Node(e.Dst).CurrComm)
		idx, ok := localIdx[c]
		if !ok {
			idx = len(counter)
			localIdx[c] = idx
			counter = append(counter, 0)
		}
		counter[idx] += uint64(e.Weight)
	})

	degV := g.Node(v).DegreeWeight
	eIx := float64(counter[0] - selfLoopWt)
	aX := float64(tbl.Record(x).DegreeWeight() - degV)

	bestTarget := x
	bestGain := 2 * alpha * float64(selfLoopWt) // Δ(x), the baseline of staying put

	for c, idx := range localIdx {
		var aY float64
		if c == x {
			aY = aX
		} else {
			aY = float64(tbl.Record(c).DegreeWeight())
		}
		eIy := float64(counter[idx])
		gain := 2*alpha*(eIy-eIx) + 2*float64(degV)*(aX-aY)*alpha*alpha

		if gain > bestGain || (gain == bestGain && c < bestTarget) {
			bestGain = gain
			bestTarget = c
		}
	}

	// Anti-oscillation guard (§9): two mutually-singleton communities could
	// otherwise swap places every iteration forever. A singleton may only
	// move into a lower-id singleton; the lower-id singleton sticks, so the
	// pair merges into the lower id deterministically.
	if bestTarget != x && tbl.Record(x).Size() == 1 && tbl.Record(bestTarget).Size() == 1 && bestTarget > x {
		bestTarget = x
	}

	if bestTarget == x {
		return false
	}

	tbl.Migrate(x, bestTarget, degV)
	g.Node(v).CurrComm = int64(bestTarget)
	return true
}

package community

import (
	"math"
	"sync/atomic"
)

// ID identifies a community. Phase 1's table is sized to the vertex count,
// so a vertex's initial community id equals its own vertex id.
//
// §9 flags the source's use of a raw u64 compared against -1 as unsafe
// under implicit casts; ID is a distinct, signed type specifically so
// Isolated and Unassigned are ordinary typed comparisons.
type ID int64

const (
	// Isolated marks a vertex with no edges (§3, §4.6): it is never
	// assigned to a real community and never migrates.
	Isolated ID = -1

	// Unassigned is the INF_VAL sentinel of §3: "⌊u64_max/2⌋ − 1",
	// denoting a cluster slot that has not yet been given a value.
	Unassigned ID = ID(math.MaxInt64 - 1)
)

// Record is the per-community aggregate of §3: Size is the count of
// vertices currently assigned to this community, DegreeWeight the sum of
// their cached weighted degrees. Both fields are mutated only via Table's
// Init (atomic stores) and Migrate (atomic adds/subtracts).
type Record struct {
	size     atomic.Int64
	degreeWt atomic.Uint64
}

// Size returns the number of vertices currently assigned to this community.
func (r *Record) Size() int64 { return r.size.Load() }

// DegreeWeight returns the sum of the weighted degrees of vertices
// currently assigned to this community.
func (r *Record) DegreeWeight() uint64 { return r.degreeWt.Load() }

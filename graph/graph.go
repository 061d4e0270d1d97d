// Package graph models the read-only, symmetric, weighted adjacency the
// louvain engine consumes, per §4.5. A View is produced and owned by an
// external loader (explicitly out of scope per §1/§6) and is only ever
// read by the engine, aside from the per-vertex Node payload it carries
// which the engine mutates in place.
package graph

// Edge is a single out-edge: Dst is the neighbor vertex id, Weight its
// unsigned edge weight (§6: "edge weights are unsigned 32-bit").
type Edge struct {
	Dst    int
	Weight uint32
}

// Node is the mutable per-vertex payload described in §3: curr_comm is the
// live community assignment, degree_wt the cached weighted degree, and
// ClusterWeightInternal the per-iteration scratch value written only by the
// vertex's own worker.
type Node struct {
	PrevComm              int64
	CurrComm              int64
	DegreeWeight          uint64
	ClusterWeightInternal uint64
}

// View is the read-shared interface the engine consumes: iteration over
// vertices and their out-edges, plus mutable access to each vertex's Node.
// Implementations are assumed symmetric with no duplicate edges — a
// precondition the (out of scope) loader is responsible for; View
// implementations are not required to verify it.
type View interface {
	// NumVertices returns the number of vertices, numbered [0, NumVertices).
	NumVertices() int
	// Neighbors calls fn once per out-edge of v, in the order stored.
	Neighbors(v int, fn func(Edge))
	// Degree returns the number of out-edges of v.
	Degree(v int) int
	// Node returns a pointer to v's mutable payload.
	Node(v int) *Node
}

// CSR is a straightforward compressed-sparse-row View, suitable for tests
// and small graphs. Edges must already be symmetric and duplicate-free;
// CSR does not verify this (see View's doc comment).
type CSR struct {
	// offsets has length NumVertices()+1; offsets[v]..offsets[v+1] indexes
	// into dst/weight for v's out-edges.
	offsets []int
	dst     []int
	weight  []uint32
	nodes   []Node
}

// NewCSR builds a CSR from, per vertex, a slice of (dst, weight) out-edges.
func NewCSR(adjacency [][]Edge) *CSR {
	n := len(adjacency)
	g := &CSR{
		offsets: make([]int, n+1),
		nodes:   make([]Node, n),
	}
	for v, edges := range adjacency {
		g.offsets[v+1] = g.offsets[v] + len(edges)
	}
	g.dst = make([]int, g.offsets[n])
	g.weight = make([]uint32, g.offsets[n])
	for v, edges := range adjacency {
		base := g.offsets[v]
		for i, e := range edges {
			g.dst[base+i] = e.Dst
			g.weight[base+i] = e.Weight
		}
	}
	return g
}

func (g *CSR) NumVertices() int { return len(g.nodes) }

func (g *CSR) Degree(v int) int { return g.offsets[v+1] - g.offsets[v] }

func (g *CSR) Neighbors(v int, fn func(Edge)) {
	for i := g.offsets[v]; i < g.offsets[v+1]; i++ {
		fn(Edge{Dst: g.dst[i], Weight: g.weight[i]})
	}
}

func (g *CSR) Node(v int) *Node { return &g.nodes[v] }

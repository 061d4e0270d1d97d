package community

import "errors"

// ErrInvariantViolation is the §7 InvariantViolation: a negative community
// size or degree weight surfaced under an atomic subtract. It indicates a
// migration-logic bug and must never be masked — callers should let it
// propagate as a panic rather than recover from it, per §7.
var ErrInvariantViolation = errors.New(`community: invariant violation: negative size or degree weight`)

// ErrCapacityError is the §7 CapacityError: a community id outside
// [0, N()) was referenced against this Table. Unlike ErrInvariantViolation
// this does not indicate migration-logic corruption — it means a caller
// (or a future multi-phase driver handing a phase-2 id to a phase-1-sized
// table) supplied an id the Table was never allocated to hold.
var ErrCapacityError = errors.New(`community: capacity error: community id exceeds table size`)

// Table is the parallel array of per-community Records described in §3. In
// phase 1, vertex id == initial community id, so NewTable is sized to the
// vertex count.
type Table struct {
	records []Record
}

// NewTable allocates a Table with n community slots, each starting at
// zero size and zero weighted degree.
func NewTable(n int) *Table {
	return &Table{records: make([]Record, n)}
}

// N returns the number of community slots.
func (t *Table) N() int { return len(t.records) }

// record bounds-checks c and returns its slot, panicking with
// ErrCapacityError rather than letting a bad id surface as a bare
// out-of-range index panic.
func (t *Table) record(c ID) *Record {
	if c < 0 || int(c) >= len(t.records) {
		panic(ErrCapacityError)
	}
	return &t.records[c]
}

// Record returns the Record for community c.
func (t *Table) Record(c ID) *Record {
	return t.record(c)
}

// Init sets community c's initial size/degree weight — used once per phase,
// per §4.7 step 2 ("c_info[v].degree_wt = degree_wt(v); c_info[v].size = 1").
func (t *Table) Init(c ID, size int64, degreeWeight uint64) {
	r := t.record(c)
	r.size.Store(size)
	r.degreeWt.Store(degreeWeight)
}

// Migrate atomically moves one vertex of weighted degree degreeWeight from
// community from to community to, per §4.7 step 4: "atomically add
// (deg(v), 1) to c_info[t] and subtract from c_info[x]". The two sides are
// not a single transaction (§9's "cyclic update under concurrency" design
// note) — observers may transiently see the totals imbalanced by one
// vertex, which the engine tolerates because c_info is read only as an
// approximation during the parallel pass.
//
// Migrate panics with ErrInvariantViolation if the subtraction would drive
// either field negative, since that can only mean a vertex was subtracted
// from a community it wasn't actually a member of.
func (t *Table) Migrate(from, to ID, degreeWeight uint64) {
	t.sub(from, degreeWeight)
	t.add(to, degreeWeight)
}

func (t *Table) add(c ID, degreeWeight uint64) {
	r := t.record(c)
	r.size.Add(1)
	r.degreeWt.Add(degreeWeight)
}

func (t *Table) sub(c ID, degreeWeight uint64) {
	r := t.record(c)
	if newSize := r.size.Add(-1); newSize < 0 {
		panic(ErrInvariantViolation)
	}
	// Add(-degreeWeight) on a Uint64 wraps on underflow rather than going
	// negative; compare against the pre-subtraction value to detect it.
	before := r.degreeWt.Load()
	if degreeWeight > before {
		panic(ErrInvariantViolation)
	}
	r.degreeWt.Add(-degreeWeight)
}

// TotalDegreeWeight sums DegreeWeight across every community slot —
// Σ c.degree_wt, used to check the conservation invariant of §3/§8
// (testable property #6).
func (t *Table) TotalDegreeWeight() uint64 {
	var total uint64
	for i := range t.records {
		total += t.records[i].DegreeWeight()
	}
	return total
}

// TotalSize sums Size across every community slot (testable property #6).
// louvain.NewEngine initializes every vertex, isolated or not, as a size-1
// community, so for an engine's table this equals the vertex count.
func (t *Table) TotalSize() int64 {
	var total int64
	for i := range t.records {
		total += t.records[i].Size()
	}
	return total
}

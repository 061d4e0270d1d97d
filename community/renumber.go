package community

// RenumberContiguous compacts the community ids in assignments to the dense
// range [0, k), preserving relative order of first appearance, and
// returns k. Entries equal to Isolated are left untouched and excluded from
// k.
//
// This implements the §9 open question: "renumberClustersContiguously
// exists in the source as an empty body ... The spec requires it if
// multi-phase is implemented; otherwise it may be omitted." louvain.Driver
// calls this after phase 1 (see SPEC_FULL.md's supplemented-features
// section) so the hook exists and is exercised even though the driver
// itself remains single-phase.
func RenumberContiguous(assignments []ID) (k int) {
	remap := make(map[ID]ID, len(assignments))
	for i, c := range assignments {
		if c == Isolated {
			continue
		}
		newID, ok := remap[c]
		if !ok {
			newID = ID(k)
			remap[c] = newID
			k++
		}
		assignments[i] = newID
	}
	return k
}

package community

import "testing"

func TestRenumberContiguous(t *testing.T) {
	assignments := []ID{7, 7, Isolated, 3, 7, 3, 9}
	k := RenumberContiguous(assignments)

	if k != 3 {
		t.Fatalf(`expected 3 distinct communities, got %d`, k)
	}

	want := []ID{0, 0, Isolated, 1, 0, 1, 2}
	for i := range want {
		if assignments[i] != want[i] {
			t.Fatalf(`index %d: want %d got %d (%v)`, i, want[i], assignments[i], assignments)
		}
	}
}

func TestRenumberContiguous_AllIsolated(t *testing.T) {
	assignments := []ID{Isolated, Isolated}
	if k := RenumberContiguous(assignments); k != 0 {
		t.Fatalf(`expected 0 communities, got %d`, k)
	}
}

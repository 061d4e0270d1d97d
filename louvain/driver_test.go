package louvain

import (
	"context"
	"testing"

	"github.com/joeycumines/graphwork/community"
)

// TestDriver_PathGraphWithVF covers scenario S4: a two-vertex path with
// vertex-following enabled collapses one endpoint into the other's
// singleton community rather than running both through independent gain
// computation.
func TestDriver_PathGraphWithVF(t *testing.T) {
	g := sym(2, [][3]int{{0, 1, 1}})
	d := NewDriver(&Config{EnableVF: true})
	result, err := d.Run(context.Background(), g)
	if err != nil {
		t.Fatalf(`Run: %v`, err)
	}
	if result.Followed != 1 {
		t.Fatalf(`expected exactly one vertex collapsed by vertex-following, got %d`, result.Followed)
	}
	if result.Clusters[0] != result.Clusters[1] {
		t.Fatalf(`expected both endpoints in the same community, got %d and %d`, result.Clusters[0], result.Clusters[1])
	}
	if result.NumCommunities != 1 {
		t.Fatalf(`expected a single renumbered community, got %d`, result.NumCommunities)
	}
}

// TestDriver_RenumbersContiguously checks that DriverResult.Clusters uses a
// dense, zero-based id range after renumbering, skipping Isolated vertices.
func TestDriver_RenumbersContiguously(t *testing.T) {
	g := sym(5, [][3]int{
		{0, 1, 1}, {1, 2, 1}, {0, 2, 1},
	})
	// vertices 3, 4 have no edges and stay Isolated.
	d := NewDriver(nil)
	result, err := d.Run(context.Background(), g)
	if err != nil {
		t.Fatalf(`Run: %v`, err)
	}
	for _, v := range []int{3, 4} {
		if result.Clusters[v] != community.Isolated {
			t.Fatalf(`vertex %d: expected Isolated, got %d`, v, result.Clusters[v])
		}
	}
	for v := 0; v < 3; v++ {
		if result.Clusters[v] != 0 {
			t.Fatalf(`vertex %d: expected renumbered community 0, got %d`, v, result.Clusters[v])
		}
	}
	if result.NumCommunities != 1 {
		t.Fatalf(`expected 1 renumbered community, got %d`, result.NumCommunities)
	}
}

// TestDriver_EmptyGraphIsInputError covers the §7 InputError category for a
// structurally unusable graph.View.
func TestDriver_EmptyGraphIsInputError(t *testing.T) {
	g := sym(0, nil)
	d := NewDriver(nil)
	_, err := d.Run(context.Background(), g)
	if err == nil {
		t.Fatal(`expected an error for an empty graph`)
	}
}

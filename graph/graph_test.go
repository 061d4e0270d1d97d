package graph

import "testing"

func TestCSR_BasicAdjacency(t *testing.T) {
	// triangle: 0-1, 1-2, 0-2, unit weights, symmetric
	adj := [][]Edge{
		{{Dst: 1, Weight: 1}, {Dst: 2, Weight: 1}},
		{{Dst: 0, Weight: 1}, {Dst: 2, Weight: 1}},
		{{Dst: 0, Weight: 1}, {Dst: 1, Weight: 1}},
	}
	g := NewCSR(adj)

	if g.NumVertices() != 3 {
		t.Fatalf(`expected 3 vertices, got %d`, g.NumVertices())
	}
	for v := 0; v < 3; v++ {
		if g.Degree(v) != 2 {
			t.Fatalf(`expected degree 2 for vertex %d, got %d`, v, g.Degree(v))
		}
	}

	var got []Edge
	g.Neighbors(0, func(e Edge) { got = append(got, e) })
	if len(got) != 2 || got[0].Dst != 1 || got[1].Dst != 2 {
		t.Fatalf(`unexpected neighbors of 0: %v`, got)
	}

	node := g.Node(0)
	node.CurrComm = 5
	if g.Node(0).CurrComm != 5 {
		t.Fatal(`expected Node to return a mutable pointer`)
	}
}

package graph

import "testing"

func checkOrdering(t *testing.T, g *Graph, ord Ordering) {
	t.Helper()
	n := g.VertexCount()
	if len(ord.Order) != n || len(ord.Rank) != n {
		t.Fatalf("ordering size mismatch: order=%d rank=%d n=%d", len(ord.Order), len(ord.Rank), n)
	}
	for v := 0; v < n; v++ {
		if ord.Order[ord.Rank[v]] != NI(v) {
			t.Fatalf("order[rank[%d]] = %d, want %d", v, ord.Order[ord.Rank[v]], v)
		}
	}
	seen := make([]bool, n)
	for _, v := range ord.Order {
		if seen[v] {
			t.Fatalf("vertex %d emitted twice", v)
		}
		seen[v] = true
	}
}

func TestDegeneracyEmpty(t *testing.T) {
	g := New(0)
	ord := Degeneracy(g)
	if len(ord.Order) != 0 {
		t.Fatalf("expected empty ordering, got %v", ord.Order)
	}
}

func TestDegeneracyIsolatedVertices(t *testing.T) {
	g := New(4)
	ord := Degeneracy(g)
	checkOrdering(t, g, ord)
}

func TestDegeneracyTriangle(t *testing.T) {
	g := triangle()
	ord := Degeneracy(g)
	checkOrdering(t, g, ord)
	// every vertex has degree 2 in a triangle; degeneracy is 2.
}

func TestDegeneracyPath(t *testing.T) {
	g := New(3)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	ord := Degeneracy(g)
	checkOrdering(t, g, ord)
	// at least one endpoint (degree 1) must be emitted before the middle
	// vertex (degree 2); after that the residual degrees tie.
	if ord.Rank[1] < ord.Rank[0] && ord.Rank[1] < ord.Rank[2] {
		t.Fatalf("middle vertex emitted before both endpoints: rank=%v", ord.Rank)
	}
}

func TestDegeneracyStar(t *testing.T) {
	// vertex 0 connected to 1,2,3,4; leaves have degree 1, hub has degree 4.
	g := New(5)
	for i := NI(1); i <= 4; i++ {
		g.AddEdge(0, i)
	}
	ord := Degeneracy(g)
	checkOrdering(t, g, ord)
	// the hub's residual degree only drops to 1 after three leaves are gone;
	// it then ties with the last leaf, so either of the two may come last.
	if ord.Rank[0] < 3 {
		t.Fatalf("expected hub emitted after at least three leaves (rank >= 3), got rank %d", ord.Rank[0])
	}
}

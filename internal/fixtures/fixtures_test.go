package fixtures_test

import (
	"testing"

	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/internal/fixtures"
)

func TestGrid_NodeCountAndConnectivity(t *testing.T) {
	g := fixtures.Grid(3, 3, 52.0, 21.0)
	if g.Size() != 9 {
		t.Fatalf("Size() = %d, want 9", g.Size())
	}

	// corner (0,0) = id 1 connects right to (0,1)=2 and down to (1,0)=4 only.
	edges := g.GetEdges(1)
	if len(edges) != 2 {
		t.Fatalf("corner node has %d edges, want 2", len(edges))
	}

	// center (1,1) = id 5 connects to all four neighbors.
	center := g.GetEdges(5)
	if len(center) != 4 {
		t.Fatalf("center node has %d edges, want 4", len(center))
	}
}

func TestGrid_EdgesAreSymmetricAndPositive(t *testing.T) {
	g := fixtures.Grid(2, 2, 52.0, 21.0)
	fwd := g.GetEdge(1, 2)
	back := g.GetEdge(2, 1)
	if fwd != back {
		t.Fatalf("grid edges should be symmetric: %v != %v", fwd, back)
	}
	if fwd <= 0 {
		t.Fatalf("grid edge cost = %v, want > 0", fwd)
	}
}

func TestPath_IsLinearChain(t *testing.T) {
	g := fixtures.Path(5, 52.0, 21.0)
	if g.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", g.Size())
	}
	if len(g.GetEdges(1)) != 1 {
		t.Fatalf("path endpoint should have exactly one edge")
	}
	if len(g.GetEdges(3)) != 2 {
		t.Fatalf("path interior node should have exactly two edges")
	}
	if g.GetEdge(5, 6) != graph.InfCost {
		t.Fatalf("edge past the path end should be absent")
	}
}

func TestCycle_EveryNodeHasTwoNeighbors(t *testing.T) {
	g := fixtures.Cycle(6, 52.0, 21.0, 0.05)
	if g.Size() != 6 {
		t.Fatalf("Size() = %d, want 6", g.Size())
	}
	for id := int64(1); id <= 6; id++ {
		if len(g.GetEdges(id)) != 2 {
			t.Fatalf("cycle node %d has %d edges, want 2", id, len(g.GetEdges(id)))
		}
	}
}

func TestGrid_PanicsOnInvalidDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for rows=0")
		}
	}()
	fixtures.Grid(0, 3, 52.0, 21.0)
}

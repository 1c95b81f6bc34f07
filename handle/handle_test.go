package handle_test

import (
	"testing"

	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/handle"
)

func TestGraphHandle_NullToleranceAfterRelease(t *testing.T) {
	h := handle.NewGraph()
	h.SetNode(graph.Node{RoutingID: 1, OSMID: 1})
	h.Release()

	if h.Size() != 0 {
		t.Fatalf("Size() after release = %d, want 0", h.Size())
	}
	if !h.GetNode(1).IsSentinel() {
		t.Fatalf("GetNode after release should return the sentinel")
	}
	if h.SetNode(graph.Node{RoutingID: 2, OSMID: 2}) {
		t.Fatalf("SetNode after release should report no overwrite")
	}
	if h.GetEdge(1, 2) != graph.InfCost {
		t.Fatalf("GetEdge after release should return InfCost")
	}
}

func TestNilGraphHandle_IsTolerated(t *testing.T) {
	var h *handle.GraphHandle
	if h.Size() != 0 {
		t.Fatalf("Size() on nil handle = %d, want 0", h.Size())
	}
	if !h.GetNode(1).IsSentinel() {
		t.Fatalf("GetNode on nil handle should return the sentinel")
	}
	h.Release() // must not panic
}

func TestGraphHandle_CRUDAndRoute(t *testing.T) {
	h := handle.NewGraph()
	h.SetNode(graph.Node{RoutingID: 1, OSMID: 1, Lat: 0, Lon: 0})
	h.SetNode(graph.Node{RoutingID: 2, OSMID: 2, Lat: 0.01, Lon: 0})
	h.SetEdge(1, graph.Edge{To: 2, Cost: 1})

	result := h.FindRoute(1, 2, 10)
	if result.Kind != handle.ResultOk {
		t.Fatalf("FindRoute kind = %v, want ResultOk", result.Kind)
	}
	if len(result.Nodes) != 2 || result.Nodes[0] != 1 || result.Nodes[1] != 2 {
		t.Fatalf("unexpected route: %v", result.Nodes)
	}
}

func TestGraphHandle_FindRoute_InvalidReference(t *testing.T) {
	h := handle.NewGraph()
	result := h.FindRoute(1, 2, 10)
	if result.Kind != handle.ResultInvalidReference || result.InvalidID != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestIteratorHandle_NilAndReleasedAreExhausted(t *testing.T) {
	var it *handle.IteratorHandle
	if _, ok := it.Next(); ok {
		t.Fatalf("nil iterator should report exhausted")
	}
	it.Release() // must not panic

	h := handle.NewGraph()
	h.SetNode(graph.Node{RoutingID: 1, OSMID: 1})
	live := h.Nodes()
	live.Release()
	if _, ok := live.Next(); ok {
		t.Fatalf("released iterator should report exhausted")
	}
}

func TestIteratorHandle_VisitsEveryNode(t *testing.T) {
	h := handle.NewGraph()
	h.SetNode(graph.Node{RoutingID: 1, OSMID: 1})
	h.SetNode(graph.Node{RoutingID: 2, OSMID: 2})

	it := h.Nodes()
	defer it.Release()

	seen := map[int64]bool{}
	for {
		n, ok := it.Next()
		if !ok {
			break
		}
		seen[n.RoutingID] = true
	}
	if !seen[1] || !seen[2] || len(seen) != 2 {
		t.Fatalf("unexpected visited set: %v", seen)
	}
}

func TestKDTreeHandle_NullTolerance(t *testing.T) {
	var k *handle.KDTreeHandle
	if !k.Nearest(0, 0).IsSentinel() {
		t.Fatalf("nearest on nil k-d tree handle should return the sentinel")
	}
	k.Release() // must not panic
}

func TestKDTreeHandle_FindsNearest(t *testing.T) {
	h := handle.NewGraph()
	h.SetNode(graph.Node{RoutingID: 1, OSMID: 1, Lat: 0, Lon: 0})
	h.SetNode(graph.Node{RoutingID: 2, OSMID: 2, Lat: 10, Lon: 10})

	tree := h.BuildKDTree()
	defer tree.Release()

	n := tree.Nearest(0.001, 0.001)
	if n.RoutingID != 1 {
		t.Fatalf("Nearest() = node %d, want 1", n.RoutingID)
	}
}

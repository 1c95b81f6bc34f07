package astar_test

import (
	"testing"

	"github.com/osmroute/osmroute/astar"
	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/internal/fixtures"
	"github.com/osmroute/osmroute/internal/refpath"
)

// property 3c: A*'s returned route cost equals the shortest-path cost
// computed independently (here, a plain Dijkstra over the same graph).
func TestProperty_CostMatchesIndependentDijkstra_Grid(t *testing.T) {
	g := fixtures.Grid(5, 5, 52.0, 21.0)

	for _, to := range []int64{1, 7, 13, 25} {
		route, err := astar.FindRoute(g, 1, to, 1000)
		if err != nil {
			t.Fatalf("FindRoute(1,%d) error: %v", to, err)
		}

		want := refpath.ShortestCostTo(g, 1, to)
		got := float64(routeCost(g, route))
		if diff := got - want; diff > 1e-3 || diff < -1e-3 {
			t.Fatalf("FindRoute(1,%d) cost = %v, Dijkstra oracle = %v", to, got, want)
		}
	}
}

func TestProperty_CostMatchesIndependentDijkstra_Cycle(t *testing.T) {
	g := fixtures.Cycle(10, 52.0, 21.0, 0.05)

	route, err := astar.FindRoute(g, 1, 6, 1000)
	if err != nil {
		t.Fatalf("FindRoute error: %v", err)
	}

	want := refpath.ShortestCostTo(g, 1, 6)
	got := float64(routeCost(g, route))
	if diff := got - want; diff > 1e-3 || diff < -1e-3 {
		t.Fatalf("FindRoute(1,6) cost = %v, Dijkstra oracle = %v", got, want)
	}
}

// property: the route returned is a valid walk — consecutive nodes are
// always joined by an existing edge of finite cost.
func TestProperty_RouteIsAValidWalk(t *testing.T) {
	g := fixtures.Grid(4, 4, 52.0, 21.0)

	route, err := astar.FindRoute(g, 1, 16, 1000)
	if err != nil {
		t.Fatalf("FindRoute error: %v", err)
	}
	for i := 0; i+1 < len(route); i++ {
		if g.GetEdge(route[i], route[i+1]) == graph.InfCost {
			t.Fatalf("route step %d->%d has no edge", route[i], route[i+1])
		}
	}
}

// property: the no-turn-around variant never finds a route cheaper than
// the theoretical unrestricted optimum reported by the Dijkstra oracle.
func TestProperty_NoTurnAroundNeverBeatsOracle_Grid(t *testing.T) {
	g := fixtures.Grid(4, 4, 52.0, 21.0)

	route, err := astar.FindRouteWithoutTurnAround(g, 1, 16, 1000)
	if err != nil {
		t.Fatalf("FindRouteWithoutTurnAround error: %v", err)
	}

	oracle := refpath.ShortestCostTo(g, 1, 16)
	got := float64(routeCost(g, route))
	if got < oracle-1e-3 {
		t.Fatalf("no-turn-around cost %v beats the unrestricted oracle %v", got, oracle)
	}
}

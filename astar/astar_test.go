package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osmroute/osmroute/astar"
	"github.com/osmroute/osmroute/graph"
)

// diamond builds the five-node diamond used across the route-finding
// scenarios: the long way round (1-2-3-4 costing 600 total) and a
// strictly cheaper shortcut through node 5 (1-2-5-4 costing 500 total).
func diamond() *graph.Graph {
	g := graph.New()
	g.SetNode(graph.Node{RoutingID: 1, OSMID: 1, Lat: 0.00, Lon: 0.00})
	g.SetNode(graph.Node{RoutingID: 2, OSMID: 2, Lat: 0.01, Lon: 0.00})
	g.SetNode(graph.Node{RoutingID: 3, OSMID: 3, Lat: 0.02, Lon: 0.00})
	g.SetNode(graph.Node{RoutingID: 4, OSMID: 4, Lat: 0.03, Lon: 0.00})
	g.SetNode(graph.Node{RoutingID: 5, OSMID: 5, Lat: 0.02, Lon: 0.01})

	g.SetEdge(1, graph.Edge{To: 2, Cost: 200})
	g.SetEdge(2, graph.Edge{To: 1, Cost: 200})
	g.SetEdge(2, graph.Edge{To: 3, Cost: 200})
	g.SetEdge(3, graph.Edge{To: 2, Cost: 200})
	g.SetEdge(3, graph.Edge{To: 4, Cost: 200})
	g.SetEdge(4, graph.Edge{To: 3, Cost: 200})
	g.SetEdge(2, graph.Edge{To: 5, Cost: 150})
	g.SetEdge(5, graph.Edge{To: 2, Cost: 150})
	g.SetEdge(5, graph.Edge{To: 4, Cost: 150})
	g.SetEdge(4, graph.Edge{To: 5, Cost: 150})

	return g
}

func TestFindRoute_Diamond_TakesShortcut(t *testing.T) {
	g := diamond()

	route, err := astar.FindRoute(g, 1, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, astar.Route{1, 2, 5, 4}, route)
}

func TestFindRouteWithoutTurnAround_Diamond_AgreesWithPlain(t *testing.T) {
	g := diamond()

	route, err := astar.FindRouteWithoutTurnAround(g, 1, 4, 100)
	require.NoError(t, err)
	assert.Equal(t, astar.Route{1, 2, 5, 4}, route)
}

func TestFindRoute_SameSourceAndDestination(t *testing.T) {
	g := diamond()

	route, err := astar.FindRoute(g, 3, 3, 1)
	require.NoError(t, err)
	assert.Equal(t, astar.Route{3}, route)

	route, err = astar.FindRouteWithoutTurnAround(g, 3, 3, 0)
	require.NoError(t, err)
	assert.Equal(t, astar.Route{3}, route)
}

func TestFindRoute_StepLimitExceeded(t *testing.T) {
	g := diamond()

	_, err := astar.FindRoute(g, 1, 4, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, astar.ErrStepLimitExceeded)
}

func TestFindRoute_Unreachable(t *testing.T) {
	g := graph.New()
	g.SetNode(graph.Node{RoutingID: 1, OSMID: 1})
	g.SetNode(graph.Node{RoutingID: 2, OSMID: 2})

	_, err := astar.FindRoute(g, 1, 2, 1000)
	assert.ErrorIs(t, err, astar.ErrStepLimitExceeded)
}

func TestFindRoute_InvalidReference(t *testing.T) {
	g := graph.New()

	_, err := astar.FindRoute(g, 1, 2, 10)
	var invalidRef *astar.InvalidReferenceError
	require.True(t, errors.As(err, &invalidRef))
	assert.Equal(t, int64(1), invalidRef.ID)

	g.SetNode(graph.Node{RoutingID: 1, OSMID: 1})
	_, err = astar.FindRoute(g, 1, 2, 10)
	require.True(t, errors.As(err, &invalidRef))
	assert.Equal(t, int64(2), invalidRef.ID)
}

func TestFindRouteWithoutTurnAround_InvalidReference(t *testing.T) {
	g := graph.New()

	_, err := astar.FindRouteWithoutTurnAround(g, 1, 2, 10)
	var invalidRef *astar.InvalidReferenceError
	require.True(t, errors.As(err, &invalidRef))
}

// property: restricting the search state space to forbid immediate
// U-turns can never find a strictly cheaper route than the unrestricted
// search, since every route the no-turn-around search finds is also a
// valid route in the plain search space.
func TestProperty_NoTurnAroundNeverCheaperThanPlain(t *testing.T) {
	g := diamond()

	plain, err := astar.FindRoute(g, 1, 4, 100)
	require.NoError(t, err)
	noTurn, err := astar.FindRouteWithoutTurnAround(g, 1, 4, 100)
	require.NoError(t, err)

	assert.Equal(t, routeCost(g, plain), routeCost(g, noTurn))
}

func routeCost(g *graph.Graph, r astar.Route) float32 {
	var total float32
	for i := 0; i+1 < len(r); i++ {
		total += g.GetEdge(r[i], r[i+1])
	}
	return total
}

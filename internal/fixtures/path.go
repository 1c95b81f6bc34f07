package fixtures

import (
	"math"

	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
)

// Path builds a simple bidirectional path of n nodes strung east along
// baseLat, with routing ids 1..n in order. n must be >= 2.
func Path(n int, baseLat, baseLon float64) *graph.Graph {
	if n < 2 {
		panic("fixtures.Path: n must be >= 2")
	}

	g := graph.New()
	coord := func(i int) (float64, float64) { return baseLat, baseLon + float64(i)*stepDegrees }

	for i := 0; i < n; i++ {
		lat, lon := coord(i)
		g.SetNode(graph.Node{RoutingID: int64(i + 1), OSMID: int64(i + 1), Lat: float32(lat), Lon: float32(lon)})
	}

	for i := 0; i < n-1; i++ {
		lat1, lon1 := coord(i)
		lat2, lon2 := coord(i + 1)
		cost := float32(geo.Haversine(lat1, lon1, lat2, lon2))
		g.SetEdge(int64(i+1), graph.Edge{To: int64(i + 2), Cost: cost})
		g.SetEdge(int64(i+2), graph.Edge{To: int64(i + 1), Cost: cost})
	}

	return g
}

// Cycle builds a simple bidirectional cycle of n nodes arranged on a
// regular polygon of the given radius (degrees) around (baseLat, baseLon).
// n must be >= 3.
func Cycle(n int, baseLat, baseLon, radiusDegrees float64) *graph.Graph {
	if n < 3 {
		panic("fixtures.Cycle: n must be >= 3")
	}

	g := graph.New()
	coord := func(i int) (float64, float64) {
		theta := 2 * math.Pi * float64(i) / float64(n)
		return baseLat + radiusDegrees*math.Sin(theta), baseLon + radiusDegrees*math.Cos(theta)
	}

	for i := 0; i < n; i++ {
		lat, lon := coord(i)
		g.SetNode(graph.Node{RoutingID: int64(i + 1), OSMID: int64(i + 1), Lat: float32(lat), Lon: float32(lon)})
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		lat1, lon1 := coord(i)
		lat2, lon2 := coord(j)
		cost := float32(geo.Haversine(lat1, lon1, lat2, lon2))
		g.SetEdge(int64(i+1), graph.Edge{To: int64(j + 1), Cost: cost})
		g.SetEdge(int64(j+1), graph.Edge{To: int64(i + 1), Cost: cost})
	}

	return g
}

package fixtures

import (
	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
)

// stepDegrees is the lat/lon spacing between adjacent fixture nodes, large
// enough that haversine distances stay well clear of float32 noise.
const stepDegrees = 0.01

// Grid builds a rows×cols orthogonal grid with 4-neighborhood connectivity
// (right and bottom neighbors per cell, mirrored back for bidirectional
// travel) anchored at (baseLat, baseLon).
//
// Contract:
//   - rows >= 1 and cols >= 1; panics otherwise, since fixtures are only
//     ever called with literal test-time constants.
//   - Routing id for cell (r, c) is r*cols + c + 1, row-major, so tests can
//     address cells directly without a lookup table.
//   - Edge cost is the haversine distance between endpoints, satisfying
//     A*'s admissibility requirement by construction.
func Grid(rows, cols int, baseLat, baseLon float64) *graph.Graph {
	if rows < 1 || cols < 1 {
		panic("fixtures.Grid: rows and cols must be >= 1")
	}

	g := graph.New()
	id := func(r, c int) int64 { return int64(r*cols+c) + 1 }
	coord := func(r, c int) (float64, float64) {
		return baseLat + float64(r)*stepDegrees, baseLon + float64(c)*stepDegrees
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			lat, lon := coord(r, c)
			g.SetNode(graph.Node{
				RoutingID: id(r, c),
				OSMID:     id(r, c),
				Lat:       float32(lat),
				Lon:       float32(lon),
			})
		}
	}

	link := func(r1, c1, r2, c2 int) {
		lat1, lon1 := coord(r1, c1)
		lat2, lon2 := coord(r2, c2)
		cost := float32(geo.Haversine(lat1, lon1, lat2, lon2))
		g.SetEdge(id(r1, c1), graph.Edge{To: id(r2, c2), Cost: cost})
		g.SetEdge(id(r2, c2), graph.Edge{To: id(r1, c1), Cost: cost})
	}

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				link(r, c, r, c+1)
			}
			if r+1 < rows {
				link(r, c, r+1, c)
			}
		}
	}

	return g
}

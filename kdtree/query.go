// File: query.go
// Role: Best-first nearest-neighbour descent with bounding-box pruning.
package kdtree

import (
	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
)

// Nearest returns the canonical node nearest to (lat, lon) by great-circle
// distance, breaking ties by smallest routing id. Returns the sentinel
// Node on a nil or empty tree.
//
// The descent visits the near side of each split first, then only
// descends into the far side when the splitting plane could plausibly
// hide a closer point — judged by the cheap equirectangular distance to
// the plane against the haversine best-so-far, per spec: "Distance
// function for pruning is equirectangular ... the best-so-far distance
// uses haversine so the returned node matches [FindNearestNode's]
// definition of nearest."
func (t *Tree) Nearest(lat, lon float32) graph.Node {
	if t == nil || len(t.nodes) == 0 {
		return graph.Node{}
	}

	s := &searchState{
		nodes:    t.nodes,
		queryLat: lat,
		queryLon: lon,
	}
	s.bestDist = infDist
	s.descend(0, len(t.nodes), 0)

	return s.best
}

const infDist = 1e18

type searchState struct {
	nodes    []graph.Node
	queryLat float32
	queryLon float32

	best     graph.Node
	bestDist float64
	found    bool
}

func (s *searchState) consider(n graph.Node) {
	d := geo.Haversine(float64(s.queryLat), float64(s.queryLon), float64(n.Lat), float64(n.Lon))
	if !s.found || d < s.bestDist || (d == s.bestDist && n.RoutingID < s.best.RoutingID) {
		s.best = n
		s.bestDist = d
		s.found = true
	}
}

// planeDistance returns the equirectangular distance from the query point
// to the axis-aligned splitting plane of node n at the given axis.
func (s *searchState) planeDistance(n graph.Node, axis int) float64 {
	if axis == 0 {
		return geo.EquirectangularDistance(float64(s.queryLat), float64(s.queryLon), float64(n.Lat), float64(s.queryLon))
	}

	return geo.EquirectangularDistance(float64(s.queryLat), float64(s.queryLon), float64(s.queryLat), float64(n.Lon))
}

func (s *searchState) descend(lo, hi, depth int) {
	if hi <= lo {
		return
	}

	axis := depth % 2
	mid := lo + (hi-lo)/2
	node := s.nodes[mid]
	s.consider(node)

	if hi-lo == 1 {
		return
	}

	queryCoord := s.queryLat
	nodeCoord := node.Lat
	if axis == 1 {
		queryCoord = s.queryLon
		nodeCoord = node.Lon
	}

	nearLo, nearHi := lo, mid
	farLo, farHi := mid+1, hi
	if queryCoord > nodeCoord {
		nearLo, nearHi, farLo, farHi = mid+1, hi, lo, mid
	}

	s.descend(nearLo, nearHi, depth+1)

	if farHi > farLo && s.planeDistance(node, axis) < s.bestDist {
		s.descend(farLo, farHi, depth+1)
	}
}

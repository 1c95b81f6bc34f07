// File: geo.go
// Role: Haversine great-circle distance and the equirectangular
// approximation used for k-d tree pruning.
package geo

import "math"

// earthRadiusKm is the IUGG mean earth radius in kilometres.
const earthRadiusKm = 6371.0088

// Haversine returns the great-circle distance in kilometres between two
// (lat, lon) points given in degrees.
//
// This is the distance function spec's A* admissibility invariant is
// defined against (edge.Cost >= Haversine(from, to)); it is also what
// Graph.FindNearestNode and kdtree's best-so-far comparison use, so that
// both nearest-node paths agree (spec property 6).
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := lat1 * math.Pi / 180
	p2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1)*math.Cos(p2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// EquirectangularDistance returns a cheap, monotone-with-haversine-for-
// small-boxes approximation of distance in kilometres, used only by
// package kdtree to prune subtrees during nearest-neighbour search. It
// must never be used where an admissibility-critical or tie-breaking
// comparison is required — those always go through Haversine.
func EquirectangularDistance(lat1, lon1, lat2, lon2 float64) float64 {
	midLat := (lat1 + lat2) / 2 * math.Pi / 180
	x := (lon2 - lon1) * math.Pi / 180 * math.Cos(midLat)
	y := (lat2 - lat1) * math.Pi / 180

	return earthRadiusKm * math.Sqrt(x*x+y*y)
}

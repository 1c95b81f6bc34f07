package osm

// BBox is a geographic filter: [min_lon, min_lat, max_lon, max_lat]. The
// all-zero value disables filtering — every element passes.
type BBox struct {
	MinLon, MinLat, MaxLon, MaxLat float64
}

// IsZero reports whether the box is the disabled sentinel.
func (b BBox) IsZero() bool {
	return b.MinLon == 0 && b.MinLat == 0 && b.MaxLon == 0 && b.MaxLat == 0
}

// Contains reports whether (lat, lon) falls inside the box. Always true
// when the box is the disabled sentinel.
func (b BBox) Contains(lat, lon float64) bool {
	if b.IsZero() {
		return true
	}
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

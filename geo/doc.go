// Package geo provides the two distance functions the routing core needs:
// Haversine, the great-circle distance used everywhere admissibility or a
// faithful "nearest" ordering matters, and EquirectangularDistance, a cheap
// planar approximation used only by package kdtree for bounding-box
// pruning during nearest-neighbour descent.
package geo

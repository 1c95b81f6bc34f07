// File: build.go
// Role: Tree construction — median-split partitioning via quickselect.
package kdtree

import "github.com/osmroute/osmroute/graph"

// Tree is a static 2-d k-d tree over canonical graph nodes. The zero Tree
// is empty and safe to query (Nearest returns the sentinel node).
type Tree struct {
	nodes []graph.Node
}

// New builds a Tree from every canonical node (RoutingID == OSMID) in g.
// Phantom nodes created by turn-restriction lowering are never indexed —
// see the package doc for why that is the documented, intended behaviour.
//
// Complexity: O(n log n) expected (quickselect-based median partitioning
// at each of O(log n) levels).
func New(g *graph.Graph) *Tree {
	if g == nil {
		return &Tree{}
	}

	var nodes []graph.Node
	for n := range g.Nodes() {
		if n.IsCanonical() {
			nodes = append(nodes, n)
		}
	}

	t := &Tree{nodes: nodes}
	t.buildRange(0, len(nodes), 0)

	return t
}

// axisValue returns the coordinate of n along the given axis: 0 for
// latitude (even depth), 1 for longitude (odd depth).
func axisValue(n graph.Node, axis int) float32 {
	if axis == 0 {
		return n.Lat
	}

	return n.Lon
}

// buildRange recursively partitions nodes[lo:hi] around its median along
// the axis implied by depth, then recurses on both halves. The element
// landing at the median index after partitioning becomes that subtree's
// splitting node; leaves (hi-lo <= 1) need no further work.
func (t *Tree) buildRange(lo, hi, depth int) {
	if hi-lo <= 1 {
		return
	}

	axis := depth % 2
	mid := lo + (hi-lo)/2
	quickselect(t.nodes[lo:hi], mid-lo, axis)

	t.buildRange(lo, mid, depth+1)
	t.buildRange(mid+1, hi, depth+1)
}

// quickselect rearranges s so that s[k] holds the element that would be
// at index k were s sorted by axisValue(_, axis), with everything before
// it no greater and everything after it no smaller (the standard
// nth_element contract; Go's standard library has no built-in
// equivalent).
func quickselect(s []graph.Node, k, axis int) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi, axis)
		switch {
		case k < p:
			hi = p - 1
		case k > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition runs a Lomuto partition of s[lo:hi+1] around the pivot value
// at s[hi], returning the pivot's final index.
func partition(s []graph.Node, lo, hi, axis int) int {
	pivot := axisValue(s[hi], axis)
	i := lo
	for j := lo; j < hi; j++ {
		if axisValue(s[j], axis) < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}

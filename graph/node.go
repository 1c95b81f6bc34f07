// File: node.go
// Role: Node CRUD — GetNode, SetNode, DeleteNode, Nodes, FindNearestNode.
package graph

import (
	"iter"

	"github.com/osmroute/osmroute/geo"
)

// GetNode returns the stored Node for id, or the zero Node (id sentinel)
// if absent. Never fails.
//
// Complexity: O(1).
func (g *Graph) GetNode(id int64) Node {
	if g == nil {
		return Node{}
	}

	return g.nodes[id]
}

// SetNode inserts or replaces a node, returning wasOverwrite. A node with
// RoutingID == SentinelID is rejected outright (no-op, returns false).
//
// SetNode preserves all outgoing and incoming edges already recorded for
// this id — it only ever replaces the Node catalog entry. Overwriting a
// node's coordinates after edges referencing it were computed can break
// the A* admissibility invariant (edge.Cost >= haversine(from, to)); that
// is entirely the caller's responsibility, matching spec's documented
// caveat.
//
// Complexity: O(1).
func (g *Graph) SetNode(n Node) (wasOverwrite bool) {
	if n.RoutingID == SentinelID {
		return false
	}

	_, wasOverwrite = g.nodes[n.RoutingID]
	g.nodes[n.RoutingID] = n
	g.bumpGeneration()

	return wasOverwrite
}

// DeleteNode removes a node and its outgoing edges, returning didDelete.
//
// Incoming edges (other nodes' adjacency entries pointing at id) are
// intentionally left dangling for O(1) deletion, per spec: GetEdge on a
// dangling edge still returns its recorded cost, and A* relaxing it pushes
// and pops the missing id like any other (its heuristic taken from the
// zero Node's coordinates), then finds no outgoing edges to follow there.
// Reinserting the same id later without restoring the original geometry
// may silently violate admissibility for any edges still pointing at it —
// a documented caveat, not a bug.
//
// Complexity: O(1) for the node delete + O(out-degree) to drop outgoing
// edges.
func (g *Graph) DeleteNode(id int64) (didDelete bool) {
	if _, ok := g.nodes[id]; !ok {
		return false
	}

	delete(g.nodes, id)
	delete(g.edges, id)
	g.bumpGeneration()

	return true
}

// Nodes returns a range-over-func iterator yielding every stored Node
// exactly once. The graph must not be mutated while the iteration is in
// progress; doing so is a contract violation that routedebug builds
// detect via a generation-counter panic, and release builds leave
// undefined (per spec §5).
func (g *Graph) Nodes() iter.Seq[Node] {
	gen := g.generation

	return func(yield func(Node) bool) {
		for _, n := range g.nodes {
			if debugGenerationChecks {
				assertFreshGeneration(g, gen)
			}
			if !yield(n) {
				return
			}
		}
	}
}

// FindNearestNode performs a full linear scan over canonical nodes
// (RoutingID == OSMID) and returns the one minimizing great-circle
// distance to (lat, lon), breaking ties by smallest RoutingID. Returns
// the sentinel Node on an empty graph.
//
// This is the O(n) fallback nearest-node query; package kdtree provides
// the indexed alternative built once from a snapshot of this graph's
// canonical nodes.
//
// Complexity: O(n).
func (g *Graph) FindNearestNode(lat, lon float32) Node {
	var (
		best     Node
		bestDist = float64(InfCost)
		found    bool
	)

	for _, n := range g.nodes {
		if !n.IsCanonical() {
			continue
		}

		d := geo.Haversine(float64(n.Lat), float64(n.Lon), float64(lat), float64(lon))
		if !found || d < bestDist || (d == bestDist && n.RoutingID < best.RoutingID) {
			best = n
			bestDist = d
			found = true
		}
	}

	return best
}

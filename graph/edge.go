// File: edge.go
// Role: Edge CRUD — GetEdges, GetEdge, SetEdge, DeleteEdge.
package graph

// GetEdges returns a borrowed, ordered view of from's outgoing edges, in
// the order they were defined. The returned slice is invalidated by any
// subsequent mutation of from's adjacency (SetEdge/DeleteEdge on this
// origin, or DeleteNode(from)); reuse after such a mutation is undefined.
// The slice carries no generation counter, so routedebug builds do not
// detect stale use of it either.
//
// Returns nil if from has no recorded outgoing edges.
//
// Complexity: O(1).
func (g *Graph) GetEdges(from int64) []Edge {
	return g.edges[from]
}

// GetEdge returns the cost of the edge from->to, or InfCost if no such
// edge is recorded.
//
// Complexity: O(out-degree(from)).
func (g *Graph) GetEdge(from, to int64) float32 {
	for _, e := range g.edges[from] {
		if e.To == to {
			return e.Cost
		}
	}

	return InfCost
}

// SetEdge upserts an edge by (from, edge.To), returning wasOverwrite. A
// missing origin node is deliberately *not* auto-created — SetEdge still
// records the adjacency entry, so adjacency can be populated ahead of the
// node catalog without error. Package compile itself only inserts edges
// between nodes already present (it skips a segment whose endpoint is
// missing). This is spec's documented Open Question (a): kept
// intentionally, not an oversight.
//
// Complexity: O(out-degree(from)) to find an existing edge to overwrite in
// place and preserve its position; O(1) amortized to append a new one.
func (g *Graph) SetEdge(from int64, e Edge) (wasOverwrite bool) {
	existing := g.edges[from]
	for i := range existing {
		if existing[i].To == e.To {
			existing[i] = e
			g.bumpGeneration()

			return true
		}
	}

	g.edges[from] = append(existing, e)
	g.bumpGeneration()

	return false
}

// DeleteEdge removes the edge from->to, returning didDelete.
//
// Complexity: O(out-degree(from)).
func (g *Graph) DeleteEdge(from, to int64) (didDelete bool) {
	existing := g.edges[from]
	for i := range existing {
		if existing[i].To == to {
			g.edges[from] = append(existing[:i], existing[i+1:]...)
			g.bumpGeneration()

			return true
		}
	}

	return false
}

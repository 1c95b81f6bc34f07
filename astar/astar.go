// File: astar.go
// Role: plain A* — search state is the current routing id.
package astar

import (
	"container/heap"

	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
)

// FindRoute runs plain A* from "from" to "to", stopping with
// ErrStepLimitExceeded once more than stepLimit nodes have been popped.
//
// If from == to, returns a one-element Route containing from without
// searching (spec's empty-route semantics).
//
// Complexity: O((V + E) log V) in the worst case, same shape as the
// teacher's lazy-decrease-key Dijkstra, but guided by the admissible
// haversine heuristic so far fewer nodes are typically expanded.
func FindRoute(g *graph.Graph, from, to int64, stepLimit int) (Route, error) {
	if g.GetNode(from).IsSentinel() {
		return nil, &InvalidReferenceError{ID: from}
	}
	if g.GetNode(to).IsSentinel() {
		return nil, &InvalidReferenceError{ID: to}
	}
	if from == to {
		return Route{from}, nil
	}

	dest := g.GetNode(to)
	h := func(id int64) float32 {
		n := g.GetNode(id)
		return float32(geo.Haversine(float64(n.Lat), float64(n.Lon), float64(dest.Lat), float64(dest.Lon)))
	}

	gScore := map[int64]float32{from: 0}
	settled := make(map[int64]bool)
	pred := make(map[int64]int64)

	open := &plainHeap{}
	heap.Init(open)

	var seq int
	heap.Push(open, &plainItem{id: from, g: 0, f: h(from), seq: seq})
	seq++

	steps := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(*plainItem)
		steps++
		if steps > stepLimit {
			return nil, ErrStepLimitExceeded
		}

		if best, ok := gScore[cur.id]; ok && cur.g > best {
			continue // stale heap entry, a better g was already found
		}
		if settled[cur.id] {
			continue
		}

		if cur.id == to {
			return reconstructPlain(pred, from, to), nil
		}
		settled[cur.id] = true

		for _, e := range g.GetEdges(cur.id) {
			tentative := cur.g + e.Cost
			if best, ok := gScore[e.To]; ok && compareF32(tentative, best) >= 0 {
				continue
			}
			gScore[e.To] = tentative
			pred[e.To] = cur.id
			heap.Push(open, &plainItem{id: e.To, g: tentative, f: tentative + h(e.To), seq: seq})
			seq++
		}
	}

	return nil, ErrStepLimitExceeded
}

func reconstructPlain(pred map[int64]int64, from, to int64) Route {
	route := Route{to}
	cur := to
	for cur != from {
		cur = pred[cur]
		route = append(route, cur)
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// plainItem is one open-set entry keyed by routing id.
type plainItem struct {
	id  int64
	g   float32
	f   float32
	seq int
}

// plainHeap orders by f ascending, then by g descending (prefer deeper
// exploration on a tie, per spec), then by insertion order.
type plainHeap []*plainItem

func (h plainHeap) Len() int { return len(h) }

func (h plainHeap) Less(i, j int) bool {
	if c := compareF32(h[i].f, h[j].f); c != 0 {
		return c < 0
	}
	if c := compareF32(h[i].g, h[j].g); c != 0 {
		return c > 0
	}

	return h[i].seq < h[j].seq
}

func (h plainHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *plainHeap) Push(x any) { *h = append(*h, x.(*plainItem)) }

func (h *plainHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

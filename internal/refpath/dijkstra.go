package refpath

import (
	"container/heap"
	"math"

	"github.com/osmroute/osmroute/graph"
)

// ShortestCost returns the minimum-cost distance from source to every
// reachable node, computed independently of package astar. Unreachable
// nodes are absent from the result.
func ShortestCost(g *graph.Graph, source int64) map[int64]float64 {
	dist := map[int64]float64{source: 0}
	settled := map[int64]bool{}

	h := &minHeap{{id: source, dist: 0}}
	heap.Init(h)

	for h.Len() > 0 {
		cur := heap.Pop(h).(*item)
		if settled[cur.id] {
			continue
		}
		if best, ok := dist[cur.id]; ok && cur.dist > best {
			continue
		}
		settled[cur.id] = true

		for _, e := range g.GetEdges(cur.id) {
			next := cur.dist + float64(e.Cost)
			if best, ok := dist[e.To]; !ok || next < best {
				dist[e.To] = next
				heap.Push(h, &item{id: e.To, dist: next})
			}
		}
	}

	return dist
}

// ShortestCostTo is a convenience wrapper returning the cost to one
// destination, or +Inf if it is unreachable from source.
func ShortestCostTo(g *graph.Graph, source, dest int64) float64 {
	dist := ShortestCost(g, source)
	if d, ok := dist[dest]; ok {
		return d
	}
	return math.Inf(1)
}

type item struct {
	id   int64
	dist float64
}

type minHeap []*item

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool   { return h[i].dist < h[j].dist }
func (h minHeap) Swap(i, j int)        { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)          { *h = append(*h, x.(*item)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// File: noturn.go
// Role: A* without immediate turn-around — search state is the pair
// (previous, current). This is the minimum extra state needed to make
// mandatory turn restrictions (lowered to phantom-node detours by package
// compile) binding: plain A* could otherwise escape a detour by stepping
// straight back through the phantom it just arrived from.
package astar

import (
	"container/heap"

	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
)

// pairState is a search-space vertex: the node arrived from (prev) and
// the node currently at (cur). The start state uses prev == cur == from,
// so the first move out of the start is always permitted (the forbidden
// condition below requires prev != cur).
type pairState struct {
	prev int64
	cur  int64
}

// forbidden reports whether moving from s via an edge to v is an
// immediate U-turn: returning to the node we just arrived from, having
// actually moved (prev != cur — so the very first step, where prev ==
// cur == from, is never forbidden).
func (s pairState) forbidden(v int64) bool {
	return v == s.prev && s.prev != s.cur
}

// FindRouteWithoutTurnAround runs A* over the (previous, current) pair
// state space, forbidding any transition that would immediately reverse
// the last move. Otherwise identical to FindRoute: same admissible
// heuristic, same step-limit accounting, same empty-route semantics when
// from == to.
func FindRouteWithoutTurnAround(g *graph.Graph, from, to int64, stepLimit int) (Route, error) {
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
	h := func(cur int64) float32 {
		n := g.GetNode(cur)
		return float32(geo.Haversine(float64(n.Lat), float64(n.Lon), float64(dest.Lat), float64(dest.Lon)))
	}

	start := pairState{prev: from, cur: from}

	gScore := map[pairState]float32{start: 0}
	settled := make(map[pairState]bool)
	pred := make(map[pairState]pairState)

	open := &pairHeap{}
	heap.Init(open)

	var seq int
	heap.Push(open, &pairItem{state: start, g: 0, f: h(from), seq: seq})
	seq++

	steps := 0
	for open.Len() > 0 {
		cur := heap.Pop(open).(*pairItem)
		steps++
		if steps > stepLimit {
			return nil, ErrStepLimitExceeded
		}

		if best, ok := gScore[cur.state]; ok && cur.g > best {
			continue
		}
		if settled[cur.state] {
			continue
		}

		if cur.state.cur == to {
			return reconstructPair(pred, start, cur.state), nil
		}
		settled[cur.state] = true

		for _, e := range g.GetEdges(cur.state.cur) {
			if cur.state.forbidden(e.To) {
				continue
			}

			next := pairState{prev: cur.state.cur, cur: e.To}
			tentative := cur.g + e.Cost
			if best, ok := gScore[next]; ok && compareF32(tentative, best) >= 0 {
				continue
			}
			gScore[next] = tentative
			pred[next] = cur.state
			heap.Push(open, &pairItem{state: next, g: tentative, f: tentative + h(e.To), seq: seq})
			seq++
		}
	}

	return nil, ErrStepLimitExceeded
}

func reconstructPair(pred map[pairState]pairState, start, goal pairState) Route {
	route := Route{goal.cur}
	cur := goal
	for cur != start {
		cur = pred[cur]
		route = append(route, cur.cur)
	}

	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

type pairItem struct {
	state pairState
	g     float32
	f     float32
	seq   int
}

type pairHeap []*pairItem

func (h pairHeap) Len() int { return len(h) }

func (h pairHeap) Less(i, j int) bool {
	if c := compareF32(h[i].f, h[j].f); c != 0 {
		return c < 0
	}
	if c := compareF32(h[i].g, h[j].g); c != 0 {
		return c > 0
	}

	return h[i].seq < h[j].seq
}

func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *pairHeap) Push(x any) { *h = append(*h, x.(*pairItem)) }

func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]

	return item
}

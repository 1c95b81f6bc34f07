package compile

import "math"

// phantomIDs hands out fresh routing ids for cloned via-nodes, drawn from
// a counter disjoint from every plausible OSM id. OSM ids are positive;
// phantoms count down from math.MinInt64/2 so the two ranges
// can never collide regardless of how large OSM ids get.
type phantomIDs struct {
	next int64
}

func newPhantomIDs() *phantomIDs {
	return &phantomIDs{next: math.MinInt64 / 2}
}

func (p *phantomIDs) take() int64 {
	id := p.next
	p.next--
	return id
}

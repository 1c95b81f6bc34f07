package handle

import (
	"iter"

	"github.com/osmroute/osmroute/graph"
)

// IteratorHandle turns a borrowing iter.Seq[graph.Node] into a pull-based
// cursor, the shape a foreign-ABI binding needs (repeated Next() calls
// rather than a callback). It borrows from the graph exactly as the
// underlying iter.Seq does: any mutation of the graph while an
// IteratorHandle is open is a contract violation, per package graph's
// generation-counter debug check.
type IteratorHandle struct {
	next func() (graph.Node, bool)
	stop func()
}

// Nodes opens an IteratorHandle over h's nodes. A released or nil handle
// yields an iterator that immediately reports exhausted.
func (h *GraphHandle) Nodes() *IteratorHandle {
	if !h.valid() {
		return &IteratorHandle{}
	}
	next, stop := iter.Pull(h.g.Nodes())
	return &IteratorHandle{next: next, stop: stop}
}

// Next returns the next node and true, or the sentinel node and false
// once exhausted (or for a released/nil iterator).
func (it *IteratorHandle) Next() (graph.Node, bool) {
	if it == nil || it.next == nil {
		return graph.Node{}, false
	}
	return it.next()
}

// Release stops the underlying pull iterator. Safe to call more than
// once, and safe on a nil *IteratorHandle.
func (it *IteratorHandle) Release() {
	if it == nil || it.stop == nil {
		return
	}
	it.stop()
	it.next = nil
	it.stop = nil
}

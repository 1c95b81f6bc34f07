package handle

import (
	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/kdtree"
)

// KDTreeHandle owns a static k-d tree snapshot built from a graph at a
// point in time. Rebuild (via GraphHandle.BuildKDTree) after any graph
// mutation; there is no incremental update.
type KDTreeHandle struct {
	t *kdtree.Tree
}

// BuildKDTree snapshots h's canonical nodes into a new k-d tree handle. A
// released or nil GraphHandle yields a released KDTreeHandle.
func (h *GraphHandle) BuildKDTree() *KDTreeHandle {
	if !h.valid() {
		return &KDTreeHandle{}
	}
	return &KDTreeHandle{t: kdtree.New(h.g)}
}

// Release drops the handle's reference to the tree. Safe on a nil or
// already-released handle.
func (k *KDTreeHandle) Release() {
	if k == nil {
		return
	}
	k.t = nil
}

// Nearest returns the sentinel node for a released or nil handle.
func (k *KDTreeHandle) Nearest(lat, lon float32) graph.Node {
	if k == nil || k.t == nil {
		return graph.Node{}
	}
	return k.t.Nearest(lat, lon)
}

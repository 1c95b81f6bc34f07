package handle

import (
	"context"
	"io"

	"github.com/osmroute/osmroute/compile"
	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/osm"
	"github.com/osmroute/osmroute/profile"
)

// GraphHandle owns a graph.Graph. The zero value and a nil *GraphHandle
// both behave as a released handle: every method becomes a safe no-op /
// sentinel-returning call rather than a crash.
type GraphHandle struct {
	g *graph.Graph
}

// NewGraph allocates an empty graph behind a handle.
func NewGraph() *GraphHandle {
	return &GraphHandle{g: graph.New()}
}

func (h *GraphHandle) valid() bool { return h != nil && h.g != nil }

// Release drops the handle's reference to the underlying graph. Calling
// it on an already-released or nil handle is a no-op.
func (h *GraphHandle) Release() {
	if h == nil {
		return
	}
	h.g = nil
}

// Size returns 0 for a released or nil handle.
func (h *GraphHandle) Size() int {
	if !h.valid() {
		return 0
	}
	return h.g.Size()
}

// GetNode returns the sentinel node for a released or nil handle.
func (h *GraphHandle) GetNode(id int64) graph.Node {
	if !h.valid() {
		return graph.Node{}
	}
	return h.g.GetNode(id)
}

// SetNode is a no-op (reporting no overwrite) for a released or nil handle.
func (h *GraphHandle) SetNode(n graph.Node) (wasOverwrite bool) {
	if !h.valid() {
		return false
	}
	return h.g.SetNode(n)
}

// DeleteNode is a no-op for a released or nil handle.
func (h *GraphHandle) DeleteNode(id int64) (didDelete bool) {
	if !h.valid() {
		return false
	}
	return h.g.DeleteNode(id)
}

// GetEdge returns graph.InfCost for a released or nil handle.
func (h *GraphHandle) GetEdge(from, to int64) float32 {
	if !h.valid() {
		return graph.InfCost
	}
	return h.g.GetEdge(from, to)
}

// SetEdge is a no-op for a released or nil handle.
func (h *GraphHandle) SetEdge(from int64, e graph.Edge) (wasOverwrite bool) {
	if !h.valid() {
		return false
	}
	return h.g.SetEdge(from, e)
}

// DeleteEdge is a no-op for a released or nil handle.
func (h *GraphHandle) DeleteEdge(from, to int64) (didDelete bool) {
	if !h.valid() {
		return false
	}
	return h.g.DeleteEdge(from, to)
}

// FindNearestNode returns the sentinel node for a released or nil handle.
func (h *GraphHandle) FindNearestNode(lat, lon float32) graph.Node {
	if !h.valid() {
		return graph.Node{}
	}
	return h.g.FindNearestNode(lat, lon)
}

// Ingest compiles an OSM stream into this handle's graph under prof.
func (h *GraphHandle) Ingest(ctx context.Context, r io.Reader, prof *profile.Profile, format osm.Format, bbox osm.BBox) error {
	if !h.valid() {
		return osm.ErrLoadingFailed
	}
	return compile.Compile(ctx, r, prof, format, bbox, h.g)
}

package compile

import (
	"github.com/osmroute/osmroute/geo"
	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/logging"
	"github.com/osmroute/osmroute/profile"
)

// compiledWay is the bookkeeping kept per accessible way so that phase 3
// can find "the edge of this way ending at node N" when lowering a
// restriction. NodeRefs is in OSM's original order (never reversed),
// since restriction lowering reasons about the way's topology, not its
// travel direction.
type compiledWay struct {
	ID       int64
	NodeRefs []int64
	Forward  bool // NodeRefs[i] -> NodeRefs[i+1] is traversable
	Backward bool // NodeRefs[i+1] -> NodeRefs[i] is traversable
}

// neighborAt returns the node adjacent to nodeID along this way — the
// node before it if nodeID isn't first, else the node after it. Returns
// (0, false) if nodeID isn't on this way or the way has no other end.
func (w *compiledWay) neighborAt(nodeID int64) (int64, bool) {
	for i, id := range w.NodeRefs {
		if id != nodeID {
			continue
		}
		if i > 0 {
			return w.NodeRefs[i-1], true
		}
		if i+1 < len(w.NodeRefs) {
			return w.NodeRefs[i+1], true
		}
		return 0, false
	}
	return 0, false
}

// footOnewayRelevantHighways are the way kinds where pedestrian traffic is
// itself directional in practice (a one-way footbridge, staircase, or
// platform edge), so a generic oneway tag still applies to the foot
// profile instead of being ignored as it is on vehicle-oriented ways.
var footOnewayRelevantHighways = map[string]bool{
	"footway":  true,
	"path":     true,
	"steps":    true,
	"platform": true,
}

// directionFromTag decodes a oneway-style tag value. ok is false when the
// value is absent or unrecognised, meaning the caller's default applies.
// "-1" resolves the same as "yes": forward-only travel, with the sense of
// "forward" redefined by reversing the node order used for edge insertion
// (see compileWay; the stored NodeRefs keep OSM's order).
func directionFromTag(value string) (forward, backward, ok bool) {
	switch value {
	case "yes", "true", "1", "-1":
		return true, false, true
	case "no":
		return true, true, true
	default:
		return false, false, false
	}
}

// effectiveOnewayValue resolves which raw oneway tag value governs a
// way's direction under prof, mirroring directionality's own precedence:
// for the foot profile, oneway:foot wins outright, then a generic oneway
// only on ways where pedestrian one-way-ness is plausible; for every
// other profile, the generic oneway tag always governs.
func effectiveOnewayValue(prof *profile.Profile, tags map[string]string) string {
	if !prof.IsFoot() {
		return tags["oneway"]
	}

	if v := tags["oneway:foot"]; v != "" {
		return v
	}
	if footOnewayRelevantHighways[tags["highway"]] ||
		tags["public_transport"] == "platform" ||
		tags["railway"] == "platform" {
		return tags["oneway"]
	}
	return ""
}

// directionality applies the default rules from the compiler's
// directionality phase. The foot profile is exempt from vehicle oneway
// semantics on ordinary streets: pedestrians may use a vehicle-oneway
// residential road in both directions unless the way carries an explicit
// oneway:foot tag. That exemption itself has an exemption: on ways whose
// one-way-ness is about pedestrian flow rather than vehicle flow —
// footway/path/steps/platform highways, or public_transport=platform /
// railway=platform — a generic oneway tag is honoured even without an
// oneway:foot tag.
func directionality(prof *profile.Profile, tags map[string]string) (forward, backward bool) {
	if prof.IsFoot() {
		if fwd, bwd, ok := directionFromTag(effectiveOnewayValue(prof, tags)); ok {
			return fwd, bwd
		}
		return true, true
	}

	forward, backward = true, true

	highway := tags["highway"]
	if (highway == "motorway" || highway == "motorway_link" || highway == "trunk_link") && tags["oneway"] != "no" {
		backward = false
	}
	if tags["junction"] == "roundabout" {
		backward = false
	}

	if fwd, bwd, ok := directionFromTag(tags["oneway"]); ok {
		forward, backward = fwd, bwd
	}

	return forward, backward
}

// compileWay filters and orients one OSM way, then upserts its edges into
// g. It returns the compiled way (for restriction lowering) and whether
// the way was accepted at all.
func compileWay(g *graph.Graph, prof *profile.Profile, wayID int64, nodeRefs []int64, tags map[string]string) (*compiledWay, bool) {
	penalty, routable := prof.Routable(tags)
	if !routable {
		return nil, false
	}
	if !prof.Accessible(tags) {
		return nil, false
	}
	if prof.MotorroadRejected(tags) {
		return nil, false
	}
	if len(nodeRefs) < 2 {
		return nil, false
	}

	forward, backward := directionality(prof, tags)
	if !forward && !backward {
		return nil, false
	}

	order := nodeRefs
	if effectiveOnewayValue(prof, tags) == "-1" {
		order = make([]int64, len(nodeRefs))
		for i, id := range nodeRefs {
			order[len(nodeRefs)-1-i] = id
		}
	}

	for i := 0; i+1 < len(order); i++ {
		a, b := order[i], order[i+1]
		na, nb := g.GetNode(a), g.GetNode(b)
		if na.IsSentinel() || nb.IsSentinel() {
			logging.Warnf("compile.ways", "way %d: endpoint %d or %d not in graph, segment skipped", wayID, a, b)
			continue
		}

		cost := float32(geo.Haversine(float64(na.Lat), float64(na.Lon), float64(nb.Lat), float64(nb.Lon))) * penalty
		if forward {
			g.SetEdge(a, graph.Edge{To: b, Cost: cost})
		}
		if backward {
			g.SetEdge(b, graph.Edge{To: a, Cost: cost})
		}
	}

	return &compiledWay{ID: wayID, NodeRefs: nodeRefs, Forward: forward, Backward: backward}, true
}

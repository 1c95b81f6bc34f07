package compile

import (
	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/logging"
	"github.com/osmroute/osmroute/profile"
)

var prohibitoryKinds = map[string]bool{
	"no_left_turn":   true,
	"no_right_turn":  true,
	"no_straight_on": true,
	"no_u_turn":      true,
	"no_entry":       true,
	"no_exit":        true,
}

var mandatoryKinds = map[string]bool{
	"only_left_turn":   true,
	"only_right_turn":  true,
	"only_straight_on": true,
}

// restrictionKind reports the relevant restriction value for tags under
// prof, and whether the relation is relevant at all (disable_restrictions
// is off, and the appropriate restriction/restriction:foot tag is
// present).
func restrictionKind(prof *profile.Profile, tags map[string]string) (string, bool) {
	if prof.DisableRestrictions() {
		return "", false
	}

	var raw string
	if prof.IsFoot() {
		raw = tags["restriction:foot"]
	} else {
		raw = tags["restriction"]
	}
	if raw == "" {
		return "", false
	}
	if !prohibitoryKinds[raw] && !mandatoryKinds[raw] {
		return "", false
	}
	return raw, true
}

// restrictionMember is one parsed "from"/"via"/"to" relation member.
type restrictionMember struct {
	Type string // "node", "way", "relation"
	Ref  int64
	Role string
}

// lowerRestriction applies one restriction's node-cloning rewrite to g.
// viaWays are logged and skipped: this implementation handles the
// via-node case, which covers every restriction in standard practice
// except the rarer via-way chained form.
func lowerRestriction(g *graph.Graph, ways map[int64]*compiledWay, claimed map[int64]bool, phantoms *phantomIDs, relationID int64, kind string, members []restrictionMember) {
	var fromWayID int64
	var viaNodeID int64
	haveFrom, haveVia := false, false
	var toWayIDs []int64
	viaIsWay := false

	for _, m := range members {
		switch {
		case m.Role == "from" && m.Type == "way":
			fromWayID = m.Ref
			haveFrom = true
		case m.Role == "via" && m.Type == "node":
			viaNodeID = m.Ref
			haveVia = true
		case m.Role == "via" && m.Type == "way":
			viaIsWay = true
		case m.Role == "to" && m.Type == "way":
			toWayIDs = append(toWayIDs, m.Ref)
		}
	}

	if viaIsWay {
		logging.Warnf("compile.restrictions", "relation %d: via-way restrictions are not lowered, skipped", relationID)
		return
	}
	if !haveFrom || !haveVia {
		logging.Warnf("compile.restrictions", "relation %d: missing from/via member, skipped", relationID)
		return
	}

	fromWay, ok := ways[fromWayID]
	if !ok {
		logging.Warnf("compile.restrictions", "relation %d: from way %d not routable or unresolved, skipped", relationID, fromWayID)
		return
	}
	prevID, ok := fromWay.neighborAt(viaNodeID)
	if !ok {
		logging.Warnf("compile.restrictions", "relation %d: via node %d not found on from way %d, skipped", relationID, viaNodeID, fromWayID)
		return
	}

	viaNode := g.GetNode(viaNodeID)
	if viaNode.IsSentinel() {
		logging.Warnf("compile.restrictions", "relation %d: via node %d not in graph, skipped", relationID, viaNodeID)
		return
	}

	if claimed[viaNodeID] {
		logging.Warnf("compile.restrictions", "relation %d: via node %d already rewritten by a prior restriction, applying anyway", relationID, viaNodeID)
	}
	claimed[viaNodeID] = true

	redirectCost := g.GetEdge(prevID, viaNodeID)
	if redirectCost == graph.InfCost {
		logging.Warnf("compile.restrictions", "relation %d: no edge %d->%d to redirect, skipped", relationID, prevID, viaNodeID)
		return
	}

	phantomID := phantoms.take()
	g.SetNode(graph.Node{RoutingID: phantomID, OSMID: viaNode.OSMID, Lat: viaNode.Lat, Lon: viaNode.Lon})
	g.DeleteEdge(prevID, viaNodeID)
	g.SetEdge(prevID, graph.Edge{To: phantomID, Cost: redirectCost})

	allowFn := restrictionFilter(kind, ways, viaNodeID, prevID, toWayIDs)
	for _, e := range g.GetEdges(viaNodeID) {
		if !allowFn(e.To) {
			continue
		}
		g.SetEdge(phantomID, graph.Edge{To: e.To, Cost: e.Cost})
	}
}

// restrictionFilter builds the predicate deciding which of N's outgoing
// edges survive onto the phantom clone.
func restrictionFilter(kind string, ways map[int64]*compiledWay, viaNodeID, prevID int64, toWayIDs []int64) func(next int64) bool {
	targets := map[int64]bool{}
	for _, wayID := range toWayIDs {
		w, ok := ways[wayID]
		if !ok {
			continue
		}
		if n, ok := w.neighborAt(viaNodeID); ok {
			targets[n] = true
		}
	}

	switch {
	case mandatoryKinds[kind]:
		if len(targets) == 0 {
			return func(int64) bool { return false }
		}
		return func(next int64) bool { return targets[next] }

	case kind == "no_u_turn" && len(targets) == 0:
		return func(next int64) bool { return next != prevID }

	case kind == "no_entry" || kind == "no_exit":
		return func(int64) bool { return false }

	default: // prohibitory with explicit to-way(s)
		return func(next int64) bool { return !targets[next] }
	}
}

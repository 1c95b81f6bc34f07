package compile

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/logging"
	"github.com/osmroute/osmroute/osm"
	"github.com/osmroute/osmroute/profile"
)

// Compile streams r through a format-detected osm.Scanner and mutates g
// in place: nodes first (bbox-filtered canonical insertion), then ways
// (profile-gated edge materialisation), then relations (turn-restriction
// lowering). It relies on the parser's OSM-canonical element ordering —
// one forward pass suffices.
//
// On a scan failure, g may hold a partial load; per the ingest error
// taxonomy that is an acceptable, discardable state. The single returned
// error wraps osm.ErrLoadingFailed.
func Compile(ctx context.Context, r io.Reader, prof *profile.Profile, format osm.Format, bbox osm.BBox, g *graph.Graph) error {
	scanner, err := osm.NewScanner(ctx, r, format)
	if err != nil {
		return err
	}
	defer scanner.Close()

	ways := make(map[int64]*compiledWay)
	type pendingRelation struct {
		id      int64
		kind    string
		members []restrictionMember
	}
	var pending []pendingRelation

	for scanner.Scan() {
		switch el := scanner.Element().(type) {
		case *osm.OsmNode:
			if !bbox.Contains(el.Lat, el.Lon) {
				continue
			}
			g.SetNode(graph.Node{
				RoutingID: el.ID,
				OSMID:     el.ID,
				Lat:       float32(el.Lat),
				Lon:       float32(el.Lon),
			})

		case *osm.OsmWay:
			if cw, ok := compileWay(g, prof, el.ID, el.NodeRefs, el.Tags); ok {
				ways[el.ID] = cw
			}

		case *osm.OsmRelation:
			if !isRestrictionType(el.Tags["type"]) {
				continue
			}
			kind, relevant := restrictionKind(prof, el.Tags)
			if !relevant {
				continue
			}
			members := make([]restrictionMember, len(el.Members))
			for i, m := range el.Members {
				members[i] = restrictionMember{Type: m.Type, Ref: m.Ref, Role: m.Role}
			}
			pending = append(pending, pendingRelation{id: el.ID, kind: kind, members: members})
		}
	}
	if err := scanner.Err(); err != nil {
		logging.Errorf("compile", "scan failed: %v", err)
		return fmt.Errorf("%w: %v", osm.ErrLoadingFailed, err)
	}

	sort.Slice(pending, func(i, j int) bool { return pending[i].id < pending[j].id })

	phantoms := newPhantomIDs()
	claimed := make(map[int64]bool)
	for _, rel := range pending {
		lowerRestriction(g, ways, claimed, phantoms, rel.id, rel.kind, rel.members)
	}

	return nil
}

// isRestrictionType reports whether a relation's type tag marks it as a
// turn restriction: either the plain "restriction", or a mode-qualified
// "restriction:<mode>" (e.g. restriction:bus, restriction:hgv).
func isRestrictionType(t string) bool {
	return t == "restriction" || strings.HasPrefix(t, "restriction:")
}

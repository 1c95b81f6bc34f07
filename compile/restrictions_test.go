package compile

import (
	"testing"

	"github.com/osmroute/osmroute/graph"
	"github.com/osmroute/osmroute/profile"
)

// buildJunction constructs: 1 -(way A)- 2 -(way B)- 3, and 2 -(way C)- 4,
// a three-way junction at node 2 with node 2 at an end of each way.
func buildJunction(t *testing.T) (*graph.Graph, map[int64]*compiledWay) {
	t.Helper()
	g := graph.New()
	for _, n := range []graph.Node{
		{RoutingID: 1, OSMID: 1, Lat: 0.000, Lon: 0.000},
		{RoutingID: 2, OSMID: 2, Lat: 0.001, Lon: 0.000},
		{RoutingID: 3, OSMID: 3, Lat: 0.002, Lon: 0.000},
		{RoutingID: 4, OSMID: 4, Lat: 0.001, Lon: 0.001},
	} {
		g.SetNode(n)
	}

	ways := make(map[int64]*compiledWay)
	var ok bool
	ways[100], ok = compileWay(g, profile.Car, 100, []int64{1, 2}, map[string]string{"highway": "residential"})
	if !ok {
		t.Fatal("way 100 should compile")
	}
	ways[200], ok = compileWay(g, profile.Car, 200, []int64{2, 3}, map[string]string{"highway": "residential"})
	if !ok {
		t.Fatal("way 200 should compile")
	}
	ways[300], ok = compileWay(g, profile.Car, 300, []int64{2, 4}, map[string]string{"highway": "residential"})
	if !ok {
		t.Fatal("way 300 should compile")
	}

	return g, ways
}

func TestLowerRestriction_Prohibitory_RedirectsAndPrunes(t *testing.T) {
	g, ways := buildJunction(t)
	phantoms := newPhantomIDs()
	claimed := make(map[int64]bool)

	members := []restrictionMember{
		{Type: "way", Ref: 100, Role: "from"},
		{Type: "node", Ref: 2, Role: "via"},
		{Type: "way", Ref: 200, Role: "to"},
	}
	lowerRestriction(g, ways, claimed, phantoms, 900, "no_straight_on", members)

	// The direct edge 1->2 must be gone; 1 now routes to a phantom clone
	// of 2 instead.
	if g.GetEdge(1, 2) != graph.InfCost {
		t.Fatalf("edge 1->2 should have been redirected away")
	}
	if g.Size() != 5 {
		t.Fatalf("Size() = %d, want 5 (4 canonical + 1 phantom)", g.Size())
	}

	var phantomID int64
	for n := range g.Nodes() {
		if n.OSMID == 2 && !n.IsCanonical() {
			phantomID = n.RoutingID
		}
	}
	if phantomID == 0 {
		t.Fatal("no phantom clone of node 2 found")
	}

	// The phantom must not offer the forbidden continuation onto way 200
	// (towards node 3), but the other branch (towards node 4) survives.
	if g.GetEdge(phantomID, 3) != graph.InfCost {
		t.Fatalf("phantom should not lead to node 3 (the forbidden straight-on)")
	}
	if g.GetEdge(phantomID, 4) == graph.InfCost {
		t.Fatalf("phantom should still offer the untouched branch to node 4")
	}

	// Canonical node 2 is untouched: still reachable from 3 and 4, and
	// still offers its full original adjacency to arrivals from there.
	if g.GetEdge(3, 2) == graph.InfCost {
		t.Fatalf("canonical node 2 should remain reachable from node 3")
	}
	if g.GetEdge(2, 3) == graph.InfCost {
		t.Fatalf("canonical node 2 should keep its original edge to node 3")
	}
}

func TestLowerRestriction_Mandatory_OnlyAllowedTargetSurvives(t *testing.T) {
	g, ways := buildJunction(t)
	phantoms := newPhantomIDs()
	claimed := make(map[int64]bool)

	members := []restrictionMember{
		{Type: "way", Ref: 100, Role: "from"},
		{Type: "node", Ref: 2, Role: "via"},
		{Type: "way", Ref: 300, Role: "to"},
	}
	lowerRestriction(g, ways, claimed, phantoms, 901, "only_right_turn", members)

	var phantomID int64
	for n := range g.Nodes() {
		if n.OSMID == 2 && !n.IsCanonical() {
			phantomID = n.RoutingID
		}
	}
	if phantomID == 0 {
		t.Fatal("no phantom clone of node 2 found")
	}

	if g.GetEdge(phantomID, 4) == graph.InfCost {
		t.Fatalf("phantom should offer the single mandated continuation to node 4")
	}
	if g.GetEdge(phantomID, 3) != graph.InfCost {
		t.Fatalf("phantom must not offer any edge except the mandated one")
	}
}

func TestRestrictionKind_DisableRestrictionsSkipsEverything(t *testing.T) {
	p := profile.New("no-restrictions", profile.WithDisableRestrictions())
	_, relevant := restrictionKind(p, map[string]string{"restriction": "no_left_turn"})
	if relevant {
		t.Fatalf("disable_restrictions profile should never find a relation relevant")
	}
}

func TestRestrictionKind_FootUsesFootSpecificTag(t *testing.T) {
	_, relevant := restrictionKind(profile.Foot, map[string]string{"restriction": "no_left_turn"})
	if relevant {
		t.Fatalf("generic restriction tag should not apply under the foot profile")
	}

	kind, relevant := restrictionKind(profile.Foot, map[string]string{"restriction:foot": "no_entry"})
	if !relevant || kind != "no_entry" {
		t.Fatalf("restriction:foot should be consulted for the foot profile, got (%q, %v)", kind, relevant)
	}
}

func TestRestrictionKind_UnknownValueIsIgnored(t *testing.T) {
	_, relevant := restrictionKind(profile.Car, map[string]string{"restriction": "no_such_kind"})
	if relevant {
		t.Fatalf("unrecognised restriction value should not be treated as relevant")
	}
}

func TestIsRestrictionType(t *testing.T) {
	cases := []struct {
		typeTag string
		want    bool
	}{
		{"restriction", true},
		{"restriction:bus", true},
		{"restriction:hgv", true},
		{"multipolygon", false},
		{"", false},
		{"restrictionish", false},
	}
	for _, c := range cases {
		if got := isRestrictionType(c.typeTag); got != c.want {
			t.Fatalf("isRestrictionType(%q) = %v, want %v", c.typeTag, got, c.want)
		}
	}
}

package osm

import paulmachosm "github.com/paulmach/osm"

// OsmNode is the minimal node record the compiler consumes: an id, a
// coordinate, and its tags. It is decoupled from paulmach/osm's richer
// Node type (version, changeset, visible, timestamp, ...) on purpose —
// package compile depends only on this contract, never on the parser
// library's own types.
type OsmNode struct {
	ID   int64
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// OsmWay is the minimal way record: an id, its ordered member node ids,
// and its tags.
type OsmWay struct {
	ID       int64
	NodeRefs []int64
	Tags     map[string]string
}

// OsmRelationMember is one "from"/"via"/"to" member of a relation.
type OsmRelationMember struct {
	Type string // "node", "way", or "relation"
	Ref  int64
	Role string
}

// OsmRelation is the minimal relation record: an id, its ordered member
// list, and its tags.
type OsmRelation struct {
	ID      int64
	Members []OsmRelationMember
	Tags    map[string]string
}

// convert maps one paulmach/osm Object onto this package's local record
// contract. It returns nil for any object kind the compiler has no use
// for (changesets, bounds, notes), so callers can skip those with a
// single nil check rather than an exhaustive type switch of their own.
func convert(obj paulmachosm.Object) any {
	switch el := obj.(type) {
	case *paulmachosm.Node:
		return &OsmNode{
			ID:   int64(el.ID),
			Lat:  el.Lat,
			Lon:  el.Lon,
			Tags: el.Tags.Map(),
		}

	case *paulmachosm.Way:
		refs := make([]int64, len(el.Nodes))
		for i, wn := range el.Nodes {
			refs[i] = int64(wn.ID)
		}
		return &OsmWay{
			ID:       int64(el.ID),
			NodeRefs: refs,
			Tags:     el.Tags.Map(),
		}

	case *paulmachosm.Relation:
		members := make([]OsmRelationMember, len(el.Members))
		for i, m := range el.Members {
			members[i] = OsmRelationMember{Type: string(m.Type), Ref: m.Ref, Role: m.Role}
		}
		return &OsmRelation{
			ID:      int64(el.ID),
			Members: members,
			Tags:    el.Tags.Map(),
		}

	default:
		return nil
	}
}

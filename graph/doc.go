// Package graph provides the in-memory routing graph: a directed, weighted
// adjacency structure over nodes identified by a 64-bit routing id.
//
// A Graph owns two catalogs: routing id → Node, and routing id → ordered
// sequence of outgoing Edge. Node id 0 is reserved as the "no such node"
// sentinel and is never stored; GetNode returns the zero Node when asked
// for an id that is absent.
//
// Every OSM node compiles to exactly one canonical Node, whose RoutingID
// equals its OSMID. Turn-restriction lowering (package compile) clones
// canonical nodes into phantom Nodes that share an OSMID with their
// canonical but carry a distinct, negative RoutingID drawn from a range
// disjoint from real OSM ids. Graph itself does not track which ids are
// canonical versus phantom; callers rely on the RoutingID == OSMID
// convention.
//
// Graph is not internally synchronized: per the library's single-threaded,
// synchronous design, concurrent readers are safe only as long as no
// writer is mutating at the same time, and callers are responsible for any
// serialization across goroutines. Views returned by Nodes and GetEdges
// borrow from the graph's internal storage and are invalidated by any
// subsequent mutation. Built with the routedebug tag, stale use of a Nodes
// iterator is caught via a generation counter; a GetEdges slice has no
// such check in any build.
package graph

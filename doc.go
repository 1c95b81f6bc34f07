// Package osmroute is an OSM-extract routing library: it compiles raw
// OpenStreetMap data into a weighted directed routing graph and answers
// point-to-point shortest-route queries against it with A*.
//
// The library is organized as a pipeline across five subpackages:
//
//	osm/      — streams an OSM extract (XML or PBF) and defines the bbox
//	            filter that compile applies
//	profile/  — movement profiles (car, bike, foot, ...) deciding access,
//	            directionality and per-way cost penalties
//	compile/  — turns a stream of OSM elements plus a profile into a
//	            graph.Graph, lowering turn restrictions via node cloning
//	graph/    — the routing graph itself: routing-id nodes, directed
//	            weighted edges, no persistence, no implicit cleanup
//	astar/    — point-to-point search over a graph.Graph, plain and
//	            no-immediate-turn-around variants
//
// kdtree/ answers "nearest routing node to this coordinate" queries
// against a graph snapshot. logging/ is a process-global, installable
// sink used by compile to surface scan failures, skipped segments and
// lowering conflicts without forcing a logging framework on callers. handle/ is a
// foreign-ABI-friendly layer over graph/kdtree/astar for embedders that
// need null-tolerant handles and tagged-union results instead of Go's
// usual (value, error) idiom.
//
// Packaging, a CLI, and language bindings are out of scope for this
// module; it is a library to be embedded, not a program to run.
package osmroute

// Package compile turns a stream of OSM nodes, ways and relations into
// graph.Graph mutations under a profile.Profile. Its one genuinely
// nontrivial piece is turn-restriction lowering: every prohibitory or
// mandatory restriction relation is realised as a phantom-node rewrite of
// the graph rather than as extra state in the search engine, so package
// astar never needs to know restrictions exist.
package compile

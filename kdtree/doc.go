// Package kdtree provides a static, read-only 2-d binary space partition
// over a graph's canonical nodes, built once and queried by
// nearest-neighbour descent.
//
// The tree owns a private copy of the node coordinates at construction
// time and keeps no reference back to the graph it was built from: if the
// graph is later mutated, the tree simply becomes stale (spec's
// documented Open Question (b) — phantoms are never indexed, and a tree
// built before a mutation silently reflects the old graph until rebuilt).
//
// Construction partitions the node slice in place by alternating axis
// (latitude at even depth, longitude at odd depth) using a median
// quickselect, so no separate pointer-linked node structure is needed —
// the array itself, once partitioned, is the tree.
package kdtree

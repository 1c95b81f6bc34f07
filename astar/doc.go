// Package astar implements the A* point-to-point search over a
// graph.Graph: a plain variant keyed on the current routing id, and a
// no-immediate-turn-around variant keyed on the (previous, current) pair,
// needed to make mandatory turn restrictions (lowered to phantom-node
// detours by package compile) actually binding.
//
// Both variants share the same admissible heuristic (great-circle
// distance to the destination, via package geo) and the same step-limit
// bound on nodes popped, protecting against unbounded search when the
// destination is unreachable.
package astar

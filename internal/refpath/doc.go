// Package refpath is a lazy-decrease-key Dijkstra over graph.Graph, kept
// deliberately separate from package astar's heuristic search. Tests use
// it as an independent oracle to cross-check that A* returns the actual
// optimal cost, not merely a plausible one.
package refpath

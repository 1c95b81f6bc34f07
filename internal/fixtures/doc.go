// Package fixtures builds small synthetic graph.Graph instances for use by
// property and scenario tests elsewhere in the module. Each constructor
// lays out nodes on a real coordinate grid so that edge costs are true
// haversine distances (admissible by construction) rather than arbitrary
// numbers, and returns deterministic routing ids so tests can assert on
// exact node sequences.
package fixtures

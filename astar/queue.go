// File: queue.go
// Role: total-ordered float32 comparison for the priority queues in
// astar.go and noturn.go.
// Edge costs and f/g scores are float32; spec requires NaN to sort as if
// it were +Inf so the heap always terminates even if a malformed edge
// cost slipped past Graph's (unenforced) admissibility invariant.
package astar

// compareF32 orders a and b the way the open-set heaps need: NaN treated
// as larger than every finite value (and equal to another NaN).
func compareF32(a, b float32) int {
	aNaN := a != a
	bNaN := b != b

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

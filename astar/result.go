// File: result.go
// Role: the Route type and the search error taxonomy.
package astar

import (
	"errors"
	"fmt"
)

// Route is a finite ordered sequence of routing ids: first element is the
// source, last is the destination. A route where source and destination
// coincide has exactly one element.
type Route []int64

// ErrStepLimitExceeded is returned when a search pops more than its
// configured step limit worth of nodes without reaching the destination.
// Per spec, this is also the signal returned when the destination turns
// out to be unreachable and the open set empties: there is no separate
// "unreachable" variant in the result taxonomy, so exhausting the search
// space is treated as the degenerate case of exceeding an effectively
// unbounded step count.
var ErrStepLimitExceeded = errors.New("astar: step limit exceeded")

// InvalidReferenceError is returned when from or to does not name a node
// present in the graph (GetNode returns the sentinel).
type InvalidReferenceError struct {
	ID int64
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("astar: invalid reference: node %d not in graph", e.ID)
}

package handle

import (
	"errors"

	"github.com/osmroute/osmroute/astar"
)

// ResultKind tags a RouteResult's variant, replacing Go's (value, error)
// return convention at the foreign boundary.
type ResultKind int

const (
	ResultOk ResultKind = iota
	ResultInvalidReference
	ResultStepLimitExceeded
)

// RouteResult is the tagged union a route search returns. Only the field
// matching Kind is meaningful.
type RouteResult struct {
	Kind      ResultKind
	Nodes     []int64 // ResultOk
	InvalidID int64    // ResultInvalidReference
}

// FindRoute runs plain A* over h's graph. A released or nil handle
// reports ResultInvalidReference for from, matching the null-handle
// tolerance contract.
func (h *GraphHandle) FindRoute(from, to int64, stepLimit int) RouteResult {
	if !h.valid() {
		return RouteResult{Kind: ResultInvalidReference, InvalidID: from}
	}
	route, err := astar.FindRoute(h.g, from, to, stepLimit)
	return toRouteResult(route, err, from)
}

// FindRouteWithoutTurnAround runs the no-immediate-turn-around variant.
func (h *GraphHandle) FindRouteWithoutTurnAround(from, to int64, stepLimit int) RouteResult {
	if !h.valid() {
		return RouteResult{Kind: ResultInvalidReference, InvalidID: from}
	}
	route, err := astar.FindRouteWithoutTurnAround(h.g, from, to, stepLimit)
	return toRouteResult(route, err, from)
}

func toRouteResult(route astar.Route, err error, from int64) RouteResult {
	if err == nil {
		return RouteResult{Kind: ResultOk, Nodes: []int64(route)}
	}

	var invalidRef *astar.InvalidReferenceError
	if errors.As(err, &invalidRef) {
		return RouteResult{Kind: ResultInvalidReference, InvalidID: invalidRef.ID}
	}
	return RouteResult{Kind: ResultStepLimitExceeded}
}

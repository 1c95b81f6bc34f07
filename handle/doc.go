// Package handle is the Go-side surface a foreign-ABI binding would wrap:
// opaque handles over a graph, its iterators and its k-d tree, plus a
// tagged RouteResult in place of Go's (value, error) return convention.
// It does not itself export C symbols — that binding layer is out of
// scope — but every operation here is null-handle tolerant and every
// handle has a paired, idempotent release, exactly as a cgo boundary
// would require.
package handle

// Package profile declares the movement-mode description consulted by
// package compile: what counts as routable, how much a way costs relative
// to its geometric length, and which access tags gate passage.
//
// A Profile is an immutable value. Nothing here touches a graph, an OSM
// element, or the network — it only answers yes/no/penalty questions
// about a tag set, the same way on every call.
package profile

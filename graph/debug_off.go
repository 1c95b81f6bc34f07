//go:build !routedebug

package graph

// debugGenerationChecks is compiled out by default: generation-counter
// staleness assertions on borrowed views only run in routedebug builds,
// per spec's "should make misuse detectable in debug builds" note.
const debugGenerationChecks = false

func assertFreshGeneration(*Graph, uint64) {}

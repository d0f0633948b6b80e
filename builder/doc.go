// Package builder provides deterministic "functional-options"-style
// generators for Steiner instances: fixed topologies over integer nodes,
// seeded random sparse graphs, and terminal selections. Tests, benchmarks
// and the gen command all draw their fixtures from here.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        creates a core.Graph of n nodes and runs Constructors in order.
//     – Constructor:       a deterministic graph mutation.
//     – Shift:             runs a Constructor over nodes offset by k.
//   - Topologies (impl_*.go):
//     – Path, Cycle, Star, Grid, RandomSparse.
//   - Terminal selection:
//     – Terminals:         k distinct nodes, evenly spread or seeded-random.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, node-ID scheme and weight function.
//   - Edge-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value.
//     – UniformWeightFn:   uniform integers in [min,max].
//
// Guarantees:
//
//   - Determinism: same n, options, seed and constructor order ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return sentinel errors wrapped with %w.
//   - Weights always lie in [0, core.MaxWeight].
package builder

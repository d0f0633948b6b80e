// Package builder provides helper functions and types for configuring
// edge-weight distributions in graph constructors.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsteiner/core"
)

// DefaultEdgeWeight is the default weight assigned to each edge when no
// custom WeightFn is provided.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed and stay within
// [0, core.MaxWeight].
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields the provided value.
// Panics if value is outside [0, core.MaxWeight].
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 || value > core.MaxWeight {
		panic(fmt.Sprintf("ConstantWeightFn: value must be in [0,%d], got %d", core.MaxWeight, value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling integers uniformly in
// [min, max] inclusive. Panics unless 0 ≤ min ≤ max ≤ core.MaxWeight.
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min || max > core.MaxWeight {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max ≤ %d, got min=%d, max=%d", core.MaxWeight, min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

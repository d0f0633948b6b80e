// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults (no surprises):
//   • idFn        = oneBasedID         (0→1, 1→2, ...)
//   • rng         = nil                (pure/deterministic unless seeded)
//   • weightFn    = DefaultWeightFn    (constant DefaultEdgeWeight)

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvsteiner/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: construction index -> graph node.
	idFn func(int) int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     oneBasedID,
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// oneBasedID maps construction index i to node i+1.
func oneBasedID(i int) int { return i + 1 }

// weight draws the next edge weight from the configured generator.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }

// link adds the edge between construction indices i and j with the next
// generated weight, wrapping any core error with the method tag.
func (c builderConfig) link(g *core.Graph, method string, i, j int) error {
	u, v, w := c.idFn(i), c.idFn(j), c.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

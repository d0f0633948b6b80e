// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(n, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic at runtime; return sentinel errors from constructors.
//
// AI-Hints (practical):
//   - Compose multiple constructors in BuildGraph; use Shift to place them on disjoint node ranges.
//   - Use WithSeed(...) to freeze stochastic paths (RandomSparse, Terminals).

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Map construction indices 0..size-1 to nodes via cfg.idFn.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with n nodes, resolves the builder
// configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Errors:
//   - core.ErrBadOrder if n < 1.
//   - core.ErrNodeRange (wrapped) if a constructor needs more than n nodes.
//   - Constructor sentinels (ErrTooFewVertices, ErrCountRange, ...).
func BuildGraph(n int, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g, err := core.NewGraph(n)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// Shift runs inner with every construction index moved up by offset, so
// Path(3) under Shift(4, ...) links nodes 5—6—7 instead of 1—2—3.
func Shift(offset int, inner Constructor) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if inner == nil {
			return fmt.Errorf("Shift: nil constructor: %w", ErrConstructFailed)
		}
		base := cfg.idFn
		cfg.idFn = func(i int) int { return base(i + offset) }

		return inner(g, cfg)
	}
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================

// Path builds a simple path P_n (n ≥ 2).
// Complexity: O(n-1) edges.
//func Path(n int) Constructor

// Cycle builds an n-node simple cycle C_n (n ≥ 3).
// Complexity: O(n) edges.
//func Cycle(n int) Constructor

// Star builds a star with center at index 0 and n-1 leaves (n ≥ 2).
// Complexity: O(n-1) edges.
//func Star(n int) Constructor

// Grid builds an R×C 4-neighborhood grid, index r*C+c (row-major).
// Complexity: O(R*C) edges.
//func Grid(rows, cols int) Constructor

// RandomSparse builds a random spanning path plus m extra random edges.
// Requires cfg.rng != nil.
// Complexity: O(n + m).
//func RandomSparse(n, m int) Constructor

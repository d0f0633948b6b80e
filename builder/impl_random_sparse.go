// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, m) constructor.
//
// Canonical model:
//   - A random spanning path (a shuffled permutation of 0..n-1) keeps the
//     graph connected; then m extra edges with uniformly random endpoints.
//   - Extra edges may repeat pairs or be self-loops: Steiner instances
//     routinely carry parallel edges and loops, and the solver must cope.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - m ≥ 0 (else ErrCountRange).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n + m).
//   - Space: O(n) for the permutation.
//
// Determinism:
//   - Draw order: permutation, then per spanning edge its weight, then per
//     extra edge (u, v, weight). Fixed seed ⇒ identical graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples a connected sparse graph
// over n nodes with n-1+m edges.
func RandomSparse(n, m int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early.
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if m < 0 {
			return fmt.Errorf("%s: m=%d < 0: %w", methodRandomSparse, m, ErrCountRange)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Spanning path over a random permutation.
		perm := cfg.rng.Perm(n)
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodRandomSparse, perm[i-1], perm[i]); err != nil {
				return err
			}
		}

		// 3) Extra edges.
		for i := 0; i < m; i++ {
			u, v := cfg.rng.Intn(n), cfg.rng.Intn(n)
			if err := cfg.link(g, methodRandomSparse, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

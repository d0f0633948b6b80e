// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges (i-1) — i for i=1..n-1 in stable increasing order.
//   - Weight policy: cfg.weightFn(cfg.rng) per edge, in emission order.
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n-1) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		// Emit path edges 0—1—2—...—(n-1) in stable order.
		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodPath, i-1, i); err != nil {
				return err
			}
		}

		return nil
	}
}

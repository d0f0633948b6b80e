// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Emits edges i — (i+1) mod n for i=0..n-1; the last one closes the ring.
//
// Complexity:
//   - Time: O(n) edges.
//   - Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		for i := 0; i < n; i++ {
			if err := cfg.link(g, methodCycle, i, (i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

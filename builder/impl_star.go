// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Index 0 is the center; emits 0 — i for i=1..n-1.
//
// A star with terminals on the leaves is the textbook case where the
// optimal Steiner tree uses a non-terminal hub.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		for i := 1; i < n; i++ {
			if err := cfg.link(g, methodStar, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}

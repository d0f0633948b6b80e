// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Canonical model:
//   • 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   • Cell (r,c) has construction index r*cols + c (row-major), so node r*cols+c+1
//     under the default ID scheme.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • For each (r,c) emit Right then Bottom if present.
//
// Complexity:
//   • Time: O(rows*cols) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		// 2) Emit edges row-major.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				cell := r*cols + c
				if c+1 < cols {
					if err := cfg.link(g, methodGrid, cell, cell+1); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := cfg.link(g, methodGrid, cell, cell+cols); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

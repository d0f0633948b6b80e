// SPDX-License-Identifier: MIT
// Package: lvsteiner/builder
//
// impl_terminals.go - terminal selection for generated instances.
//
// Contract:
//   - 1 ≤ k ≤ n (else ErrTooFewVertices / ErrCountRange).
//   - Without an RNG: indices i*n/k for i=0..k-1, evenly spread and ascending.
//   - With an RNG: the first k entries of a seeded permutation.
//   - Indices are mapped through cfg.idFn like every constructor.

package builder

import "fmt"

const methodTerminals = "Terminals"

// Terminals picks k distinct nodes out of n.
func Terminals(n, k int, opts ...BuilderOption) ([]int, error) {
	if k < 1 || n < 1 {
		return nil, fmt.Errorf("%s: n=%d, k=%d (each must be ≥ 1): %w", methodTerminals, n, k, ErrTooFewVertices)
	}
	if k > n {
		return nil, fmt.Errorf("%s: k=%d > n=%d: %w", methodTerminals, k, n, ErrCountRange)
	}

	cfg := newBuilderConfig(opts...)
	out := make([]int, k)
	if cfg.rng == nil {
		for i := range out {
			out[i] = cfg.idFn(i * n / k)
		}

		return out, nil
	}
	for i, idx := range cfg.rng.Perm(n)[:k] {
		out[i] = cfg.idFn(idx)
	}

	return out, nil
}

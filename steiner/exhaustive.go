package steiner

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsteiner/bitmask"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/mst"
)

// Exhaustive computes the minimum Steiner tree weight by brute force:
//
//	min over node sets S ⊇ terminals with G[S] connected of MST(G[S]).
//
// Every optimal Steiner tree is a spanning tree of the subgraph induced by
// its own nodes, so enumerating S over the non-terminal nodes is exact.
// It exists to cross-check the DP on small instances.
//
// Errors:
//   - ErrNilGraph, ErrNoTerminals, ErrTerminalRange.
//   - ErrTooLarge if more than ExhaustiveLimit nodes are not terminals.
//   - ErrNoSolution if no such S exists.
//
// Complexity: O(2^(n-k) · m·α(n)).
func Exhaustive(g *core.Graph, terminals []int) (int64, error) {
	if g == nil {
		return Inf, ErrNilGraph
	}
	if len(terminals) == 0 {
		return Inf, ErrNoTerminals
	}
	n := g.Order()
	member := make([]bool, n+1)
	for i, v := range terminals {
		if !g.HasNode(v) {
			return Inf, fmt.Errorf("%w: terminal %d is node %d, want 1..%d", ErrTerminalRange, i, v, n)
		}
		member[v] = true
	}
	var free []int
	for v := 1; v <= n; v++ {
		if !member[v] {
			free = append(free, v)
		}
	}
	if len(free) > ExhaustiveLimit {
		return Inf, fmt.Errorf("%w: %d free nodes > %d", ErrTooLarge, len(free), ExhaustiveLimit)
	}
	if !g.Connected(terminals...) {
		return Inf, ErrNoSolution
	}

	sp, err := mst.NewSpanner(g)
	if err != nil {
		return Inf, err
	}
	best := Inf
	for sub := 0; sub < 1<<uint(len(free)); sub++ {
		for i, v := range free {
			member[v] = sub&(1<<uint(i)) != 0
		}
		w, err := sp.Weight(member)
		if errors.Is(err, mst.ErrDisconnected) {
			continue
		}
		if err != nil {
			return Inf, err
		}
		if w < best {
			best = w
		}
	}
	if best >= Inf {
		return Inf, ErrNoSolution
	}

	return best, nil
}

// ExhaustiveForest computes the minimum balanced forest weight by
// enumerating partitions of the terminals into balanced blocks, pricing
// each block with Exhaustive. Unlike the DP it never reuses a tree value
// for an imbalanced block.
//
// Errors:
//   - ErrUnequalGroups, ErrTooManyTerminals, plus everything Exhaustive returns
//     except ErrNoSolution for individual blocks.
//   - ErrNoSolution if no partition is fully connectable.
func ExhaustiveForest(g *core.Graph, groupA, groupB []int) (int64, error) {
	if len(groupA) != len(groupB) {
		return Inf, fmt.Errorf("%w: %d vs %d", ErrUnequalGroups, len(groupA), len(groupB))
	}
	terminals := append(append([]int(nil), groupA...), groupB...)
	if err := validateTerminals(g, terminals); err != nil {
		return Inf, err
	}
	h, full := len(groupA), bitmask.Full(len(terminals))

	// 1) Price every balanced block as a single tree.
	single := make([]int64, int(full)+1)
	for m := bitmask.Mask(1); m <= full; m++ {
		single[m] = Inf
		if !bitmask.Balanced(m, h) {
			continue
		}
		var block []int
		for i, v := range terminals {
			if m.Has(i) {
				block = append(block, v)
			}
		}
		w, err := Exhaustive(g, block)
		switch {
		case errors.Is(err, ErrNoSolution):
			continue
		case err != nil:
			return Inf, err
		}
		single[m] = w
	}

	// 2) Best partition: the block holding the lowest set bit, plus the rest.
	part := make([]int64, int(full)+1)
	for m := bitmask.Mask(1); m <= full; m++ {
		part[m] = Inf
		if !bitmask.Balanced(m, h) {
			continue
		}
		low := m & -m
		part[m] = single[m]
		for s := range bitmask.Submasks(m) {
			if s&low == 0 || !bitmask.Balanced(s, h) {
				continue
			}
			if c := add(single[s], part[m^s]); c < part[m] {
				part[m] = c
			}
		}
	}
	if part[full] >= Inf {
		return Inf, ErrNoSolution
	}

	return part[full], nil
}

package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/bitmask"
	"github.com/katalvlaran/lvsteiner/core"
)

// SolveForest is a one-shot convenience around NewSolver().Forest and MinCost.
func SolveForest(g *core.Graph, groupA, groupB []int, opts ...Option) (int64, error) {
	f, err := NewSolver(opts...).Forest(g, groupA, groupB)
	if err != nil {
		return Inf, err
	}

	return f.MinCost()
}

// Forest runs the tree DP over groupA followed by groupB (A occupies bits
// 0..h-1, B bits h..2h-1) and then combines balanced subsets:
//
//	forest[mask] = min(forest[mask], forest[m1] + forest[mask^m1])
//
// for every balanced mask and balanced submask m1, masks ascending.
// Imbalanced masks keep their single-tree value and are never written.
//
// The returned *Forest aliases the Solver's storage and is invalidated by
// the next Tree or Forest call on the same Solver.
//
// Errors:
//   - ErrUnequalGroups if len(groupA) != len(groupB).
//   - ErrNoTerminals if both groups are empty.
//   - Everything Tree returns.
func (s *Solver) Forest(g *core.Graph, groupA, groupB []int) (*Forest, error) {
	if len(groupA) != len(groupB) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrUnequalGroups, len(groupA), len(groupB))
	}
	terminals := make([]int, 0, len(groupA)+len(groupB))
	terminals = append(terminals, groupA...)
	terminals = append(terminals, groupB...)

	tree, err := s.Tree(g, terminals)
	if err != nil {
		return nil, err
	}
	h := len(groupA)

	// 1) Seed with the cheapest single tree per subset.
	size := int(tree.full) + 1
	if cap(s.forest) < size {
		s.forest = make([]int64, size)
	}
	s.forest = s.forest[:size]
	for m := range s.forest {
		s.forest[m] = tree.Best(bitmask.Mask(m))
	}

	// 2) Split balanced subsets into two balanced parts.
	for mask := bitmask.Mask(1); mask <= tree.full; mask++ {
		if !bitmask.Balanced(mask, h) {
			continue
		}
		for m1 := range bitmask.Submasks(mask) {
			if !bitmask.Balanced(m1, h) {
				continue
			}
			c := add(s.forest[m1], s.forest[mask^m1])
			if c < s.forest[mask] {
				if s.opts.ForestHook != nil {
					s.opts.ForestHook(mask, s.forest[mask], c)
				}
				s.forest[mask] = c
			}
		}
	}

	return &Forest{tree: tree, h: h, cost: s.forest}, nil
}

// Forest is a read-only view of a filled forest table.
type Forest struct {
	tree *Tree
	h    int
	cost []int64
}

// Cost returns forest[m], or Inf for out-of-range masks.
func (f *Forest) Cost(m bitmask.Mask) int64 {
	if int(m) >= len(f.cost) {
		return Inf
	}

	return f.cost[m]
}

// MinCost returns the minimum balanced forest weight.
//
// Errors:
//   - ErrNoSolution if no balanced partition is fully connectable.
func (f *Forest) MinCost() (int64, error) {
	c := f.cost[f.tree.full]
	if c >= Inf {
		return Inf, ErrNoSolution
	}

	return c, nil
}

// Half returns h, the size of each terminal group.
func (f *Forest) Half() int { return f.h }

// Tree returns the underlying tree table.
func (f *Forest) Tree() *Tree { return f.tree }

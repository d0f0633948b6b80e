package steiner

import (
	"fmt"

	"github.com/katalvlaran/lvsteiner/bitmask"
	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// Solver computes Steiner trees and forests, reusing its table storage
// across calls. The zero value is not usable; call NewSolver.
type Solver struct {
	opts   Options
	cost   table
	forest []int64

	// mask is the column currently being relaxed; the relax hook reads it.
	mask bitmask.Mask
}

// NewSolver returns a Solver configured by opts.
func NewSolver(opts ...Option) *Solver {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{opts: cfg}
}

// SolveTree is a one-shot convenience around NewSolver().Tree and MinCost.
func SolveTree(g *core.Graph, terminals []int, opts ...Option) (int64, error) {
	t, err := NewSolver(opts...).Tree(g, terminals)
	if err != nil {
		return Inf, err
	}

	return t.MinCost()
}

// Tree fills the cost table for g and terminals (terminal i is bit i) and
// returns a view of it.
//
// The returned *Tree aliases the Solver's storage and is invalidated by the
// next Tree or Forest call on the same Solver.
//
// Errors:
//   - ErrNilGraph, ErrNoTerminals, ErrTooManyTerminals, ErrTerminalRange.
//
// Infeasibility is not an error here; it shows up as MinCost returning
// ErrNoSolution.
func (s *Solver) Tree(g *core.Graph, terminals []int) (*Tree, error) {
	if err := validateTerminals(g, terminals); err != nil {
		return nil, err
	}
	if err := s.run(g, terminals); err != nil {
		return nil, err
	}

	return &Tree{
		g:         g,
		terminals: append([]int(nil), terminals...),
		full:      bitmask.Full(len(terminals)),
		cost:      &s.cost,
	}, nil
}

// validateTerminals checks the graph and terminal list preconditions.
func validateTerminals(g *core.Graph, terminals []int) error {
	if g == nil {
		return ErrNilGraph
	}
	if len(terminals) == 0 {
		return ErrNoTerminals
	}
	if len(terminals) > bitmask.MaxTerminals {
		return fmt.Errorf("%w: %d > %d", ErrTooManyTerminals, len(terminals), bitmask.MaxTerminals)
	}
	for i, v := range terminals {
		if !g.HasNode(v) {
			return fmt.Errorf("%w: terminal %d is node %d, want 1..%d", ErrTerminalRange, i, v, g.Order())
		}
	}

	return nil
}

// run executes the tree DP into s.cost.
func (s *Solver) run(g *core.Graph, terminals []int) error {
	n, k := g.Order(), len(terminals)
	full := bitmask.Full(k)

	// 1) Every cell starts unreachable; each terminal alone costs nothing.
	s.cost.reset(n, k)
	for i, v := range terminals {
		s.cost.set(v, bitmask.Bit(i), 0)
	}

	// 2) Relaxation engine; the hook tags improvements with the live mask.
	var relaxOpts []dijkstra.Option
	if hook := s.opts.RelaxHook; hook != nil {
		relaxOpts = append(relaxOpts, dijkstra.WithOnImprove(func(v int, old, new int64) {
			hook(s.mask, v, old, new)
		}))
	}
	var shared *dijkstra.Relaxer
	if s.opts.SharedQueue {
		r, err := dijkstra.NewRelaxer(g, relaxOpts...)
		if err != nil {
			return err
		}
		shared = r
	}

	// 3) Masks ascend, so every proper submask is final before it is read.
	for mask := bitmask.Mask(1); mask <= full; mask++ {
		col := s.cost.column(mask)

		// 3a) Merge two subtrees meeting at the same node.
		for m1 := range bitmask.Submasks(mask) {
			left, right := s.cost.column(m1), s.cost.column(mask^m1)
			for v := 1; v <= n; v++ {
				if c := add(left[v], right[v]); c < col[v] {
					col[v] = c
				}
			}
		}

		// 3b) Grow along edges from every node the merge reached.
		s.mask = mask
		r := shared
		if r == nil {
			var err error
			if r, err = dijkstra.NewRelaxer(g, relaxOpts...); err != nil {
				return err
			}
		}
		if err := r.Relax(col); err != nil {
			return fmt.Errorf("steiner: relax mask %#x: %w", uint32(mask), err)
		}
	}

	return nil
}

// Tree is a read-only view of a filled cost table.
type Tree struct {
	g         *core.Graph
	terminals []int
	full      bitmask.Mask
	cost      *table
}

// Cost returns cost[v][m]: the cheapest tree containing node v and the
// terminals in m, or Inf. Out-of-range arguments yield Inf.
func (t *Tree) Cost(v int, m bitmask.Mask) int64 {
	if !t.g.HasNode(v) || m > t.full {
		return Inf
	}

	return t.cost.at(v, m)
}

// Best returns min over v of cost[v][m]: the Steiner tree cost of the
// terminals in m. The empty mask has no tree and yields Inf.
func (t *Tree) Best(m bitmask.Mask) int64 {
	if m == 0 || m > t.full {
		return Inf
	}
	best := Inf
	for _, c := range t.cost.column(m)[1:] {
		if c < best {
			best = c
		}
	}

	return best
}

// MinCost returns the minimum Steiner tree weight, read at the first
// terminal for the full mask.
//
// Errors:
//   - ErrNoSolution if the terminals are not all connected.
func (t *Tree) MinCost() (int64, error) {
	c := t.cost.at(t.terminals[0], t.full)
	if c >= Inf {
		return Inf, ErrNoSolution
	}

	return c, nil
}

// Terminals returns a copy of the terminal list; index i is bit i.
func (t *Tree) Terminals() []int { return append([]int(nil), t.terminals...) }

// Full returns the mask of all terminals.
func (t *Tree) Full() bitmask.Mask { return t.full }

// Order returns the node count of the underlying graph.
func (t *Tree) Order() int { return t.g.Order() }

// FixedPoint reports whether the table is closed under both DP rules:
// no merge of two submask entries and no single edge lowers any cell.
// It is a verification aid and costs O(3^k·n + 2^k·m).
func (t *Tree) FixedPoint() bool {
	n := t.g.Order()
	for mask := bitmask.Mask(1); mask <= t.full; mask++ {
		col := t.cost.column(mask)
		for m1 := range bitmask.Submasks(mask) {
			left, right := t.cost.column(m1), t.cost.column(mask^m1)
			for v := 1; v <= n; v++ {
				if add(left[v], right[v]) < col[v] {
					return false
				}
			}
		}
		for u := 1; u <= n; u++ {
			for _, a := range t.g.Neighbors(u) {
				if add(col[u], a.Weight) < col[a.To] {
					return false
				}
			}
		}
	}

	return true
}

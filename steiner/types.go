package steiner

import (
	"errors"

	"github.com/katalvlaran/lvsteiner/bitmask"
	"github.com/katalvlaran/lvsteiner/dijkstra"
)

// Inf is the "no known subgraph" cost. Any value ≥ Inf is treated as
// unreachable.
const Inf = dijkstra.Inf

// ExhaustiveLimit bounds the number of non-terminal nodes the exhaustive
// oracle will enumerate subsets of.
const ExhaustiveLimit = 18

// Sentinel errors for Steiner computations.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("steiner: graph is nil")

	// ErrNoTerminals indicates an empty terminal set.
	ErrNoTerminals = errors.New("steiner: no terminals")

	// ErrTooManyTerminals indicates more terminals than a Mask can hold.
	ErrTooManyTerminals = errors.New("steiner: too many terminals")

	// ErrTerminalRange indicates a terminal outside [1, n].
	ErrTerminalRange = errors.New("steiner: terminal out of range")

	// ErrUnequalGroups indicates forest groups of different sizes.
	ErrUnequalGroups = errors.New("steiner: forest groups must have equal size")

	// ErrNoSolution indicates that no tree (or forest) covers the terminals.
	ErrNoSolution = errors.New("steiner: no solution")

	// ErrTooLarge indicates an instance beyond ExhaustiveLimit.
	ErrTooLarge = errors.New("steiner: instance too large for exhaustive search")
)

// Options configures a Solver.
//
// SharedQueue – reuse one relaxation queue across all masks of a solve
//
//	instead of a fresh queue per mask. The queue is cleared before
//	every mask either way.
//
// RelaxHook   – called on every strict decrease of cost[v][mask] during relaxation.
// ForestHook  – called on every write to forest[mask] by the combination step.
type Options struct {
	SharedQueue bool
	RelaxHook   func(mask bitmask.Mask, v int, old, new int64)
	ForestHook  func(mask bitmask.Mask, old, new int64)
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithSharedQueue enables reuse of one relaxation queue across masks.
func WithSharedQueue() Option {
	return func(o *Options) {
		o.SharedQueue = true
	}
}

// WithRelaxHook installs a hook observing relaxation improvements.
func WithRelaxHook(fn func(mask bitmask.Mask, v int, old, new int64)) Option {
	return func(o *Options) {
		o.RelaxHook = fn
	}
}

// WithForestHook installs a hook observing forest combination writes.
func WithForestHook(fn func(mask bitmask.Mask, old, new int64)) Option {
	return func(o *Options) {
		o.ForestHook = fn
	}
}

// DefaultOptions returns a fresh queue per mask and no hooks.
func DefaultOptions() Options {
	return Options{}
}

// add returns a+b, saturating at Inf.
func add(a, b int64) int64 {
	if a >= Inf || b >= Inf {
		return Inf
	}
	if s := a + b; s < Inf {
		return s
	}

	return Inf
}

// Package dijkstra defines sentinel errors and configuration options for
// multi-source relaxation.
package dijkstra

import (
	"errors"
	"math"
)

// Inf marks an unreached node. Entries at or above Inf never seed the heap
// and are never produced by relaxation. It is a quarter of MaxInt64 so that
// the sum of two finite costs cannot overflow.
const Inf = int64(math.MaxInt64 / 4)

// Sentinel errors returned by the relaxation engine.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrDistLength indicates a distance slice that does not cover nodes 0..n.
	ErrDistLength = errors.New("dijkstra: distance slice length must be n+1")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Options configures a relaxation run.
//
// MaxDistance      – relaxed distances above this cap are not recorded (default Inf).
// InfEdgeThreshold – edges with weight ≥ threshold are impassable (default: none).
// OnImprove        – called with (v, old, new) whenever dist[v] strictly decreases.
type Options struct {
	MaxDistance      int64
	InfEdgeThreshold int64
	OnImprove        func(v int, old, new int64)
}

// Option represents a functional option for configuring relaxation.
type Option func(*Options)

// WithMaxDistance caps the distances relaxation may record.
// Panics on a negative value.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Panics on zero or a negative value.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithOnImprove installs a hook invoked on every strict decrease of dist[v].
// A nil fn clears the hook.
func WithOnImprove(fn func(v int, old, new int64)) Option {
	return func(o *Options) {
		o.OnImprove = fn
	}
}

// DefaultOptions returns the defaults: no distance cap, no impassable edges,
// no hook.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      Inf,
		InfEdgeThreshold: math.MaxInt64,
		OnImprove:        nil,
	}
}

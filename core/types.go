// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and Arc types, sentinel errors, GraphOption and NewGraph.

package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction.
var (
	// ErrBadOrder indicates that a graph was requested with fewer than one node.
	ErrBadOrder = errors.New("core: graph must have at least one node")

	// ErrNodeRange indicates an edge endpoint outside [1, n].
	ErrNodeRange = errors.New("core: node out of range")

	// ErrNegativeWeight indicates a negative edge weight.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrWeightRange indicates an edge weight above MaxWeight.
	ErrWeightRange = errors.New("core: edge weight too large")
)

// MaxWeight is the largest accepted edge weight. It keeps the sum of any
// path over a few thousand edges far below math.MaxInt64, so solvers can
// add costs without overflow checks on every step.
const MaxWeight = int64(math.MaxInt32)

// Edge is one undirected (From, To, Weight) triple as it was added.
type Edge struct {
	From   int
	To     int
	Weight int64
}

// Arc is one direction of an Edge as seen from an endpoint.
type Arc struct {
	To     int   // neighbor node
	Weight int64 // weight of the underlying edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdgeCapacity preallocates storage for m edges.
// Panics on negative m; option constructors validate eagerly.
func WithEdgeCapacity(m int) GraphOption {
	if m < 0 {
		panic("core: WithEdgeCapacity(m<0)")
	}
	return func(g *Graph) {
		g.edges = make([]Edge, 0, m)
	}
}

// Graph is a weighted undirected multigraph over nodes 1..n.
//
// adj[u] lists the arcs leaving u in insertion order; adj[0] is unused so
// node IDs index the slice directly.
type Graph struct {
	n     int
	adj   [][]Arc
	edges []Edge
}

// NewGraph creates an empty graph with nodes 1..n.
//
// Errors:
//   - ErrBadOrder if n < 1.
//
// Complexity: O(n) time and space.
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := &Graph{
		n:   n,
		adj: make([][]Arc, n+1),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// FromEdges builds a graph with nodes 1..n from the given edges, stopping at
// the first invalid one.
//
// Complexity: O(n + m).
func FromEdges(n int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(n, WithEdgeCapacity(len(edges)))
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		if err = g.AddEdge(e.From, e.To, e.Weight); err != nil {
			return nil, err
		}
	}

	return g, nil
}

// SPDX-License-Identifier: MIT
//
// File: graph.go
// Role: Edge insertion and read-only queries over Graph.
// Determinism:
//   - Neighbors(u) returns arcs in insertion order.
//   - Edges() returns edges in insertion order.

package core

import "fmt"

// AddEdge inserts the undirected edge u—v with weight w.
//
// Both directions are appended to the adjacency lists; a self-loop (u == v)
// appears twice in Neighbors(u), once per direction, exactly as it would for
// any other edge. Parallel edges are kept.
//
// Errors:
//   - ErrNodeRange if u or v is outside [1, n].
//   - ErrNegativeWeight if w < 0.
//   - ErrWeightRange if w > MaxWeight.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) error {
	// 1) Endpoints must be real nodes.
	if !g.HasNode(u) || !g.HasNode(v) {
		return fmt.Errorf("%w: edge %d—%d with n=%d", ErrNodeRange, u, v, g.n)
	}

	// 2) Weight domain.
	if w < 0 {
		return fmt.Errorf("%w: edge %d—%d weight=%d", ErrNegativeWeight, u, v, w)
	}
	if w > MaxWeight {
		return fmt.Errorf("%w: edge %d—%d weight=%d", ErrWeightRange, u, v, w)
	}

	// 3) Record the edge and both arcs.
	g.edges = append(g.edges, Edge{From: u, To: v, Weight: w})
	g.adj[u] = append(g.adj[u], Arc{To: v, Weight: w})
	g.adj[v] = append(g.adj[v], Arc{To: u, Weight: w})

	return nil
}

// HasNode reports whether u is in [1, n].
func (g *Graph) HasNode(u int) bool {
	return u >= 1 && u <= g.n
}

// Order returns the number of nodes n.
func (g *Graph) Order() int { return g.n }

// Size returns the number of edges added so far.
func (g *Graph) Size() int { return len(g.edges) }

// Neighbors returns the arcs leaving u in insertion order.
//
// The returned slice is the graph's own storage: treat it as read-only.
// The caller must pass a node in [1, n]; other values panic with an index
// error, matching the package's validate-at-ingestion contract.
//
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []Arc {
	return g.adj[u]
}

// Degree returns the number of arcs leaving u (a self-loop counts twice).
func (g *Graph) Degree(u int) int {
	return len(g.adj[u])
}

// Edges returns a copy of all edges in insertion order.
//
// Complexity: O(m).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

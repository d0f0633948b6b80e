// Package core provides the compact in-memory graph store used by the
// Steiner solvers: a weighted, undirected multigraph over dense integer
// node identifiers 1..n.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Nodes are the integers 1..n fixed at construction (NewGraph(n)).
//   - Edges are undirected (u, v, w) triples with non-negative int64 weight.
//   - Parallel edges and self-loops are retained exactly as given; nothing
//     is collapsed or deduplicated at ingestion.
//   - Adjacency is a slice of Arc per node, in insertion order, so every
//     traversal over the graph is deterministic.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) (*Graph, error) // O(n)
//	FromEdges(n int, edges []Edge) (*Graph, error)        // O(n+m)
//	AddEdge(u, v int, w int64) error                      // O(1) amortized
//	Neighbors(u int) []Arc                                // O(1), read-only view
//	Edges() []Edge                                        // O(m), copy
//	Order() int / Size() int / Degree(u int) int          // O(1)
//	Components() []int                                    // O(n+m), BFS labels
//
// Lifecycle:
//
//	A Graph is built once per query and then only read. Mutation after the
//	graph has been handed to a solver is not supported, and the type holds
//	no locks: synchronize externally if you share one across goroutines.
//
// Errors:
//
//	ErrBadOrder       – n < 1 at construction
//	ErrNodeRange      – an endpoint outside [1, n]
//	ErrNegativeWeight – w < 0
//	ErrWeightRange    – w > MaxWeight
//
// Validation happens here, at the ingestion boundary. Downstream solvers
// assume a graph built through this package and do not re-check it.
package core

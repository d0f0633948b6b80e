// Package mst computes minimum spanning trees of node-induced subgraphs of
// a *core.Graph with Kruskal's algorithm.
//
// What & Why
//
//   - Given a node set S, the induced subgraph G[S] keeps exactly the edges
//     with both endpoints in S. Its MST is the cheapest tree spanning S
//     using only those edges.
//   - The minimum Steiner tree for a terminal set T equals the minimum over
//     all S ⊇ T of MST(G[S]) when weights are non-negative. The exhaustive
//     Steiner oracle enumerates S and calls Induced for each candidate, so
//     edges are sorted once (SortedEdges) and reused for every subset.
//
// Algorithm
//
//   - Strategy: scan edges by ascending weight, union endpoints that lie in
//     different components (union by rank, path halving), stop at |S|-1
//     edges.
//   - Time:  O(E log E) for the one-off sort, O(E·α(V)) per Induced call.
//   - Space: O(V + E).
//   - Determinism: SortedEdges uses a stable sort, so equal weights keep
//     insertion order.
//
// Error Conditions
//
//   - ErrNilGraph      graph is nil.
//   - ErrEmptySubset   the node set is empty.
//   - ErrDisconnected  G[S] is not connected.
//   - ErrSubsetLength  a membership slice of the wrong length.
//   - core.ErrNodeRange a node outside [1, n] was requested.
package mst

// Package lvsteiner computes minimum Steiner trees and balanced Steiner
// forests on weighted undirected graphs with a handful of terminals.
//
// 🚀 What is lvsteiner?
//
//	A small, exact solver built around the classic subset dynamic program:
//		• Steiner tree: cheapest connected subgraph spanning all terminals
//		• Steiner forest: cheapest set of trees, each joining as many group-A
//		  terminals as group-B terminals
//		• Exhaustive oracle: brute force over induced MSTs for cross-checking
//		• Generators: paths, cycles, stars, grids and seeded random instances
//
// ✨ Why choose lvsteiner?
//
//   - Exact – O(3^k·n + 2^k·(n+m) log n), practical up to k ≈ 12 terminals
//   - Observable – hooks on every relaxation and every forest combination
//   - Reusable storage – one Solver answers many cases without reallocating
//   - Verified – every answer can be checked against exhaustive search
//
// Under the hood, everything is organized under these subpackages:
//
//	core/      - Graph store: nodes 1..n, validated weighted edges, components
//	bitmask/   - terminal masks, submask iteration, the balance predicate
//	dijkstra/  - multi-source relaxation over a caller-owned distance slice
//	mst/       - Kruskal over node-induced subgraphs (exhaustive oracle)
//	steiner/   - Solver, Tree, Forest, Exhaustive, ExhaustiveForest
//	builder/   - deterministic instance generators
//	cmd/lvsteiner - CLI: tree, forest and gen commands
//
// Quick ➡️ example:
//
//	g, _ := core.FromEdges(4, []core.Edge{
//		{From: 4, To: 1, Weight: 1}, {From: 4, To: 2, Weight: 1}, {From: 4, To: 3, Weight: 1},
//	})
//	w, err := steiner.SolveTree(g, []int{1, 2, 3})
//	// w == 3, err == nil
package lvsteiner

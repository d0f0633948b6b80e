// Package steiner computes minimum Steiner trees and balanced Steiner
// forests on weighted undirected graphs with a small terminal set.
//
// What & Why
//
//   - Steiner tree: given terminals s_0..s_{k-1}, find the cheapest connected
//     subgraph containing all of them, possibly routing through other
//     ("Steiner") nodes.
//   - Steiner forest: terminals come in two equal groups A and B of size h.
//     Find the cheapest collection of trees such that every tree connects as
//     many A terminals as B terminals, and every terminal is covered.
//
// Algorithm (subset DP)
//
//	cost[v][mask] = cheapest tree that contains node v and the terminals in mask.
//
//	init:   cost[s_i][1<<i] = 0, everything else Inf
//	for mask = 1 .. (1<<k)-1 ascending:
//	    merge: cost[v][mask] = min over non-empty proper m1 ⊂ mask of
//	           cost[v][m1] + cost[v][mask^m1]            (all v first)
//	    relax: multi-source Dijkstra over the mask column, seeded with the
//	           merged values (package dijkstra)
//	answer: cost[s_0][full]
//
//	forest[mask] = min over v of cost[v][mask]
//	for balanced mask ascending, for balanced m1 ⊂ mask:
//	    forest[mask] = min(forest[mask], forest[m1] + forest[mask^m1])
//	answer: forest[full]
//
// Complexity
//
//   - Time:  O(3^k · n + 2^k · (n + m) log n).
//   - Space: O(2^k · n) for the cost table; O(2^k) for the forest table.
//
// Storage
//
//	The cost table is one flat []int64 laid out mask-major, so the column of
//	a mask is a contiguous slice the relaxation engine updates in place.
//	A Solver owns the storage and resets it to Inf on every solve; results
//	alias that storage and stay valid until the Solver's next call.
//	TableBytes(n, k) gives the size up front; callers use it to refuse
//	instances that would not fit in memory.
//
// Errors
//
//   - ErrNilGraph, ErrNoTerminals, ErrTooManyTerminals, ErrTerminalRange,
//     ErrUnequalGroups: precondition violations, returned before any work.
//   - ErrNoSolution: the instance is infeasible (terminals in different
//     components). This is an answer, not a failure.
//   - ErrTooLarge: the exhaustive oracle refuses instances it cannot
//     enumerate.
//
// Preconditions
//
//	The graph must come from package core, which validates node ranges and
//	weights on insertion. Terminals are checked for range and count here;
//	nothing else about the graph is re-validated.
//
// Thread safety
//
//	A Solver is single-goroutine state. Separate goroutines need separate
//	Solvers.
package steiner

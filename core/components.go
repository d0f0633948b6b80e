// SPDX-License-Identifier: MIT
//
// File: components.go
// Role: Connected-component labelling by breadth-first search.

package core

// Components labels every node with the index of its connected component.
//
// The result has length n+1; entry 0 is unused and set to -1. Components are
// numbered 0, 1, 2, … in order of their smallest node, so labels are stable
// for a given graph.
//
// Complexity: O(n + m) time, O(n) space.
func (g *Graph) Components() []int {
	label := make([]int, g.n+1)
	for i := range label {
		label[i] = -1
	}

	queue := make([]int, 0, g.n)
	next := 0
	for s := 1; s <= g.n; s++ {
		if label[s] >= 0 {
			continue
		}

		// Flood the component of s.
		label[s] = next
		queue = append(queue[:0], s)
		for len(queue) > 0 {
			u := queue[0]
			queue = queue[1:]
			for _, a := range g.adj[u] {
				if label[a.To] < 0 {
					label[a.To] = next
					queue = append(queue, a.To)
				}
			}
		}
		next++
	}

	return label
}

// Connected reports whether all given nodes lie in one component.
// An empty or single-node set is trivially connected.
//
// Complexity: O(n + m).
func (g *Graph) Connected(nodes ...int) bool {
	if len(nodes) < 2 {
		return true
	}
	label := g.Components()
	first := label[nodes[0]]
	for _, u := range nodes[1:] {
		if label[u] != first {
			return false
		}
	}

	return true
}

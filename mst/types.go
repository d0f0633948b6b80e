package mst

import "errors"

// ErrNilGraph indicates that a nil *core.Graph was passed.
var ErrNilGraph = errors.New("mst: graph is nil")

// ErrEmptySubset indicates that no node was selected, so there is nothing to span.
var ErrEmptySubset = errors.New("mst: empty node subset")

// ErrSubsetLength indicates a membership slice that does not cover nodes 0..n.
var ErrSubsetLength = errors.New("mst: membership slice length must be n+1")

// ErrDisconnected indicates that the selected nodes cannot be spanned by a
// tree using only edges between them.
var ErrDisconnected = errors.New("mst: induced subgraph is disconnected")

// dsu is a disjoint-set forest over node IDs 0..n.
type dsu struct {
	parent []int
	rank   []int
}

func newDSU(n int) *dsu {
	d := &dsu{parent: make([]int, n+1), rank: make([]int, n+1)}
	d.reset()

	return d
}

// reset makes every node its own singleton set.
func (d *dsu) reset() {
	for i := range d.parent {
		d.parent[i] = i
		d.rank[i] = 0
	}
}

// find walks to the root, halving the path on the way.
func (d *dsu) find(u int) int {
	for d.parent[u] != u {
		d.parent[u] = d.parent[d.parent[u]]
		u = d.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (d *dsu) union(u, v int) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	// Attach smaller-rank tree under larger-rank root.
	switch {
	case d.rank[ru] < d.rank[rv]:
		d.parent[ru] = rv
	case d.rank[ru] > d.rank[rv]:
		d.parent[rv] = ru
	default:
		d.parent[rv] = ru
		d.rank[ru]++
	}

	return true
}

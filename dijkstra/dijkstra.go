// Package dijkstra implements multi-source Dijkstra relaxation over a
// caller-owned distance slice.
//
// Notes on implementation choices:
//
//   - Every finite dist[v] seeds the heap, so the sources are "nodes already
//     achieving some cost" rather than a single start vertex.
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries once their node is visited.
//   - We treat any edge with weight ≥ InfEdgeThreshold as impassable.
package dijkstra

import (
	"container/heap"

	"github.com/katalvlaran/lvsteiner/core"
)

// Relaxer holds the heap and visited marker for repeated relaxations over
// one graph.
//
// Contract: Relax clears the heap and the visited marker before it seeds,
// and drains the heap before it returns. Pending() is therefore zero
// between calls.
type Relaxer struct {
	g       *core.Graph // The input graph; read-only.
	options Options     // Thresholds and hook.
	visited []bool      // visited[v] once v's distance is final in this run.
	pq      nodePQ      // Min-heap of nodeItem for the lazy priority queue.
}

// NewRelaxer prepares a reusable Relaxer for g.
//
// Errors:
//   - ErrNilGraph if g is nil.
//
// Complexity: O(V) to allocate the visited marker.
func NewRelaxer(g *core.Graph, opts ...Option) (*Relaxer, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Relaxer{
		g:       g,
		options: cfg,
		visited: make([]bool, g.Order()+1),
		pq:      make(nodePQ, 0, g.Order()),
	}, nil
}

// MultiSource relaxes dist in place over g with a fresh queue.
// See Relaxer.Relax for the contract on dist.
func MultiSource(g *core.Graph, dist []int64, opts ...Option) error {
	r, err := NewRelaxer(g, opts...)
	if err != nil {
		return err
	}

	return r.Relax(dist)
}

// Reset empties the heap and clears the visited marker.
func (r *Relaxer) Reset() {
	r.pq = r.pq[:0]
	for i := range r.visited {
		r.visited[i] = false
	}
}

// Pending returns the number of entries left in the heap.
func (r *Relaxer) Pending() int { return r.pq.Len() }

// Relax treats every dist[v] < Inf as a source at cost dist[v] and lowers
// each entry to its cheapest reachable value:
//
//	dist[v] = min(dist[v], dist[u] + w(u,v))   until no edge improves.
//
// dist must have length g.Order()+1; index 0 is ignored.
//
// Errors:
//   - ErrDistLength on a wrongly sized slice.
//
// Complexity: O((V + E) log V).
func (r *Relaxer) Relax(dist []int64) error {
	// 1) Validate the slice covers every node.
	if len(dist) != r.g.Order()+1 {
		return ErrDistLength
	}

	// 2) Start empty, whatever a previous run left behind.
	r.Reset()

	// 3) Seed the heap with every node that already has a finite cost.
	for v := 1; v < len(dist); v++ {
		if dist[v] < Inf {
			r.pq = append(r.pq, nodeItem{id: v, dist: dist[v]})
		}
	}
	heap.Init(&r.pq)

	// 4) Main loop.
	r.process(dist)

	return nil
}

// process repeatedly extracts the closest unvisited node and relaxes its arcs.
func (r *Relaxer) process(dist []int64) {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(nodeItem)
		u := item.id

		// 2) Skip stale entries of already finalized nodes.
		if r.visited[u] {
			continue
		}

		// 3) Beyond the cap nothing else may be recorded.
		if item.dist > r.options.MaxDistance {
			r.pq = r.pq[:0]
			break
		}

		// 4) u is final; relax its arcs.
		r.visited[u] = true
		r.relax(u, dist)
	}
}

// relax examines each arc leaving u and lowers the neighbor's distance
// when going through u is strictly cheaper.
func (r *Relaxer) relax(u int, dist []int64) {
	du := dist[u]
	for _, a := range r.g.Neighbors(u) {
		// Skip impassable edges.
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		nd := du + a.Weight
		if nd >= Inf || nd > r.options.MaxDistance {
			continue
		}
		// "<" rather than "≤" avoids pushing duplicates on ties.
		if nd >= dist[a.To] {
			continue
		}

		if r.options.OnImprove != nil {
			r.options.OnImprove(a.To, dist[a.To], nd)
		}
		dist[a.To] = nd
		heap.Push(&r.pq, nodeItem{id: a.To, dist: nd})
	}
}

// nodeItem is a node and the distance it was pushed with.
type nodeItem struct {
	id   int   // node ID
	dist int64 // distance at push time
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending. Outdated
// entries stay in the heap and are skipped when popped.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

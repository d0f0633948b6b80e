// Package dijkstra provides the multi-source shortest-path relaxation that
// drives the Steiner dynamic program.
//
// Overview:
//
//   - Classic Dijkstra starts from one source at distance zero. Here every
//     node may start with its own finite cost: the caller passes a distance
//     slice, every entry below Inf seeds the min-heap, and relaxation lowers
//     dist[v] to dist[u] + w(u,v) wherever that is cheaper.
//   - The Steiner driver hands in one column of its cost table (all nodes for
//     a fixed terminal mask) and gets it back relaxed in place.
//
// Key features:
//
//   - Relaxer owns the heap and the visited marker so they can be reused
//     across many relaxations. Relax always clears both first, and leaves the
//     heap empty on return: the queue is empty at the start of every run.
//   - MultiSource is the one-shot form with a fresh queue per call.
//   - Functional options: WithMaxDistance, WithInfEdgeThreshold, and the
//     WithOnImprove hook called on every strict decrease of dist[v].
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) per relaxation.
//   - Space: O(V + E) for the lazy-decrease-key heap and the visited marker.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:        Relax on a nil *core.Graph.
//   - ErrDistLength:      len(dist) != g.Order()+1.
//   - ErrBadMaxDistance:  panic from WithMaxDistance on a negative value.
//   - ErrBadInfThreshold: panic from WithInfEdgeThreshold on a value ≤ 0.
//
// Thread safety:
//
//   - A Relaxer is single-goroutine state. Use one per goroutine.
package dijkstra

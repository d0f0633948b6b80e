package mst

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/lvsteiner/core"
)

// SortedEdges returns g's edges in ascending weight order with self-loops
// removed. The sort is stable, so ties keep insertion order.
//
// Complexity: O(E log E).
func SortedEdges(g *core.Graph) []core.Edge {
	all := g.Edges()
	edges := all[:0]
	for _, e := range all {
		// Self-loops can never join two components.
		if e.From == e.To {
			continue
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	return edges
}

// Spanner answers many induced-MST queries over one graph, sorting the edges
// once and reusing its union-find storage between calls.
type Spanner struct {
	n     int
	edges []core.Edge
	sets  *dsu
}

// NewSpanner prepares a Spanner for g.
//
// Errors:
//   - ErrNilGraph if g is nil.
func NewSpanner(g *core.Graph) (*Spanner, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return &Spanner{
		n:     g.Order(),
		edges: SortedEdges(g),
		sets:  newDSU(g.Order()),
	}, nil
}

// Span computes the MST of the subgraph induced by the nodes v with
// member[v] == true. member must have length n+1; index 0 is ignored.
//
// Returns the tree edges (in the order they were accepted) and their total
// weight. A single selected node yields an empty tree of weight 0.
//
// Errors:
//   - ErrSubsetLength, ErrEmptySubset, ErrDisconnected.
//
// Complexity: O(E·α(V)).
func (s *Spanner) Span(member []bool) ([]core.Edge, int64, error) {
	return s.span(member, true)
}

// Weight is Span without collecting the edges.
func (s *Spanner) Weight(member []bool) (int64, error) {
	_, w, err := s.span(member, false)

	return w, err
}

func (s *Spanner) span(member []bool, collect bool) ([]core.Edge, int64, error) {
	// 1. Validate and count the selected nodes.
	if len(member) != s.n+1 {
		return nil, 0, ErrSubsetLength
	}
	count := 0
	for v := 1; v <= s.n; v++ {
		if member[v] {
			count++
		}
	}
	if count == 0 {
		return nil, 0, ErrEmptySubset
	}

	// 2. Fresh singleton sets.
	s.sets.reset()

	// 3. Scan edges by ascending weight, keeping only induced ones.
	var (
		tree  []core.Edge
		total int64
		added int
	)
	if collect {
		tree = make([]core.Edge, 0, count-1)
	}
	for _, e := range s.edges {
		if added == count-1 {
			break
		}
		if !member[e.From] || !member[e.To] {
			continue
		}
		if s.sets.union(e.From, e.To) {
			added++
			total += e.Weight
			if collect {
				tree = append(tree, e)
			}
		}
	}

	// 4. Fewer than |S|-1 edges means G[S] is disconnected.
	if added < count-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}

// Kruskal computes the MST of the subgraph of g induced by nodes. With no
// nodes given it spans the whole graph.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - core.ErrNodeRange if a node lies outside [1, n].
//   - ErrDisconnected if the induced subgraph is not connected.
//
// Complexity: O(E log E + E·α(V)).
func Kruskal(g *core.Graph, nodes ...int) ([]core.Edge, int64, error) {
	s, err := NewSpanner(g)
	if err != nil {
		return nil, 0, err
	}

	member := make([]bool, g.Order()+1)
	if len(nodes) == 0 {
		for v := 1; v <= g.Order(); v++ {
			member[v] = true
		}
	}
	for _, v := range nodes {
		if !g.HasNode(v) {
			return nil, 0, fmt.Errorf("%w: node %d", core.ErrNodeRange, v)
		}
		member[v] = true
	}

	return s.Span(member)
}

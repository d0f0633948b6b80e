package steiner_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvsteiner/core"
	"github.com/katalvlaran/lvsteiner/steiner"
)

// benchInstance builds a sparse connected graph: a random spanning path plus
// extra random edges, with terminals spread across the node range.
func benchInstance(b *testing.B, n, extra, k int) (*core.Graph, []int) {
	b.Helper()
	rng := rand.New(rand.NewSource(1))
	g, err := core.NewGraph(n, core.WithEdgeCapacity(n-1+extra))
	if err != nil {
		b.Fatal(err)
	}
	perm := rng.Perm(n)
	for i := 1; i < n; i++ {
		if err = g.AddEdge(perm[i-1]+1, perm[i]+1, int64(1+rng.Intn(100))); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < extra; i++ {
		if err = g.AddEdge(1+rng.Intn(n), 1+rng.Intn(n), int64(1+rng.Intn(100))); err != nil {
			b.Fatal(err)
		}
	}
	terms := make([]int, k)
	for i := range terms {
		terms[i] = 1 + i*(n/k)
	}

	return g, terms
}

func benchmarkTree(b *testing.B, n, extra, k int, opts ...steiner.Option) {
	g, terms := benchInstance(b, n, extra, k)
	s := steiner.NewSolver(opts...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Tree(g, terms); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTree_N100_K6(b *testing.B)  { benchmarkTree(b, 100, 300, 6) }
func BenchmarkTree_N1000_K8(b *testing.B) { benchmarkTree(b, 1000, 3000, 8) }
func BenchmarkTree_N1000_K8_Shared(b *testing.B) {
	benchmarkTree(b, 1000, 3000, 8, steiner.WithSharedQueue())
}

func BenchmarkForest_N200_H4(b *testing.B) {
	g, terms := benchInstance(b, 200, 600, 8)
	s := steiner.NewSolver()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Forest(g, terms[:4], terms[4:]); err != nil {
			b.Fatal(err)
		}
	}
}

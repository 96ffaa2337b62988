package edgelist_test

import (
	"testing"

	"github.com/graphrep/graphrep/core"
	"github.com/graphrep/graphrep/edgelist"
)

// buildChain creates a directed chain 0→1→…→n-1 with int payloads.
func buildChain(n int) *edgelist.Graph[int, int] {
	g := edgelist.New[int, int]()
	for i := 0; i < n; i++ {
		g.AddNode(core.NewNode(i))
	}
	for i := 0; i < n-1; i++ {
		if _, err := g.AddEdge(core.NewEdge(core.NodeIDFromIndex(i), core.NodeIDFromIndex(i+1), i)); err != nil {
			panic(err)
		}
	}
	return g
}

func BenchmarkGraph_AddNode(b *testing.B) {
	g := edgelist.New[int, int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		g.AddNode(core.NewNode(i))
	}
}

func BenchmarkGraph_AddEdge(b *testing.B) {
	g := edgelist.New[int, int]()
	n1 := g.AddNode(core.NewNode(0))
	n2 := g.AddNode(core.NewNode(1))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.AddEdge(core.NewEdge(n1, n2, i)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGraph_EdgeIteration(b *testing.B) {
	g := buildChain(1 << 12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for id := range g.EdgeIDs() {
			_ = g.EdgeEnd(id)
		}
	}
}

package adjarray_test

import (
	"math/rand"
	"testing"

	"github.com/graphrep/graphrep/adjarray"
	"github.com/graphrep/graphrep/core"
	"github.com/graphrep/graphrep/edgelist"
)

func benchGraph(nodeLen, edgeLen int) *edgelist.Graph[int, int] {
	rng := rand.New(rand.NewSource(7))
	g := edgelist.New[int, int]()
	for i := 0; i < nodeLen; i++ {
		g.AddNode(core.NewNode(i))
	}
	for i := 0; i < edgeLen; i++ {
		start := core.NodeIDFromIndex(rng.Intn(nodeLen))
		end := core.NodeIDFromIndex(rng.Intn(nodeLen))
		if _, err := g.AddEdge(core.NewEdge(start, end, i)); err != nil {
			panic(err)
		}
	}
	return g
}

func BenchmarkFromGraph(b *testing.B) {
	g := benchGraph(1<<12, 1<<15)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = adjarray.FromGraph[int, int](g)
	}
}

func BenchmarkArray_OutEdges(b *testing.B) {
	arr := adjarray.FromGraph[int, int](benchGraph(1<<12, 1<<15))
	nodeLen := arr.NodeLen()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := core.NodeIDFromIndex(i % nodeLen)
		for id := range arr.OutEdges(n) {
			_ = id
		}
	}
}

func BenchmarkArray_EdgeStart(b *testing.B) {
	arr := adjarray.FromGraph[int, int](benchGraph(1<<12, 1<<15))
	edgeLen := arr.EdgeLen()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = arr.EdgeStart(core.EdgeIDFromIndex(i % edgeLen))
	}
}

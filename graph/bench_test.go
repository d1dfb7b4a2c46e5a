package graph_test

import (
	"testing"

	"github.com/katalvlaran/relgraph/graph"
)

// buildChain creates a directed chain 0→1→…→n-1 with zeroed payloads.
func buildChain(n int) *graph.Graph[int, int] {
	g := graph.New[int, int]()
	for i := 0; i < n; i++ {
		g.AddNode(0)
	}
	for i := 0; i < n-1; i++ {
		g.AddEdge(graph.NodeIndex(i), graph.NodeIndex(i+1), i)
	}

	return g
}

// BenchmarkAddEdge measures steady-state edge insertion: one dual
// prepend plus two head updates, O(1) amortized.
func BenchmarkAddEdge(b *testing.B) {
	g := graph.New[int, int]()
	u := g.AddNode(0)
	v := g.AddNode(1)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.AddEdge(u, v, i)
	}
}

// BenchmarkDepthTraverse_Chain10000 measures a full lazy DFS over a
// 10,000-node chain, O(V + E) per traversal.
func BenchmarkDepthTraverse_Chain10000(b *testing.B) {
	g := buildChain(10000)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		walk := g.DepthTraverse(0, graph.Outgoing)
		for _, ok := walk.Next(); ok; _, ok = walk.Next() {
		}
	}
}

// BenchmarkOutgoingEdges_Fanout measures walking one node's adjacency
// list with fan-out 1000; cost is proportional to degree.
func BenchmarkOutgoingEdges_Fanout(b *testing.B) {
	g := graph.New[int, int]()
	hub := g.AddNode(0)
	for i := 1; i <= 1000; i++ {
		g.AddEdge(hub, g.AddNode(i), i)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := g.OutgoingEdges(hub)
		for _, _, ok := it.Next(); ok; _, _, ok = it.Next() {
		}
	}
}

// BenchmarkIterateUntilFixedPoint_Chain measures constraint sweeps on
// a 1000-node chain whose edges were added tail-first, so each sweep
// propagates the mark only one hop: the worst case for sweep count.
func BenchmarkIterateUntilFixedPoint_Chain(b *testing.B) {
	n := 1000
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		g := graph.New[int, int]()
		for j := 0; j < n; j++ {
			g.AddNode(0)
		}
		for j := n - 2; j >= 0; j-- {
			g.AddEdge(graph.NodeIndex(j), graph.NodeIndex(j+1), j)
		}
		*g.MutNodeData(0) = 1
		b.StartTimer()

		_ = g.IterateUntilFixedPoint(func(_ int, _ graph.EdgeIndex, e *graph.Edge[int]) bool {
			if g.NodeData(e.Source()) == 1 && g.NodeData(e.Target()) == 0 {
				*g.MutNodeData(e.Target()) = 1

				return true
			}

			return false
		})
	}
}

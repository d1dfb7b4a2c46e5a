package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/graph"
)

func TestRollback_DiscardsSpeculativeAdditions(t *testing.T) {
	g := graph.New[string, string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	ab := g.AddEdge(a, b, "ab")

	s := g.Snapshot()
	c := g.AddNode("c")
	g.AddEdge(b, c, "bc")
	g.AddEdge(c, a, "ca")
	require.Equal(t, 3, g.NumNodes())
	require.Equal(t, 3, g.NumEdges())

	g.Rollback(s)

	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, "ab", g.EdgeData(ab))
	assert.Panics(t, func() { g.NodeData(c) }, "rolled-back node index is invalid")
	assert.Panics(t, func() { g.EdgeData(1) }, "rolled-back edge index is invalid")
}

// TestRollback_RestoresAdjacencyHeads is the subtle case: AddEdge under
// a savepoint rewires list heads of nodes that predate the savepoint,
// and Rollback must put those heads back.
func TestRollback_RestoresAdjacencyHeads(t *testing.T) {
	g := graph.New[string, string]()
	a := g.AddNode("a")
	b := g.AddNode("b")
	ab := g.AddEdge(a, b, "ab")

	s := g.Snapshot()
	g.AddEdge(a, b, "speculative") // becomes head of both lists
	require.Equal(t, graph.EdgeIndex(1), g.FirstAdjacent(a, graph.Outgoing))

	g.Rollback(s)

	assert.Equal(t, ab, g.FirstAdjacent(a, graph.Outgoing))
	assert.Equal(t, ab, g.FirstAdjacent(b, graph.Incoming))
	assert.Equal(t, []graph.NodeIndex{b}, g.SuccessorNodes(a))
	assert.Equal(t, []graph.NodeIndex{a}, g.PredecessorNodes(b))
}

func TestRollback_ThenRebuildReassignsSameIndices(t *testing.T) {
	g := graph.New[string, string]()
	a := g.AddNode("a")

	s := g.Snapshot()
	dropped := g.AddNode("dropped")
	g.Rollback(s)

	// Indices are dense: the next addition reoccupies the slot.
	replacement := g.AddNode("replacement")
	assert.Equal(t, dropped, replacement)
	assert.Equal(t, "replacement", g.NodeData(replacement))
	assert.Equal(t, graph.NodeIndex(0), a)
}

func TestCommit_KeepsAdditions(t *testing.T) {
	g := graph.New[string, string]()
	a := g.AddNode("a")

	s := g.Snapshot()
	b := g.AddNode("b")
	g.AddEdge(a, b, "ab")
	g.Commit(s)

	assert.Equal(t, 2, g.NumNodes())
	assert.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []graph.NodeIndex{b}, g.SuccessorNodes(a))
}

func TestSnapshots_NestLIFO(t *testing.T) {
	g := graph.New[string, string]()
	a := g.AddNode("a")

	outer := g.Snapshot()
	b := g.AddNode("b")
	g.AddEdge(a, b, "ab")

	inner := g.Snapshot()
	c := g.AddNode("c")
	g.AddEdge(b, c, "bc")

	g.Rollback(inner)
	require.Equal(t, 2, g.NumNodes())
	require.Equal(t, 1, g.NumEdges())
	assert.Equal(t, []graph.NodeIndex{b}, g.SuccessorNodes(a))

	g.Rollback(outer)
	assert.Equal(t, 1, g.NumNodes())
	assert.Equal(t, 0, g.NumEdges())
	assert.Equal(t, graph.InvalidEdgeIndex, g.FirstAdjacent(a, graph.Outgoing))
}

func TestSnapshots_OutOfOrderResolutionPanics(t *testing.T) {
	g := graph.New[string, string]()
	g.AddNode("a")

	outer := g.Snapshot()
	_ = g.Snapshot()

	assert.Panics(t, func() { g.Rollback(outer) })
}

func TestRollback_IndicesStableForSurvivors(t *testing.T) {
	g := createGraph()
	b := graph.NodeIndex(1)

	s := g.Snapshot()
	x := g.AddNode("X")
	g.AddEdge(x, b, "XB")
	g.AddEdge(b, x, "BX")
	g.Rollback(s)

	// The reference graph is untouched: same adjacency, same payloads.
	testAdjacentEdges(t, g, b, "B",
		[][2]string{{"FB", "F"}, {"AB", "A"}},
		[][2]string{{"BD", "D"}, {"BC", "C"}})
	order := drain(g.DepthTraverse(b, graph.Outgoing))
	assert.Equal(t, []string{"B", "D", "E", "C"}, order)
}

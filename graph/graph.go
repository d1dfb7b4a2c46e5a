// This file declares Graph, construction (AddNode, AddEdge), payload
// accessors, linear sweeps, and the graph-level savepoint API.

package graph

import "github.com/katalvlaran/relgraph/arena"

// Graph is an append-only directed multigraph with client payloads N
// on nodes and E on edges.
//
// The graph owns two independent arenas, one for nodes and one for
// edges; their index spaces never interleave. Parallel edges and
// self-loops are permitted. Structure can only grow: there is no
// deletion and no endpoint mutation, only payload mutation and
// savepoint rollback of whole additions.
//
// Indices passed to any method must have been returned by AddNode or
// AddEdge on the same graph; a foreign or rolled-back index is a
// precondition violation and panics at the access site.
type Graph[N, E any] struct {
	nodes *arena.Arena[Node[N]]
	edges *arena.Arena[Edge[E]]
}

// New returns an empty graph.
// Complexity: O(1)
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{
		nodes: arena.New[Node[N]](),
		edges: arena.New[Edge[E]](),
	}
}

// NumNodes reports how many nodes have been added.
// Complexity: O(1)
func (g *Graph[N, E]) NumNodes() int { return g.nodes.Len() }

// NumEdges reports how many edges have been added.
// Complexity: O(1)
func (g *Graph[N, E]) NumEdges() int { return g.edges.Len() }

// NextNodeIndex returns the index the next AddNode call will assign.
// Complexity: O(1)
func (g *Graph[N, E]) NextNodeIndex() NodeIndex {
	return NodeIndex(g.nodes.Len())
}

// NextEdgeIndex returns the index the next AddEdge call will assign.
// Complexity: O(1)
func (g *Graph[N, E]) NextEdgeIndex() EdgeIndex {
	return EdgeIndex(g.edges.Len())
}

// AddNode appends a node with payload data and empty adjacency lists,
// returning its newly assigned index. Never fails.
// Complexity: O(1) amortized
func (g *Graph[N, E]) AddNode(data N) NodeIndex {
	idx := g.NextNodeIndex()
	g.nodes.Push(Node[N]{
		firstEdge: [2]EdgeIndex{InvalidEdgeIndex, InvalidEdgeIndex},
		Data:      data,
	})

	return idx
}

// AddEdge appends an edge source→target with payload data and returns
// its newly assigned index. The new edge is prepended to source's
// outgoing list and target's incoming list, becoming the head of both.
// Panics if either endpoint is not a node of this graph.
// Complexity: O(1) amortized
func (g *Graph[N, E]) AddEdge(source, target NodeIndex, data E) EdgeIndex {
	idx := g.NextEdgeIndex()

	// 1. Read the current list heads of both endpoints.
	sourceFirst := g.nodes.Ptr(int(source)).firstEdge[Outgoing]
	targetFirst := g.nodes.Ptr(int(target)).firstEdge[Incoming]

	// 2. Append the edge with the old heads as its next links.
	g.edges.Push(Edge[E]{
		nextEdge: [2]EdgeIndex{sourceFirst, targetFirst},
		source:   source,
		target:   target,
		Data:     data,
	})

	// 3. Swing both heads to the new edge. The writes go through the
	// arena undo log so savepoint rollback restores them.
	g.nodes.PtrMut(int(source)).firstEdge[Outgoing] = idx
	g.nodes.PtrMut(int(target)).firstEdge[Incoming] = idx

	return idx
}

// Node returns the node record at idx. The adjacency heads inside it
// are private; use FirstAdjacent to read them.
// Complexity: O(1)
func (g *Graph[N, E]) Node(idx NodeIndex) *Node[N] {
	return g.nodes.Ptr(int(idx))
}

// Edge returns the edge record at idx.
// Complexity: O(1)
func (g *Graph[N, E]) Edge(idx EdgeIndex) *Edge[E] {
	return g.edges.Ptr(int(idx))
}

// NodeData returns a copy of the payload of node idx.
// Complexity: O(1)
func (g *Graph[N, E]) NodeData(idx NodeIndex) N {
	return g.nodes.Ptr(int(idx)).Data
}

// MutNodeData returns the payload of node idx for in-place mutation.
// Requires exclusive access to the graph; valid until the next AddNode.
// Complexity: O(1)
func (g *Graph[N, E]) MutNodeData(idx NodeIndex) *N {
	return &g.nodes.PtrMut(int(idx)).Data
}

// EdgeData returns a copy of the payload of edge idx.
// Complexity: O(1)
func (g *Graph[N, E]) EdgeData(idx EdgeIndex) E {
	return g.edges.Ptr(int(idx)).Data
}

// MutEdgeData returns the payload of edge idx for in-place mutation.
// Requires exclusive access to the graph; valid until the next AddEdge.
// Complexity: O(1)
func (g *Graph[N, E]) MutEdgeData(idx EdgeIndex) *E {
	return &g.edges.PtrMut(int(idx)).Data
}

// AllNodes exposes the node arena in creation order, for linear scans.
// The slice is a view into the graph; treat it as read-only.
// Complexity: O(1)
func (g *Graph[N, E]) AllNodes() []Node[N] {
	return g.nodes.All()
}

// AllEdges exposes the edge arena in creation order, for linear scans.
// The slice is a view into the graph; treat it as read-only.
// Complexity: O(1)
func (g *Graph[N, E]) AllEdges() []Edge[E] {
	return g.edges.All()
}

// EachNode invokes f for every node in creation order, stopping early
// when f returns false. Reports whether the sweep ran to completion.
// Complexity: O(V)
func (g *Graph[N, E]) EachNode(f func(NodeIndex, *Node[N]) bool) bool {
	all := g.nodes.All()
	for i := range all {
		if !f(NodeIndex(i), &all[i]) {
			return false
		}
	}

	return true
}

// EachEdge invokes f for every edge in creation order, stopping early
// when f returns false. Reports whether the sweep ran to completion.
// Complexity: O(E)
func (g *Graph[N, E]) EachEdge(f func(EdgeIndex, *Edge[E]) bool) bool {
	all := g.edges.All()
	for i := range all {
		if !f(EdgeIndex(i), &all[i]) {
			return false
		}
	}

	return true
}

// EachEdgeIndex invokes f for every edge index below max in ascending
// order, stopping early when f returns false. Useful for sweeps that
// only need indices, without a graph in hand.
func EachEdgeIndex(max EdgeIndex, f func(EdgeIndex) bool) {
	for i := EdgeIndex(0); i < max; i++ {
		if !f(i) {
			return
		}
	}
}

// GraphSnapshot marks a point in a graph's construction history. It is
// obtained from Graph.Snapshot and resolved exactly once, by Rollback
// or Commit, in LIFO order with respect to other open snapshots.
type GraphSnapshot struct {
	nodes arena.Snapshot
	edges arena.Snapshot
}

// Snapshot opens a savepoint covering both arenas. Later AddNode and
// AddEdge calls (including the adjacency-head rewiring AddEdge
// performs on pre-existing nodes) are recorded until the savepoint is
// resolved.
// Complexity: O(1)
func (g *Graph[N, E]) Snapshot() GraphSnapshot {
	return GraphSnapshot{
		nodes: g.nodes.Snapshot(),
		edges: g.edges.Snapshot(),
	}
}

// Rollback discards every node and edge added since s was taken and
// restores the adjacency lists of surviving nodes. Indices assigned
// after s become invalid for all subsequent use. Panics unless s is
// the innermost open savepoint.
// Complexity: O(additions since s)
func (g *Graph[N, E]) Rollback(s GraphSnapshot) {
	// Arenas resolve in reverse of acquisition order.
	g.edges.Rollback(s.edges)
	g.nodes.Rollback(s.nodes)
}

// Commit keeps everything added since s was taken and closes the
// savepoint. Panics unless s is the innermost open savepoint.
// Complexity: O(1)
func (g *Graph[N, E]) Commit(s GraphSnapshot) {
	g.edges.Commit(s.edges)
	g.nodes.Commit(s.nodes)
}

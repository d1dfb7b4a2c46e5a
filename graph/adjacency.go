// This file declares adjacency traversal: raw list walkers, the
// AdjacentEdges iterator, and the successor/predecessor helpers.

package graph

// FirstAdjacent returns the head of node's direction-dir adjacency
// list, or InvalidEdgeIndex if the list is empty. Together with
// NextAdjacent it lets callers walk the intrusive list by hand, which
// stays valid while the graph grows underneath the walk.
// Complexity: O(1)
func (g *Graph[N, E]) FirstAdjacent(node NodeIndex, dir Direction) EdgeIndex {
	return g.nodes.Ptr(int(node)).firstEdge[dir]
}

// NextAdjacent returns the edge after edge on its direction-dir list,
// or InvalidEdgeIndex at the end of the list.
// Complexity: O(1)
func (g *Graph[N, E]) NextAdjacent(edge EdgeIndex, dir Direction) EdgeIndex {
	return g.edges.Ptr(int(edge)).nextEdge[dir]
}

// AdjacentEdges walks one node's adjacency list in one direction,
// yielding edges most recently added first. Each call to
// Graph.AdjacentEdges produces a fresh, independent iterator; an
// exhausted iterator is not restartable.
type AdjacentEdges[N, E any] struct {
	graph *Graph[N, E]
	dir   Direction
	next  EdgeIndex
}

// AdjacentEdges returns an iterator over node's direction-dir edges in
// reverse insertion order. The iterator must not outlive a structural
// mutation of the graph.
// Complexity: O(1); the full walk is O(degree)
func (g *Graph[N, E]) AdjacentEdges(node NodeIndex, dir Direction) *AdjacentEdges[N, E] {
	return &AdjacentEdges[N, E]{
		graph: g,
		dir:   dir,
		next:  g.FirstAdjacent(node, dir),
	}
}

// OutgoingEdges returns an iterator over the edges leaving source, in
// reverse insertion order.
func (g *Graph[N, E]) OutgoingEdges(source NodeIndex) *AdjacentEdges[N, E] {
	return g.AdjacentEdges(source, Outgoing)
}

// IncomingEdges returns an iterator over the edges arriving at target,
// in reverse insertion order.
func (g *Graph[N, E]) IncomingEdges(target NodeIndex) *AdjacentEdges[N, E] {
	return g.AdjacentEdges(target, Incoming)
}

// Next yields the next (edge index, edge) pair, or ok=false when the
// list is exhausted.
func (it *AdjacentEdges[N, E]) Next() (EdgeIndex, *Edge[E], bool) {
	idx := it.next
	if idx == InvalidEdgeIndex {
		return InvalidEdgeIndex, nil, false
	}

	e := it.graph.Edge(idx)
	it.next = e.nextEdge[it.dir]

	return idx, e, true
}

// SuccessorNodes collects the targets of source's outgoing edges, in
// reverse insertion order. Parallel edges are not deduplicated: a
// neighbor appears once per connecting edge.
// Complexity: O(out-degree)
func (g *Graph[N, E]) SuccessorNodes(source NodeIndex) []NodeIndex {
	var succ []NodeIndex
	it := g.OutgoingEdges(source)
	for _, e, ok := it.Next(); ok; _, e, ok = it.Next() {
		succ = append(succ, e.target)
	}

	return succ
}

// PredecessorNodes collects the sources of target's incoming edges, in
// reverse insertion order. Parallel edges are not deduplicated.
// Complexity: O(in-degree)
func (g *Graph[N, E]) PredecessorNodes(target NodeIndex) []NodeIndex {
	var pred []NodeIndex
	it := g.IncomingEdges(target)
	for _, e, ok := it.Next(); ok; _, e, ok = it.Next() {
		pred = append(pred, e.source)
	}

	return pred
}

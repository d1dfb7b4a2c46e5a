// This file declares the lazy depth-first traversal iterator.

package graph

import "github.com/bits-and-blooms/bitset"

// DepthFirstTraversal lazily walks the nodes reachable from a start
// node, yielding each reachable node's payload exactly once. Cycles
// and parallel edges are handled by the visited set; the walk always
// terminates. The iterator is not restartable: construct a new one
// with DepthTraverse to walk again.
//
// Visitation follows depth-first order with the earliest-walked
// adjacency entry (the most recently added edge) explored first.
type DepthFirstTraversal[N, E any] struct {
	graph   *Graph[N, E]
	dir     Direction
	stack   []NodeIndex
	visited *bitset.BitSet
}

// DepthTraverse returns a depth-first traversal starting at start.
// dir chooses the edge lists followed: Outgoing reaches successors,
// Incoming walks the graph backwards through predecessors. The
// iterator must not outlive a structural mutation of the graph.
// Complexity: O(1); exhausting the walk is O(V + E) worst case
func (g *Graph[N, E]) DepthTraverse(start NodeIndex, dir Direction) *DepthFirstTraversal[N, E] {
	return &DepthFirstTraversal[N, E]{
		graph:   g,
		dir:     dir,
		stack:   []NodeIndex{start},
		visited: bitset.New(uint(g.nodes.Len())),
	}
}

// Next yields the payload of the next newly visited node, or ok=false
// once every reachable node has been yielded.
func (t *DepthFirstTraversal[N, E]) Next() (N, bool) {
	for len(t.stack) > 0 {
		idx := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]

		if t.visited.Test(uint(idx)) {
			continue
		}
		t.visited.Set(uint(idx))

		// Stage unvisited neighbors, then reverse the staged span so
		// the head of the adjacency list ends up on top of the stack
		// and is explored first.
		mark := len(t.stack)
		it := t.graph.AdjacentEdges(idx, t.dir)
		for _, e, ok := it.Next(); ok; _, e, ok = it.Next() {
			if n := e.endpoint(t.dir); !t.visited.Test(uint(n)) {
				t.stack = append(t.stack, n)
			}
		}
		for i, j := mark, len(t.stack)-1; i < j; i, j = i+1, j-1 {
			t.stack[i], t.stack[j] = t.stack[j], t.stack[i]
		}

		return t.graph.NodeData(idx), true
	}

	var zero N

	return zero, false
}

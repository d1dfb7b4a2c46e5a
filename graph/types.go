// Package graph implements an append-only directed multigraph over two
// arenas, with intrusive per-node adjacency lists, lazy depth-first
// traversal, and a fixed-point iteration driver for constraint passes.
//
// Node and edge handles (NodeIndex, EdgeIndex) are dense integers
// assigned in creation order. They are stable for the graph's whole
// lifetime: nothing is ever deleted, moved, or renumbered, so clients
// may retain handles across later mutations and across savepoints.
//
// Edges are stored once, in a central edge arena, and threaded onto two
// singly-linked lists per node: one for outgoing edges and one for
// incoming edges. A node carries the two list heads; an edge carries
// the two next links. Both pairs are selected by a Direction. Adding an
// edge prepends it to the source's outgoing list and the target's
// incoming list, so each list enumerates that node's edges most
// recently added first.
//
// Access discipline: reads (accessors, iterators, traversals) may
// overlap with each other but never with AddNode, AddEdge, the Mut*
// accessors, or savepoint operations. The graph takes no locks; the
// caller owns it exclusively during any mutation.
//
// This file declares NodeIndex, EdgeIndex, Direction, Node, Edge, the
// InvalidEdgeIndex sentinel, and the fixed-point sentinel error.
package graph

import (
	"errors"
	"math"
)

// ErrNoFixedPoint is returned by IterateUntilFixedPoint when a
// WithMaxIterations cap is exceeded before a sweep completes with no
// change.
var ErrNoFixedPoint = errors.New("graph: fixed point not reached within iteration limit")

// NodeIndex identifies a node by its position in the node arena.
// Indices are assigned 0, 1, 2, … in AddNode order and never reused.
type NodeIndex int

// ID returns the raw index value, unique within the owning graph.
func (i NodeIndex) ID() int { return int(i) }

// EdgeIndex identifies an edge by its position in the edge arena.
// Indices are assigned 0, 1, 2, … in AddEdge order and never reused.
type EdgeIndex int

// ID returns the raw index value, unique within the owning graph.
func (i EdgeIndex) ID() int { return int(i) }

// InvalidEdgeIndex is the adjacency-list terminator. It is never a
// valid arena index; the edge arena must stay below this value, which
// is not a practical limit at realistic sizes.
const InvalidEdgeIndex = EdgeIndex(math.MaxInt)

// Direction selects one side of the paired adjacency slots carried by
// nodes (list heads) and edges (next links).
type Direction int

const (
	// Outgoing selects the list of edges leaving a node.
	Outgoing Direction = iota
	// Incoming selects the list of edges arriving at a node.
	Incoming
)

// String returns "Outgoing" or "Incoming".
func (d Direction) String() string {
	if d == Outgoing {
		return "Outgoing"
	}

	return "Incoming"
}

// Node is a graph node: two adjacency-list heads plus the client
// payload. The payload is opaque to the graph and may be mutated in
// place without affecting structure.
type Node[N any] struct {
	// firstEdge[d] heads the intrusive list of this node's edges for
	// direction d; InvalidEdgeIndex when the list is empty.
	firstEdge [2]EdgeIndex

	// Data is the client payload.
	Data N
}

// Edge is a graph edge: two intrusive next links, the endpoints, and
// the client payload.
type Edge[E any] struct {
	// nextEdge[d] continues the direction-d list this edge is
	// threaded onto; InvalidEdgeIndex terminates the list.
	nextEdge [2]EdgeIndex

	source NodeIndex
	target NodeIndex

	// Data is the client payload.
	Data E
}

// Source returns the node this edge leaves.
func (e *Edge[E]) Source() NodeIndex { return e.source }

// Target returns the node this edge arrives at.
func (e *Edge[E]) Target() NodeIndex { return e.target }

// endpoint returns the far end of the edge as seen while walking a
// node's direction-d list: the target for Outgoing, the source for
// Incoming.
func (e *Edge[E]) endpoint(d Direction) NodeIndex {
	if d == Outgoing {
		return e.target
	}

	return e.source
}

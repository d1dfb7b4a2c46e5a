// Package relgraph is an arena-backed directed multigraph for dataflow
// and constraint-propagation passes: the kind of substrate a compiler
// uses for region and lifetime resolution.
//
// What is relgraph?
//
//	A small, append-only graph core that brings together:
//		• Stable integer handles: NodeIndex / EdgeIndex never move or get reused
//		• Intrusive adjacency: every edge lives on two linked lists (outgoing
//		  and incoming) threaded through one central edge arena
//		• O(1) insertion, degree-proportional traversal, zero per-node slices
//		• Transactional savepoints: add speculatively, roll back cleanly
//		• A fixed-point driver for constraint passes that sweep edges
//		  until nothing changes
//		• Lazy depth-first traversal with exactly-once visitation
//
// Why choose relgraph?
//
//   - Handles you can keep: indices stay valid across every later mutation
//   - No deletion, no surprises: the structure only ever grows
//   - Payload-agnostic: node data N and edge data E are yours, never inspected
//
// Everything is organized under two subpackages:
//
//	arena/ — transactional append-only storage with LIFO savepoints
//	graph/ — the Graph[N, E] core, adjacency iterators, DFS, fixed point
//
// Quick ASCII example:
//
//	    A -+> B --> C
//	       |  |     ^
//	       |  v     |
//	       F  D --> E
//
//	six nodes, six edges; B's incoming list reads FB, AB and its
//	outgoing list reads BD, BC (most recently added edge first).
//
// Dive into the graph package docs for the full API.
//
//	go get github.com/katalvlaran/relgraph
package relgraph

// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a graph.Graph, returning
// unweighted shortest-path distances, parent links and visit order, plus a
// BFS-based 2-colouring test (Bipartition).
//
// What
//
//   - BFS explores vertices in non-decreasing edge count from a start vertex
//     and returns a Result with Order, Depth and Parent.
//   - Hooks run at three stages: OnEnqueue, OnDequeue and OnVisit (which may
//     abort the walk with an error).
//   - WithFilterNeighbor prunes individual edges; WithMaxDepth bounds depth.
//   - Bipartition colours the start vertex's component with two sides, or
//     reports that an odd cycle makes this impossible.
//
// Determinism
//
//	graph.Graph lists neighbors in sorted order and BFS enqueues them in that
//	order, so the visit sequence is reproducible.
//
// Direction
//
//	Edges are followed From→To only. Build undirected inputs with
//	graph.AddBidirectionalEdge.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start vertex does not exist.
//   - ErrOptionViolation      if an Option is invalid (e.g. negative MaxDepth).
//   - ErrNeighbors            if the neighbor lookup fails for a vertex.
//   - Wrapped user-supplied hook errors from OnVisit.
//   - Context errors when the context is cancelled.
package bfs

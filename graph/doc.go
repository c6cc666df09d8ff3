// SPDX-License-Identifier: MIT

// Package graph defines Graph[V, W], a thread-safe directed adjacency map
// keyed by vertex names, whose edges carry a weight and a capacity.
//
// Every edge (u, v) lives only in u's entry. A "bidirectional" edge is two
// independent directed entries: AddBidirectionalEdge inserts both, and
// removing one direction with RemoveEdge leaves the other in place. Use
// RemoveBidirectionalEdge to drop both at once.
//
// All listings (Vertices, Neighbors, OutEdges, Edges) are sorted, so
// algorithms built on top of Graph are deterministic.
//
// Concurrency: a single sync.RWMutex guards the adjacency map. Queries take
// the read lock and return copies; mutations take the write lock.
//
// Errors:
//
//	ErrVertexNotFound - operation references a vertex absent from the graph.
//	ErrEdgeNotFound   - RemoveEdge/RemoveBidirectionalEdge on a missing edge.
package graph

// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search traversal, cycle detection and
// topological sort on a graph.Graph. Edges are always followed From→To.
//
// What:
//
//   - DFS explores as far as possible along each branch before
//     backtracking. It supports pre- and post-order hooks, cancellation
//     via context.Context, depth limiting, neighbor filtering and forest
//     traversal (WithFullTraversal).
//   - DetectCycles colours vertices White, Gray and Black and records the
//     cycle closed by every back edge, deduplicated by minimal rotation.
//     Every reported cycle is real, and at least one is reported whenever
//     the graph is cyclic; the list is not an enumeration of all simple
//     cycles.
//   - TopologicalSort orders the vertices of a DAG so that every edge u→v
//     has u before v, or fails with ErrCycleDetected.
//
// Determinism: vertices and neighbors are visited in sorted order, so
// results are reproducible.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycles:    Time O(V+E + C·L), Memory O(V + L_max)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in graph
//   - ErrCycleDetected        cycle discovered by TopologicalSort
//   - ErrNeighborFetch        neighbor lookup failed
//   - context errors          traversal cancelled
//   - hook errors             propagated from OnVisit or OnExit
package dfs

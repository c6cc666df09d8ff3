// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's shortest-path algorithm on
// graph.Graph with non-negative edge weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost distance from one source to every
//     reachable vertex, optionally with predecessors for path recovery.
//   - ShortestPath answers a single pair and stops as soon as the destination
//     is finalized.
//   - Both rely on a min-heap with lazy decrease-key: improved distances are
//     pushed again and stale entries are skipped when popped. Ties are broken
//     by vertex order, so results are deterministic.
//
// Preconditions:
//
//   - Every edge weight must be >= 0. The graph is scanned once up front and
//     a negative weight fails with ErrNegativeWeight instead of producing a
//     wrong answer.
//   - An unreachable destination is not an error: ShortestPath reports
//     found == false.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap may hold one entry per relaxation.
package dijkstra

// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of symmetric weighted
// graphs: Prim's algorithm grows one tree from a root through a min-heap of
// crossing edges, Kruskal's algorithm scans all edges by ascending weight and
// joins components with a disjoint-set forest.
//
// A graph.Graph is directed, so an undirected graph is modelled by adding every
// edge in both directions with the same weight (graph.AddBidirectionalEdge).
// Both algorithms reject graphs where some u→v has no matching v→u of equal
// weight with ErrInvalidGraph.
//
// Determinism:
//
//   - Kruskal sorts the canonical edges (From < To) stably by weight, so ties
//     break by (From, To).
//   - Prim breaks heap ties by (From, To) as well.
//
// Complexity:
//
//   - Kruskal: O(E log E + α(V)·E) time, O(V + E) memory.
//   - Prim:    O(E log V) time, O(V + E) memory.
package prim_kruskal

// SPDX-License-Identifier: MIT

// Package builder assembles deterministic graph fixtures over integer vertex
// IDs: paths, cycles, stars, wheels, complete and complete-bipartite graphs,
// rectangular grids and seeded random sparse graphs.
//
// Constructors are composed by BuildGraph and applied in order to one fresh
// graph.Graph[int, W]. Each constructor adds its vertices starting at the
// configured offset (WithOffset), so several shapes can share a graph without
// ID clashes.
//
// Edges are emitted in both directions unless WithDirected is given, in which
// case only the documented orientation (lower index to higher, or ring order)
// is added. Weights come from the configured WeightFn; the default assigns 1.
//
// Determinism: equal options, seed and constructor order produce identical
// graphs.
package builder

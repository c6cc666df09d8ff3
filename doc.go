// SPDX-License-Identifier: MIT

// Package lvmath is a collection of generic numeric and graph algorithms.
//
// Numbers and linear algebra:
//
//   - numeric:     type constraints (Integer, Float, Number), tolerant comparison, seeded uniform sampling.
//   - vector:      fixed-length Vector[T] with element-wise arithmetic, dot product, norm and sorting.
//   - matrix:      Dense[T], Diagonal[T] and permutation matrices; products, transpose, determinant, rank.
//   - permutation: Permutation, Cycle and Parity; composition, inversion, cycle decomposition.
//   - numtheory:   GCD/LCM, primality, factorisation with an LRU factor cache, divisors and totient.
//   - solver:      scalar root finding and minimisation (bisection, Newton, golden section) under iteration and time budgets.
//
// Graphs:
//
//   - graph:         thread-safe directed Graph[V, W] with weights and capacities.
//   - builder:       deterministic fixture generators (paths, cycles, grids, random sparse graphs).
//   - bfs, dfs:      traversals, bipartition, cycle detection, topological sort.
//   - dijkstra:      single-source shortest paths with non-negative weights.
//   - bellmanford:   single-source shortest paths with negative weights and cycle detection.
//   - floydwarshall: all-pairs shortest paths into a matrix.Dense.
//   - flow:          maximum flow (Edmonds–Karp, Ford–Fulkerson) and minimum cut.
//   - prim_kruskal:  minimum spanning trees.
//
// Every algorithm returns sentinel errors checkable with errors.Is; diagnostic
// logging goes through glog and is silent unless verbosity is raised (-v=1).
package lvmath

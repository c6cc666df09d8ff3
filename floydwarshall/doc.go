// SPDX-License-Identifier: MIT

// Package floydwarshall computes all-pairs shortest paths on a graph.Graph.
//
// Vertices are indexed in sorted order. Distances live in a
// matrix.Dense[W], so the result can be fed straight into the matrix
// package. Weight types have no built-in infinity, so a separate
// reachability table marks which cells hold a real distance.
//
// The main loop runs in the fixed order k → i → j and relaxes only on
// strict improvement, so equal-cost routes resolve deterministically. A
// next-hop table supports path reconstruction.
//
// After the main loop any vertex with a negative self-distance lies on a
// negative-weight cycle, and FloydWarshall fails with ErrNegativeCycle.
//
// Complexity:
//
//   - Time:  O(V³)
//   - Space: O(V²)
package floydwarshall

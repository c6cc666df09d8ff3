// SPDX-License-Identifier: MIT

// Package bellmanford computes single-source shortest paths on graphs whose
// edge weights may be negative.
//
// BellmanFord relaxes every edge |V|-1 times, then makes one more pass: if
// any edge can still be relaxed, a negative-weight cycle is reachable from
// the source and the call fails with ErrNegativeCycle. Otherwise it returns
// a Result holding distances and predecessors for every reachable vertex.
// Unreachable vertices have no distance entry; that is not an error.
//
// Relaxation stops early when a full pass changes nothing.
//
// Complexity:
//
//   - Time:  O(V·E)
//   - Space: O(V)
package bellmanford

// SPDX-License-Identifier: MIT

// Package flow computes maximum flows over the edge capacities of a
// graph.Graph. Edge weights are ignored; only EdgeProperties.Capacity
// matters.
//
// Algorithms:
//
//   - EdmondsKarp: breadth-first search for shortest (fewest-edge)
//     augmenting paths. Time O(V·E²), memory O(V + E).
//   - FordFulkerson: depth-first search for any augmenting path. Time
//     O(E·F) on integral networks, where F is the flow value.
//
// Both return the flow value and the residual graph, whose Capacity fields
// hold remaining forward capacity and accumulated reverse capacity. MinCut
// reads the source side of a minimum cut off that residual graph.
//
// Capacities at or below FlowOptions.Epsilon are treated as zero; negative
// capacities fail with an *EdgeError. Self-loops carry no flow and are
// dropped. Augmentations are logged through glog at verbosity 2.
//
// Both algorithms check ctx between augmentations and return ctx.Err()
// when it is done.
package flow

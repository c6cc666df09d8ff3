// SPDX-License-Identifier: MIT

package flow

import (
	"cmp"
	"context"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// FordFulkerson computes the maximum flow from source→sink by repeatedly
// pushing flow along any augmenting path found by depth-first search.
// Neighbors are explored in sorted order, so runs are deterministic.
//
// Return values and errors match EdmondsKarp.
//
// Complexity: O(E · F) for integral capacities, F = max flow value.
func FordFulkerson[V cmp.Ordered, W numeric.Number](
	ctx context.Context,
	g *graph.Graph[V, W],
	source, sink V,
	opts *FlowOptions,
) (maxFlow W, residual *graph.Graph[V, W], err error) {
	eps := opts.epsilon()
	residual, err = prepare(ctx, g, source, sink, eps)
	if err != nil {
		return 0, nil, err
	}

	for round := 1; ; round++ {
		if err = ctx.Err(); err != nil {
			return maxFlow, residual, err
		}
		path := dfsAugmentingPath(residual, source, sink, eps)
		if len(path) < 2 {
			break
		}
		bottle := capacity(residual, path[0], path[1])
		for i := 1; i+1 < len(path); i++ {
			bottle = min(bottle, capacity(residual, path[i], path[i+1]))
		}
		if log.V(2) {
			log.Infof("flow: ford-fulkerson round %d augments %v by %v", round, path, bottle)
		}
		maxFlow += bottle
		augment(residual, path, bottle, eps)
	}

	return maxFlow, residual, nil
}

// dfsAugmentingPath returns some source→sink path over edges with
// capacity > eps, or nil.
func dfsAugmentingPath[V cmp.Ordered, W numeric.Number](r *graph.Graph[V, W], source, sink V, eps float64) []V {
	parent := make(map[V]V)
	visited := map[V]bool{source: true}
	stack := []V{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == sink {
			return tracePath(parent, source, sink)
		}
		out, err := r.OutEdges(u)
		if err != nil {
			return nil
		}
		for i := len(out) - 1; i >= 0; i-- { // push in reverse so the smallest pops first
			e := out[i]
			if visited[e.To] || float64(e.Capacity) <= eps {
				continue
			}
			visited[e.To] = true
			parent[e.To] = u
			stack = append(stack, e.To)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT

package flow

import (
	"cmp"
	"context"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// EdmondsKarp computes the maximum flow from source→sink using the
// Edmonds–Karp algorithm (BFS for shortest augmenting paths).
//
// It returns:
//   - maxFlow: total flow value
//   - residual: residual-capacity graph after flow
//   - err: ErrGraphNil, ErrSourceNotFound, ErrSinkNotFound, *EdgeError,
//     or ctx.Err().
//
// A nil opts uses defaults.
//
// Complexity: O(V · E²)
// Memory:     O(V + E)
func EdmondsKarp[V cmp.Ordered, W numeric.Number](
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
		path, bottle := bfsAugmentingPath(residual, source, sink, eps)
		if len(path) == 0 {
			break
		}
		if log.V(2) {
			log.Infof("flow: edmonds-karp round %d augments %v by %v", round, path, bottle)
		}
		maxFlow += bottle
		augment(residual, path, bottle, eps)
	}

	return maxFlow, residual, nil
}

// bfsAugmentingPath finds the fewest-edge path source→sink whose edges all
// have capacity > eps, and returns it with its bottleneck capacity.
// Returns nil if no path exists.
func bfsAugmentingPath[V cmp.Ordered, W numeric.Number](
	r *graph.Graph[V, W],
	source, sink V,
	eps float64,
) ([]V, W) {
	parent := make(map[V]V)
	bottle := make(map[V]W)
	visited := map[V]bool{source: true}

	queue := []V{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		out, err := r.OutEdges(u)
		if err != nil {
			return nil, 0
		}
		for _, e := range out {
			v := e.To
			if visited[v] || float64(e.Capacity) <= eps {
				continue
			}
			visited[v] = true
			parent[v] = u
			if u == source || e.Capacity < bottle[u] {
				bottle[v] = e.Capacity
			} else {
				bottle[v] = bottle[u]
			}
			if v == sink {
				return tracePath(parent, source, sink), bottle[sink]
			}
			queue = append(queue, v)
		}
	}

	return nil, 0
}

// tracePath rebuilds source→sink from parent links.
func tracePath[V cmp.Ordered](parent map[V]V, source, sink V) []V {
	n := 1
	for cur := sink; cur != source; cur = parent[cur] {
		n++
	}
	path := make([]V, n)
	for cur, i := sink, n-1; i >= 0; i-- {
		path[i] = cur
		cur = parent[cur]
	}

	return path
}

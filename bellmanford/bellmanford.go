// SPDX-License-Identifier: MIT

package bellmanford

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Sentinel errors returned by BellmanFord.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("bellmanford: source vertex not found in graph")

	// ErrNegativeCycle indicates a negative-weight cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle detected")
)

// Result is the shortest-path table rooted at Source.
type Result[V cmp.Ordered, W numeric.Number] struct {
	Source V

	// Dist maps every reachable vertex to its minimum distance.
	Dist map[V]W

	// Prev maps every reachable vertex except Source to its predecessor.
	Prev map[V]V
}

// Distance reports the shortest distance to v and whether v is reachable.
func (r *Result[V, W]) Distance(v V) (W, bool) {
	d, ok := r.Dist[v]

	return d, ok
}

// PathTo rebuilds the route Source → v from the predecessor table.
// Returns nil, false if v is unreachable.
func (r *Result[V, W]) PathTo(v V) ([]V, bool) {
	if _, ok := r.Dist[v]; !ok {
		return nil, false
	}
	route := []V{v}
	for cur := v; cur != r.Source; {
		cur = r.Prev[cur]
		route = append(route, cur)
	}
	slices.Reverse(route)

	return route, true
}

// BellmanFord computes shortest distances from source.
//
// Returns ErrNilGraph, ErrVertexNotFound, or ErrNegativeCycle (wrapped with
// the offending edge) when a reachable negative cycle exists.
func BellmanFord[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], source V) (*Result[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	edges := g.Edges() // snapshot, sorted by (From, To)
	n := g.VertexCount()
	res := &Result[V, W]{
		Source: source,
		Dist:   map[V]W{source: 0},
		Prev:   make(map[V]V, n),
	}

	var pass int
	for pass = 1; pass < n; pass++ {
		if !relaxAll(res, edges) {
			break
		}
	}

	for _, e := range edges {
		du, ok := res.Dist[e.From]
		if !ok {
			continue
		}
		if dv, seen := res.Dist[e.To]; !seen || du+e.Weight < dv {
			if log.V(1) {
				log.Infof("bellmanford: negative cycle through %v→%v after %d passes", e.From, e.To, pass)
			}

			return nil, fmt.Errorf("%w: edge %v→%v still relaxes", ErrNegativeCycle, e.From, e.To)
		}
	}

	return res, nil
}

// relaxAll performs one relaxation pass and reports whether any distance changed.
func relaxAll[V cmp.Ordered, W numeric.Number](res *Result[V, W], edges []graph.Edge[V, W]) bool {
	changed := false
	for _, e := range edges {
		du, ok := res.Dist[e.From]
		if !ok {
			continue // From not reached yet
		}
		nd := du + e.Weight
		if dv, seen := res.Dist[e.To]; seen && nd >= dv {
			continue
		}
		res.Dist[e.To] = nd
		res.Prev[e.To] = e.From
		changed = true
	}

	return changed
}

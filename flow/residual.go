// SPDX-License-Identifier: MIT

package flow

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// prepare validates the endpoints and builds the initial residual graph:
// every vertex of g, and one edge u→v per positive-capacity edge, carrying
// that capacity. Self-loops are dropped.
// Complexity: O(V + E).
func prepare[V cmp.Ordered, W numeric.Number](
	ctx context.Context,
	g *graph.Graph[V, W],
	source, sink V,
	eps float64,
) (*graph.Graph[V, W], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}
	if !g.HasVertex(sink) {
		return nil, fmt.Errorf("%w: %v", ErrSinkNotFound, sink)
	}

	residual := graph.New[V, W]()
	for _, v := range g.Vertices() {
		residual.AddVertex(v)
	}
	for _, e := range g.Edges() {
		c := float64(e.Capacity)
		if c < -eps {
			return nil, &EdgeError{From: fmt.Sprint(e.From), To: fmt.Sprint(e.To), Cap: c}
		}
		if e.From == e.To || c <= eps {
			continue
		}
		residual.AddEdge(e.From, e.To, 0, graph.WithCapacity(e.Capacity))
	}

	return residual, nil
}

// capacity returns the residual capacity of u→v, zero if absent.
func capacity[V cmp.Ordered, W numeric.Number](r *graph.Graph[V, W], u, v V) W {
	p, _ := r.Edge(u, v)

	return p.Capacity
}

// augment pushes amount along path: forward capacities shrink (edges at or
// below eps are removed) and reverse capacities grow.
func augment[V cmp.Ordered, W numeric.Number](r *graph.Graph[V, W], path []V, amount W, eps float64) {
	for i := 0; i+1 < len(path); i++ {
		u, v := path[i], path[i+1]

		fwd := capacity(r, u, v) - amount
		if float64(fwd) <= eps {
			_ = r.RemoveEdge(u, v) // present: it was just traversed
		} else {
			r.AddEdge(u, v, 0, graph.WithCapacity(fwd))
		}

		r.AddEdge(v, u, 0, graph.WithCapacity(capacity(r, v, u)+amount))
	}
}

// MinCut returns the source side of a minimum cut: every vertex still
// reachable from source through positive residual capacity. Pass the
// residual graph returned by EdmondsKarp or FordFulkerson.
func MinCut[V cmp.Ordered, W numeric.Number](residual *graph.Graph[V, W], source V) ([]V, error) {
	if residual == nil {
		return nil, ErrGraphNil
	}
	if !residual.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrSourceNotFound, source)
	}

	seen := map[V]bool{source: true}
	stack := []V{source}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out, err := residual.OutEdges(u)
		if err != nil {
			return nil, err
		}
		for _, e := range out {
			if seen[e.To] || e.Capacity <= 0 {
				continue
			}
			seen[e.To] = true
			stack = append(stack, e.To)
		}
	}

	side := make([]V, 0, len(seen))
	for _, v := range residual.Vertices() {
		if seen[v] {
			side = append(side, v)
		}
	}

	return side, nil
}

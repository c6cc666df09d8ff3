// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker[V cmp.Ordered, W numeric.Number] struct {
	graph *graph.Graph[V, W]
	opts  Options[V]
	res   *Result[V]
}

// DFS performs depth-first search on g from start. With WithFullTraversal
// it covers every component and start is ignored.
// Returns the partial Result together with any context or hook error.
func DFS[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	vertices := g.Vertices()
	res := &Result[V]{
		Order:   make([]V, 0, len(vertices)),
		Depth:   make(map[V]int, len(vertices)),
		Parent:  make(map[V]V, len(vertices)),
		Visited: make(map[V]bool, len(vertices)),
	}
	walker := &dfsWalker[V, W]{graph: g, opts: o, res: res}

	if !o.FullTraversal {
		return res, walker.traverse(start, 0)
	}
	for _, v := range vertices {
		if res.Visited[v] {
			continue
		}
		if err := walker.traverse(v, 0); err != nil {
			return res, err
		}
	}

	return res, nil
}

// traverse visits v at the given depth and recurses into its neighbors.
func (w *dfsWalker[V, W]) traverse(v V, depth int) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	nbs, err := w.graph.Neighbors(v)
	if err != nil {
		w.res.Order = nil

		return fmt.Errorf("%w: %v: %w", ErrNeighborFetch, v, err)
	}
	for _, nb := range nbs {
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nb) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.res.Visited[nb] {
			continue
		}
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}
		w.res.Parent[nb] = v
		if err = w.traverse(nb, depth+1); err != nil {
			return err
		}
	}

	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(v); err != nil {
			w.res.Order = nil

			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}

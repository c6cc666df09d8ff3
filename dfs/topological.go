// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext sets the cancellation context. A nil ctx is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V cmp.Ordered, W numeric.Number] struct {
	graph *graph.Graph[V, W]
	opts  topoOptions
	state map[V]int
	order []V // post-order
}

// TopologicalSort orders all vertices of g so that every edge u→v has u
// before v. Returns ErrGraphNil, ErrCycleDetected (wrapped with the vertex
// that closed the cycle), ErrNeighborFetch, or a context error.
func TopologicalSort[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], options ...TopoOption) ([]V, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	sorter := &topoSorter[V, W]{
		graph: g,
		opts:  opts,
		state: make(map[V]int, len(verts)),
		order: make([]V, 0, len(verts)),
	}
	for _, v := range verts {
		if sorter.state[v] != White {
			continue
		}
		if err := sorter.visit(v); err != nil {
			return nil, err
		}
	}
	slices.Reverse(sorter.order)

	return sorter.order, nil
}

func (t *topoSorter[V, W]) visit(v V) error {
	if err := t.opts.ctx.Err(); err != nil {
		return err
	}
	switch t.state[v] {
	case Gray:
		return fmt.Errorf("%w: back edge into %v", ErrCycleDetected, v)
	case Black:
		return nil
	}
	t.state[v] = Gray

	nbs, err := t.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNeighborFetch, err)
	}
	for _, nb := range nbs {
		if err = t.visit(nb); err != nil {
			return err
		}
	}

	t.state[v] = Black
	t.order = append(t.order, v)

	return nil
}

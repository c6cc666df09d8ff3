// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

var (
	// ErrInvalidGraph indicates a nil graph or one that is not symmetric.
	ErrInvalidGraph = errors.New("prim_kruskal: MST requires a non-nil symmetric graph")

	// ErrDisconnected indicates that no spanning tree covers every vertex.
	ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

	// ErrUnknownMethod indicates an unsupported Method in Options.
	ErrUnknownMethod = errors.New("prim_kruskal: unknown method")
)

// Method selects the MST algorithm run by Compute.
type Method int

const (
	// MethodKruskal sorts all edges and merges components.
	MethodKruskal Method = iota
	// MethodPrim grows a tree from Options.Root.
	MethodPrim
)

// Options configures Compute.
type Options[V cmp.Ordered] struct {
	Method Method

	// Root is the start vertex for Prim; ignored by Kruskal.
	Root V
	// HasRoot reports whether Root was set; without it Prim starts at the smallest vertex.
	HasRoot bool
}

// Option mutates Options.
type Option[V cmp.Ordered] func(*Options[V])

// WithMethod selects the algorithm.
func WithMethod[V cmp.Ordered](m Method) Option[V] {
	return func(o *Options[V]) { o.Method = m }
}

// WithRoot sets the Prim start vertex.
func WithRoot[V cmp.Ordered](root V) Option[V] {
	return func(o *Options[V]) {
		o.Root = root
		o.HasRoot = true
	}
}

// DefaultOptions selects Kruskal.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{Method: MethodKruskal}
}

// Compute dispatches to Kruskal or Prim according to opts.
func Compute[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], opts ...Option[V]) ([]graph.Edge[V, W], W, error) {
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}

	switch o.Method {
	case MethodKruskal:
		return Kruskal(g)
	case MethodPrim:
		if !o.HasRoot {
			if g == nil {
				return nil, 0, ErrInvalidGraph
			}
			vs := g.Vertices()
			if len(vs) == 0 {
				return nil, 0, ErrDisconnected
			}
			o.Root = vs[0]
		}
		return Prim(g, o.Root)
	default:
		return nil, 0, fmt.Errorf("%w: %d", ErrUnknownMethod, o.Method)
	}
}

// validate checks that every edge has a reverse twin of equal weight.
func validate[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W]) error {
	if g == nil {
		return ErrInvalidGraph
	}
	for _, e := range g.Edges() {
		back, ok := g.Edge(e.To, e.From)
		if !ok || back.Weight != e.Weight {
			return fmt.Errorf("%w: edge %v→%v has no symmetric twin", ErrInvalidGraph, e.From, e.To)
		}
	}

	return nil
}

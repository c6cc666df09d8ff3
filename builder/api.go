// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Constructor mutates g deterministically under the resolved configuration.
type Constructor[W numeric.Number] func(g *graph.Graph[int, W], cfg config[W]) error

// BuildGraph creates a graph, resolves opts and applies cons in order. The
// first constructor error is returned wrapped with "BuildGraph: ".
func BuildGraph[W numeric.Number](opts []Option[W], cons ...Constructor[W]) (*graph.Graph[int, W], error) {
	g := graph.New[int, W]()
	if err := Apply(g, opts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons against an existing graph.
func Apply[W numeric.Number](g *graph.Graph[int, W], opts []Option[W], cons ...Constructor[W]) error {
	if g == nil {
		return fmt.Errorf("nil graph: %w", ErrConstructFailed)
	}
	cfg := newConfig(opts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// link adds u→v, and v→u unless the configuration is directed. One weight is
// drawn per call so both directions agree.
func link[W numeric.Number](g *graph.Graph[int, W], cfg config[W], u, v int) {
	w := cfg.weightFn(cfg.rng)
	if cfg.directed {
		g.AddEdge(cfg.offset+u, cfg.offset+v, w)
		return
	}
	g.AddBidirectionalEdge(cfg.offset+u, cfg.offset+v, w)
}

func addVertices[W numeric.Number](g *graph.Graph[int, W], cfg config[W], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(cfg.offset + i)
	}
}

// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

const (
	minPathNodes  = 1
	minCycleNodes = 3
	minStarNodes  = 2
	minWheelNodes = 4
)

// Path builds P_n on vertices 0..n-1 with edges i→i+1.
// Complexity: O(n).
func Path[W numeric.Number](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < minPathNodes {
			return fmt.Errorf("Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			link(g, cfg, i, i+1)
		}

		return nil
	}
}

// Cycle builds C_n on vertices 0..n-1 with edges i→(i+1) mod n.
// Complexity: O(n).
func Cycle[W numeric.Number](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < minCycleNodes {
			return fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			link(g, cfg, i, (i+1)%n)
		}

		return nil
	}
}

// Star builds a star with center 0 and leaves 1..n-1.
// Complexity: O(n).
func Star[W numeric.Number](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < minStarNodes {
			return fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 1; i < n; i++ {
			link(g, cfg, 0, i)
		}

		return nil
	}
}

// Wheel builds W_n: center 0 with spokes to a ring on 1..n-1.
// Complexity: O(n).
func Wheel[W numeric.Number](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < minWheelNodes {
			return fmt.Errorf("Wheel: n=%d < min=%d: %w", n, minWheelNodes, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		ring := n - 1
		for i := 0; i < ring; i++ {
			link(g, cfg, 1+i, 1+(i+1)%ring)
		}
		for i := 1; i < n; i++ {
			link(g, cfg, 0, i)
		}

		return nil
	}
}

// Complete builds K_n with an edge i→j for every i < j.
// Complexity: O(n²).
func Complete[W numeric.Number](n int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < 1 {
			return fmt.Errorf("Complete: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				link(g, cfg, i, j)
			}
		}

		return nil
	}
}

// CompleteBipartite builds K_{n1,n2}: left part 0..n1-1, right part
// n1..n1+n2-1, every left vertex joined to every right vertex.
// Complexity: O(n1·n2).
func CompleteBipartite[W numeric.Number](n1, n2 int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n1 < 1 || n2 < 1 {
			return fmt.Errorf("CompleteBipartite: n1=%d n2=%d: %w", n1, n2, ErrTooFewVertices)
		}
		addVertices(g, cfg, n1+n2)
		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				link(g, cfg, i, n1+j)
			}
		}

		return nil
	}
}

// Grid builds a rows×cols 4-neighbourhood lattice; cell (r, c) is vertex
// r*cols + c. Horizontal edges are emitted before vertical ones per cell.
// Complexity: O(rows·cols).
func Grid[W numeric.Number](rows, cols int) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: %dx%d: %w", rows, cols, ErrTooFewVertices)
		}
		addVertices(g, cfg, rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if c+1 < cols {
					link(g, cfg, id, id+1)
				}
				if r+1 < rows {
					link(g, cfg, id, id+cols)
				}
			}
		}

		return nil
	}
}

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each pair i < j is
// joined with probability p, drawn in lexicographic pair order.
// Complexity: O(n²).
func RandomSparse[W numeric.Number](n int, p float64) Constructor[W] {
	return func(g *graph.Graph[int, W], cfg config[W]) error {
		if n < 1 {
			return fmt.Errorf("RandomSparse: n=%d < min=1: %w", n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
		}
		addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() < p {
					link(g, cfg, i, j)
				}
			}
		}

		return nil
	}
}

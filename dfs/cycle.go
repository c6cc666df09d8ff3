// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// cycleFinder carries the colouring state of DetectCycles.
type cycleFinder[V cmp.Ordered, W numeric.Number] struct {
	graph  *graph.Graph[V, W]
	state  map[V]int
	path   []V
	seen   map[string]struct{}
	cycles [][]V
}

// DetectCycles reports the directed cycles closed by DFS back edges.
// Each cycle is closed ([v0, …, v0]) and rotated so that its smallest
// vertex comes first; the list is sorted lexicographically.
// A nil graph is cycle-free.
func DetectCycles[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W]) (bool, [][]V, error) {
	if g == nil {
		return false, nil, nil
	}

	verts := g.Vertices()
	f := &cycleFinder[V, W]{
		graph: g,
		state: make(map[V]int, len(verts)),
		path:  make([]V, 0, len(verts)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range verts {
		if f.state[v] != White {
			continue
		}
		if err := f.visit(v); err != nil {
			return false, nil, fmt.Errorf("dfs: DetectCycles: %w", err)
		}
	}
	if len(f.cycles) == 0 {
		return false, nil, nil
	}
	slices.SortFunc(f.cycles, func(a, b []V) int { return slices.Compare(a, b) })

	return true, f.cycles, nil
}

func (f *cycleFinder[V, W]) visit(v V) error {
	f.state[v] = Gray
	f.path = append(f.path, v)

	nbs, err := f.graph.Neighbors(v)
	if err != nil {
		return fmt.Errorf("%w: %v: %w", ErrNeighborFetch, v, err)
	}
	for _, nb := range nbs {
		switch f.state[nb] {
		case White:
			if err = f.visit(nb); err != nil {
				return err
			}
		case Gray:
			f.record(nb)
		}
	}

	f.path = f.path[:len(f.path)-1]
	f.state[v] = Black

	return nil
}

// record stores the cycle running from start (on the current path) back
// to start, unless an equal rotation was already recorded.
func (f *cycleFinder[V, W]) record(start V) {
	idx := slices.Index(f.path, start)
	rot := MinimalRotation(f.path[idx:])
	closed := append(rot, rot[0])

	sig := fmt.Sprint(closed)
	if _, dup := f.seen[sig]; dup {
		return
	}
	f.seen[sig] = struct{}{}
	f.cycles = append(f.cycles, closed)
}

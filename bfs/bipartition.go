// SPDX-License-Identifier: MIT

package bfs

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Side identifies one of the two colour classes of a Partition.
type Side uint8

const (
	// First is the side of the start vertex.
	First Side = iota + 1
	// Second is the opposite side.
	Second
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == First {
		return Second
	}

	return First
}

// Partition is a 2-colouring of the vertices reachable from a start vertex
// such that no edge joins two vertices of the same side.
type Partition[V cmp.Ordered] struct {
	// First holds the start vertex and every vertex an even number of
	// edges away from it, sorted.
	First []V
	// Second holds the remaining reachable vertices, sorted.
	Second []V

	side map[V]Side
}

// SideOf reports which side v belongs to; ok is false when v was not
// reached from the start vertex.
func (p *Partition[V]) SideOf(v V) (side Side, ok bool) {
	side, ok = p.side[v]

	return side, ok
}

// Bipartition 2-colours the component reachable from start by BFS: start
// goes to First and every newly discovered neighbor to the side opposite
// its discoverer. If an edge joins two vertices already on the same side
// the graph is not bipartite and Bipartition returns nil.
//
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input.
// Complexity: O(V + E).
func Bipartition[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], start V) (*Partition[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	side := map[V]Side{start: First}
	queue := []V{start}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]

		neighbors, err := g.Neighbors(u)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, u, err)
		}
		for _, v := range neighbors {
			s, seen := side[v]
			switch {
			case !seen:
				side[v] = side[u].Opposite()
				queue = append(queue, v)
			case s == side[u]:
				return nil, nil
			}
		}
	}

	p := &Partition[V]{side: side}
	for v, s := range side {
		if s == First {
			p.First = append(p.First, v)
		} else {
			p.Second = append(p.Second, v)
		}
	}
	slices.Sort(p.First)
	slices.Sort(p.Second)

	return p, nil
}

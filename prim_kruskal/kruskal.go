// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Kruskal computes a minimum spanning tree of a symmetric graph.
//
// Returned edges are canonical (From < To) in the order they were accepted.
// A graph with one vertex yields an empty tree; an empty graph or one with
// several components yields ErrDisconnected.
//
// Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
func Kruskal[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W]) ([]graph.Edge[V, W], W, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	vertices := g.Vertices()
	switch len(vertices) {
	case 0:
		return nil, 0, ErrDisconnected
	case 1:
		return []graph.Edge[V, W]{}, 0, nil
	}

	// Edges() is sorted by (From, To); keep one direction and drop self-loops.
	all := g.Edges()
	edges := make([]graph.Edge[V, W], 0, len(all)/2)
	for _, e := range all {
		if e.From < e.To {
			edges = append(edges, e)
		}
	}
	slices.SortStableFunc(edges, func(a, b graph.Edge[V, W]) int {
		return cmp.Compare(a.Weight, b.Weight)
	})

	ds := newDisjointSet(vertices)
	mst := make([]graph.Edge[V, W], 0, len(vertices)-1)
	var total W
	for _, e := range edges {
		if !ds.union(e.From, e.To) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == len(vertices)-1 {
			break
		}
	}

	if len(mst) < len(vertices)-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// disjointSet is a union-find forest with path halving and union by rank.
type disjointSet[V comparable] struct {
	parent map[V]V
	rank   map[V]int
}

func newDisjointSet[V comparable](vertices []V) *disjointSet[V] {
	ds := &disjointSet[V]{
		parent: make(map[V]V, len(vertices)),
		rank:   make(map[V]int, len(vertices)),
	}
	for _, v := range vertices {
		ds.parent[v] = v
	}

	return ds
}

func (ds *disjointSet[V]) find(u V) V {
	for ds.parent[u] != u {
		ds.parent[u] = ds.parent[ds.parent[u]]
		u = ds.parent[u]
	}

	return u
}

// union merges the sets of u and v and reports whether they were disjoint.
func (ds *disjointSet[V]) union(u, v V) bool {
	ru, rv := ds.find(u), ds.find(v)
	if ru == rv {
		return false
	}
	switch {
	case ds.rank[ru] < ds.rank[rv]:
		ds.parent[ru] = rv
	case ds.rank[ru] > ds.rank[rv]:
		ds.parent[rv] = ru
	default:
		ds.parent[rv] = ru
		ds.rank[ru]++
	}

	return true
}

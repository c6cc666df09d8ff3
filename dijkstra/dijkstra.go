// SPDX-License-Identifier: MIT

package dijkstra

import (
	"cmp"
	"container/heap"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Dijkstra computes shortest distances from source to every reachable vertex.
//
// Returns:
//
//   - dist: vertex → minimum distance. Unreachable vertices are absent.
//   - prev: vertex → predecessor on a shortest path (nil unless
//     WithReturnPath). The source has no entry.
//   - err:  ErrNilGraph, ErrVertexNotFound or ErrNegativeWeight.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], source V, opts ...Option[W]) (map[V]W, map[V]V, error) {
	cfg := DefaultOptions[W]()
	for _, opt := range opts {
		opt(&cfg)
	}

	r, err := newRunner(g, source, cfg)
	if err != nil {
		return nil, nil, err
	}
	var zero V
	r.run(zero, false)

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns the minimum-weight route from → to. found is false
// (with a nil error) when to is unreachable or absent from the graph.
func ShortestPath[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], from, to V) (Path[V, W], bool, error) {
	r, err := newRunner(g, from, DefaultOptions[W]())
	if err != nil {
		return Path[V, W]{}, false, err
	}
	r.run(to, true)

	d, ok := r.dist[to]
	if !ok {
		return Path[V, W]{}, false, nil
	}
	route := []V{to}
	for v := to; v != from; {
		v = r.prev[v]
		route = append(route, v)
	}
	slices.Reverse(route)

	return Path[V, W]{Vertices: route, Distance: d}, true, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered, W numeric.Number] struct {
	g       *graph.Graph[V, W] // read-only within a run
	options Options[W]
	source  V
	dist    map[V]W    // best known distance from source
	prev    map[V]V    // predecessor on the best known path
	visited map[V]bool // finalized vertices
	pq      nodePQ[V, W]
}

// newRunner validates inputs and seeds the heap with the source.
// Validation order: nil graph, missing source, negative weights.
func newRunner[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], source V, cfg Options[W]) (*runner[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	n := g.VertexCount()
	r := &runner[V, W]{
		g:       g,
		options: cfg,
		source:  source,
		dist:    make(map[V]W, n),
		prev:    make(map[V]V, n),
		visited: make(map[V]bool, n),
		pq:      make(nodePQ[V, W], 0, n),
	}
	r.dist[source] = 0
	heap.Push(&r.pq, &nodeItem[V, W]{id: source, dist: 0})

	return r, nil
}

// run settles vertices in distance order until the heap empties, or until
// target is settled when stopAtTarget is set.
func (r *runner[V, W]) run(target V, stopAtTarget bool) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem[V, W])
		u := item.id
		if r.visited[u] {
			continue // stale entry
		}
		r.visited[u] = true
		if stopAtTarget && u == target {
			return
		}
		r.relax(u)
	}
}

// relax tries to improve every out-neighbor of the settled vertex u.
func (r *runner[V, W]) relax(u V) {
	out, err := r.g.OutEdges(u)
	if err != nil {
		return // u was removed concurrently; nothing to relax
	}
	du := r.dist[u]
	for _, e := range out {
		if r.visited[e.To] {
			continue
		}
		nd := du + e.Weight
		if r.options.HasMaxDistance && nd > r.options.MaxDistance {
			continue
		}
		if cur, seen := r.dist[e.To]; seen && nd >= cur {
			continue
		}
		r.dist[e.To] = nd
		r.prev[e.To] = u
		heap.Push(&r.pq, &nodeItem[V, W]{id: e.To, dist: nd})
	}
}

// nodeItem is a heap entry: a vertex and a tentative distance.
type nodeItem[V cmp.Ordered, W numeric.Number] struct {
	id   V
	dist W
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then vertex.
type nodePQ[V cmp.Ordered, W numeric.Number] []*nodeItem[V, W]

func (pq nodePQ[V, W]) Len() int { return len(pq) }

func (pq nodePQ[V, W]) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

func (pq nodePQ[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ[V, W]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V, W])) }

func (pq *nodePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmath/numeric"
)

// AddVertex registers v. Adding an existing vertex is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddVertex(v V) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(v)
}

// ensureVertex must be called with the write lock held.
func (g *Graph[V, W]) ensureVertex(v V) {
	if _, ok := g.adj[v]; !ok {
		g.adj[v] = make(map[V]EdgeProperties[W])
	}
}

// HasVertex reports whether v is present.
func (g *Graph[V, W]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[v]

	return ok
}

// RemoveVertex deletes v together with its outgoing and incoming edges.
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(V) to scan every entry for incoming edges.
func (g *Graph[V, W]) RemoveVertex(v V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[v]; !ok {
		return fmt.Errorf("RemoveVertex(%v): %w", v, ErrVertexNotFound)
	}
	delete(g.adj, v)
	for _, out := range g.adj {
		delete(out, v)
	}

	return nil
}

// AddEdge inserts or replaces the directed edge from→to, creating missing
// endpoints. Options such as WithCapacity adjust the stored properties.
// Complexity: O(1) amortized.
func (g *Graph[V, W]) AddEdge(from, to V, weight W, opts ...EdgeOption[W]) {
	props := EdgeProperties[W]{Weight: weight}
	for _, opt := range opts {
		opt(&props)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(from)
	g.ensureVertex(to)
	g.adj[from][to] = props
}

// AddBidirectionalEdge inserts a→b and b→a with the same properties. The two
// entries stay independent afterwards.
func (g *Graph[V, W]) AddBidirectionalEdge(a, b V, weight W, opts ...EdgeOption[W]) {
	props := EdgeProperties[W]{Weight: weight}
	for _, opt := range opts {
		opt(&props)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.ensureVertex(a)
	g.ensureVertex(b)
	g.adj[a][b] = props
	g.adj[b][a] = props
}

// RemoveEdge deletes the directed edge from→to only; a reverse edge b→a is
// left untouched.
//
// Errors:
//   - ErrEdgeNotFound: the edge is absent.
func (g *Graph[V, W]) RemoveEdge(from, to V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.adj[from][to]; !ok {
		return fmt.Errorf("RemoveEdge(%v→%v): %w", from, to, ErrEdgeNotFound)
	}
	delete(g.adj[from], to)

	return nil
}

// RemoveBidirectionalEdge deletes both a→b and b→a. If either direction is
// missing nothing is removed and ErrEdgeNotFound is returned.
func (g *Graph[V, W]) RemoveBidirectionalEdge(a, b V) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ab := g.adj[a][b]
	_, ba := g.adj[b][a]
	if !ab || !ba {
		return fmt.Errorf("RemoveBidirectionalEdge(%v↔%v): %w", a, b, ErrEdgeNotFound)
	}
	delete(g.adj[a], b)
	delete(g.adj[b], a)

	return nil
}

// Edge returns the properties of from→to.
func (g *Graph[V, W]) Edge(from, to V) (EdgeProperties[W], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	p, ok := g.adj[from][to]

	return p, ok
}

// HasEdge reports whether from→to exists.
func (g *Graph[V, W]) HasEdge(from, to V) bool {
	_, ok := g.Edge(from, to)

	return ok
}

// Neighbors returns the targets of v's outgoing edges in ascending order.
//
// Errors:
//   - ErrVertexNotFound: v is absent.
//
// Complexity: O(d log d) for out-degree d.
func (g *Graph[V, W]) Neighbors(v V) ([]V, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%v): %w", v, ErrVertexNotFound)
	}
	ids := lo.Keys(out)
	slices.Sort(ids)

	return ids, nil
}

// OutEdges returns v's outgoing edges sorted by target.
func (g *Graph[V, W]) OutEdges(v V) ([]Edge[V, W], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.adj[v]
	if !ok {
		return nil, fmt.Errorf("OutEdges(%v): %w", v, ErrVertexNotFound)
	}

	return sortedEdges(v, out), nil
}

// Vertices returns every vertex in ascending order.
// Complexity: O(V log V).
func (g *Graph[V, W]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := lo.Keys(g.adj)
	slices.Sort(ids)

	return ids
}

// Edges returns every directed edge sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph[V, W]) Edges() []Edge[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	froms := lo.Keys(g.adj)
	slices.Sort(froms)
	var all []Edge[V, W]
	for _, from := range froms {
		all = append(all, sortedEdges(from, g.adj[from])...)
	}

	return all
}

// sortedEdges snapshots one adjacency row ordered by target.
func sortedEdges[V cmp.Ordered, W numeric.Number](from V, out map[V]EdgeProperties[W]) []Edge[V, W] {
	edges := lo.MapToSlice(out, func(to V, p EdgeProperties[W]) Edge[V, W] {
		return Edge[V, W]{From: from, To: to, EdgeProperties: p}
	})
	slices.SortFunc(edges, func(a, b Edge[V, W]) int { return cmp.Compare(a.To, b.To) })

	return edges
}

// VertexCount returns the number of vertices.
func (g *Graph[V, W]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj)
}

// EdgeCount returns the number of directed edges.
func (g *Graph[V, W]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return lo.SumBy(lo.Values(g.adj), func(out map[V]EdgeProperties[W]) int { return len(out) })
}

// Clone returns a deep copy sharing no state with g.
// Complexity: O(V + E).
func (g *Graph[V, W]) Clone() *Graph[V, W] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := New[V, W]()
	for v, out := range g.adj {
		row := make(map[V]EdgeProperties[W], len(out))
		for to, p := range out {
			row[to] = p
		}
		c.adj[v] = row
	}

	return c
}

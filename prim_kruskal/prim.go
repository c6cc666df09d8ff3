// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"cmp"
	"container/heap"
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// Prim computes a minimum spanning tree of a symmetric graph by growing it
// from root.
//
// Returned edges are oriented away from root (From is already in the tree).
// Errors: ErrInvalidGraph, graph.ErrVertexNotFound for an unknown root,
// ErrDisconnected when some vertex cannot be reached.
//
// Complexity: O(E log V) time, O(V + E) memory.
func Prim[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], root V) ([]graph.Edge[V, W], W, error) {
	if err := validate(g); err != nil {
		return nil, 0, err
	}

	n := g.VertexCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if !g.HasVertex(root) {
		return nil, 0, fmt.Errorf("%w: root %v", graph.ErrVertexNotFound, root)
	}
	if n == 1 {
		return []graph.Edge[V, W]{}, 0, nil
	}

	visited := make(map[V]bool, n)
	mst := make([]graph.Edge[V, W], 0, n-1)
	var total W
	pq := &edgePQ[V, W]{}

	// grow marks v as part of the tree and queues its crossing edges.
	grow := func(v V) error {
		visited[v] = true
		out, err := g.OutEdges(v)
		if err != nil {
			return err
		}
		for _, e := range out {
			if !visited[e.To] {
				heap.Push(pq, e)
			}
		}

		return nil
	}

	if err := grow(root); err != nil {
		return nil, 0, err
	}
	for pq.Len() > 0 && len(mst) < n-1 {
		e := heap.Pop(pq).(graph.Edge[V, W])
		if visited[e.To] {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if err := grow(e.To); err != nil {
			return nil, 0, err
		}
	}

	if len(mst) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}

// edgePQ is a min-heap of edges ordered by weight, then (From, To).
type edgePQ[V cmp.Ordered, W numeric.Number] []graph.Edge[V, W]

func (pq edgePQ[V, W]) Len() int { return len(pq) }

func (pq edgePQ[V, W]) Less(i, j int) bool {
	if pq[i].Weight != pq[j].Weight {
		return pq[i].Weight < pq[j].Weight
	}
	if pq[i].From != pq[j].From {
		return pq[i].From < pq[j].From
	}

	return pq[i].To < pq[j].To
}

func (pq edgePQ[V, W]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *edgePQ[V, W]) Push(x any) { *pq = append(*pq, x.(graph.Edge[V, W])) }

func (pq *edgePQ[V, W]) Pop() any {
	old := *pq
	n := len(old)
	e := old[n-1]
	*pq = old[:n-1]

	return e
}

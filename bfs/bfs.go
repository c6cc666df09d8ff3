// SPDX-License-Identifier: MIT

package bfs

import (
	"cmp"
	"context"
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/numeric"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem[V cmp.Ordered] struct {
	id    V
	depth int
}

// walker encapsulates mutable BFS state.
type walker[V cmp.Ordered, W numeric.Number] struct {
	graph   *graph.Graph[V, W]
	opts    Options[V]
	ctx     context.Context
	queue   []queueItem[V]
	visited map[V]bool
	res     *Result[V]
}

// BFS runs breadth-first search on g starting from start. Edge weights are
// ignored; depth counts edges.
// Returns ErrGraphNil, ErrOptionViolation or ErrStartVertexNotFound for
// invalid input, ErrNeighbors for graph failures, a context error on
// cancellation, or any OnVisit hook error.
func BFS[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W], start V, opts ...Option[V]) (*Result[V], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[V]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker[V, W]{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem[V], 0, n),
		visited: make(map[V]bool, n),
		res: &Result[V]{
			Start:  start,
			Order:  make([]V, 0, n),
			Depth:  make(map[V]int, n),
			Parent: make(map[V]V, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue and queues it.
func (w *walker[V, W]) enqueue(id V, d int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem[V]{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[V, W]) loop() error {
	for len(w.queue) > 0 {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[V, W]) dequeue() queueItem[V] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker[V, W]) visit(item queueItem[V]) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbor, recording its parent.
func (w *walker[V, W]) enqueueNeighbors(item queueItem[V]) error {
	neighbors, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("%w: failed to get neighbors of %v: %w", ErrNeighbors, item.id, err)
	}
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range neighbors {
		if w.visited[nbr] || !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, nextDepth)
	}

	return nil
}

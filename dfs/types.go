// SPDX-License-Identifier: MIT

package dfs

import (
	"cmp"
	"context"
	"errors"
)

// Visitation states of a vertex.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *graph.Graph is passed to DFS or
	// TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start vertex does not exist.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a cycle.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNeighborFetch indicates a failure to retrieve neighbors from the graph.
	ErrNeighborFetch = errors.New("dfs: failed to fetch neighbors")
)

// Option configures optional behavior of DFS traversal.
type Option[V cmp.Ordered] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
type Options[V cmp.Ordered] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a vertex is discovered (pre-order).
	// Returning an error aborts traversal.
	OnVisit func(v V) error

	// OnExit, if non-nil, runs after all descendants of a vertex have been
	// explored (post-order), before it is appended to Result.Order.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits recursion depth. 0 visits only the
	// start vertex. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, decides whether to descend into a neighbor.
	FilterNeighbor func(v V) bool

	// FullTraversal restarts DFS from every unvisited vertex, in sorted
	// order, covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hooks, no
// depth limit, no filtering and single-source traversal.
func DefaultOptions[V cmp.Ordered]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the Context for DFS traversal. A nil ctx is ignored.
func WithContext[V cmp.Ordered](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit[V cmp.Ordered](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth to limit.
func WithMaxDepth[V cmp.Ordered](limit int) Option[V] {
	return func(o *Options[V]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false; they are
// counted in Result.SkippedNeighbors.
func WithFilterNeighbor[V cmp.Ordered](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) { o.FilterNeighbor = fn }
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal[V cmp.Ordered]() Option[V] {
	return func(o *Options[V]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[V cmp.Ordered] struct {
	// Order records vertices in the sequence they finished (post-order).
	Order []V

	// Depth maps each vertex to its distance (#edges) from its tree root.
	Depth map[V]int

	// Parent maps each vertex to the vertex it was discovered from.
	// Tree roots have no entry.
	Parent map[V]V

	// Visited flags which vertices were reached.
	Visited map[V]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}

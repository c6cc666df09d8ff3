// SPDX-License-Identifier: MIT

package graph

import (
	"cmp"
	"errors"
	"sync"

	"github.com/katalvlaran/lvmath/numeric"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")
)

// EdgeProperties are the values stored on a directed edge.
type EdgeProperties[W numeric.Number] struct {
	// Weight is the traversal cost used by shortest-path algorithms.
	Weight W

	// Capacity is the upper flow bound used by max-flow algorithms.
	Capacity W
}

// Edge is a snapshot of one directed edge From→To.
type Edge[V cmp.Ordered, W numeric.Number] struct {
	From, To V
	EdgeProperties[W]
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption[W numeric.Number] func(*EdgeProperties[W])

// WithCapacity sets the edge capacity (default zero).
func WithCapacity[W numeric.Number](c W) EdgeOption[W] {
	return func(p *EdgeProperties[W]) { p.Capacity = c }
}

// Graph is a directed weighted graph over ordered vertex names.
//
// adj[u][v] holds the properties of edge u→v. Every vertex has an entry in
// adj, possibly empty, so isolated vertices are representable.
type Graph[V cmp.Ordered, W numeric.Number] struct {
	mu  sync.RWMutex
	adj map[V]map[V]EdgeProperties[W]
}

// New creates an empty Graph.
// Complexity: O(1).
func New[V cmp.Ordered, W numeric.Number]() *Graph[V, W] {
	return &Graph[V, W]{adj: make(map[V]map[V]EdgeProperties[W])}
}

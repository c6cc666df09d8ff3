// SPDX-License-Identifier: MIT

package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates a negative MaxDistance.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options configures the behavior of Dijkstra.
//
// ReturnPath  – if true, Dijkstra returns the predecessor map.
// MaxDistance – vertices farther than this are not settled. Only honored
// when HasMaxDistance is set (see WithMaxDistance).
type Options[W numeric.Number] struct {
	ReturnPath     bool
	MaxDistance    W
	HasMaxDistance bool
}

// Option represents a functional option for configuring Dijkstra.
type Option[W numeric.Number] func(*Options[W])

// WithReturnPath enables the predecessor map in the result.
func WithReturnPath[W numeric.Number]() Option[W] {
	return func(o *Options[W]) { o.ReturnPath = true }
}

// WithMaxDistance caps exploration: vertices whose distance would exceed
// limit are left unreached. Panics on a negative limit (programmer error).
func WithMaxDistance[W numeric.Number](limit W) Option[W] {
	if limit < 0 {
		panic(fmt.Sprintf("%v: %v", ErrBadMaxDistance, limit))
	}

	return func(o *Options[W]) {
		o.MaxDistance = limit
		o.HasMaxDistance = true
	}
}

// DefaultOptions returns Options with no distance cap and no predecessor map.
func DefaultOptions[W numeric.Number]() Options[W] {
	return Options[W]{}
}

// Path is a shortest route and its total weight.
type Path[V any, W numeric.Number] struct {
	// Vertices lists the route from source to destination inclusive.
	Vertices []V

	// Distance is the sum of edge weights along Vertices.
	Distance W
}

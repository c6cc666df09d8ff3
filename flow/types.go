// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceNotFound is returned when the specified source vertex is missing.
	ErrSourceNotFound = errors.New("flow: source vertex not found")

	// ErrSinkNotFound is returned when the specified sink vertex is missing.
	ErrSinkNotFound = errors.New("flow: sink vertex not found")

	// ErrGraphNil is returned when a nil graph is passed.
	ErrGraphNil = errors.New("flow: graph is nil")
)

// EdgeError is returned when an edge has a negative capacity.
type EdgeError struct {
	From, To string
	Cap      float64
}

func (e *EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %s→%s: %g", e.From, e.To, e.Cap)
}

// DefaultEpsilon is the capacity threshold used when FlowOptions is nil or
// its Epsilon is not positive.
const DefaultEpsilon = 1e-9

// FlowOptions configures the max-flow algorithms.
//   - Epsilon: capacities ≤ Epsilon are treated as zero (default 1e-9).
type FlowOptions struct {
	Epsilon float64
}

func (o *FlowOptions) epsilon() float64 {
	if o == nil || o.Epsilon <= 0 {
		return DefaultEpsilon
	}

	return o.Epsilon
}

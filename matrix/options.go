// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// DefaultEpsilon is the relative singular-value cutoff used by Rank on
// floating-point matrices.
const DefaultEpsilon = 1e-12

// Options holds the numeric policy for rank computation.
type Options struct {
	// Epsilon is the relative tolerance below which a singular value (or
	// elimination pivot) counts as zero. Ignored for integer element types.
	Epsilon float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}

// WithEpsilon overrides the rank tolerance.
// Panics if eps is negative or NaN (programmer error).
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic(fmt.Sprintf("matrix: WithEpsilon(%v): epsilon must be a non-negative number", eps))
	}

	return func(o *Options) { o.Epsilon = eps }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// invPhi is 1/φ = (√5 − 1)/2.
var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenSection searches [a, b] for a minimum of the unimodal function f.
// The bracket keeps two interior points at golden-ratio proportions; each
// iteration discards the side beyond the worse point and reuses the better
// one, so f is evaluated once per iteration. Returns the bracket midpoint
// once the width is at most accuracy.
func GoldenSection[T numeric.Float](a, b T, f func(T) T, opts ...Option) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunction
	}
	if a > b || a != a || b != b {
		return Result[T]{}, fmt.Errorf("GoldenSection(%v, %v): %w", a, b, ErrBadInterval)
	}

	o := gatherOptions(opts)
	bud := newBudget(o)
	r := T(invPhi)
	c := b - r*(b-a)
	d := a + r*(b-a)
	fc, fd := f(c), f(d)
	for b-a > T(o.Accuracy) {
		ok, why := bud.next()
		if !ok {
			return finish("golden-section", bud, a+(b-a)/2, why), nil
		}
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - r*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + r*(b-a)
			fd = f(d)
		}
	}

	return finish("golden-section", bud, a+(b-a)/2, Converged), nil
}

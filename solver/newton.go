// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Newton finds a root of f starting from x0. df is the derivative of f;
// when nil it is approximated by the central difference
// (f(x+h) − f(x−h)) / 2h with h = accuracy.
//
// Iteration stops when a step is at most accuracy in magnitude, or when a
// limit is reached. A vanishing derivative fails with ErrZeroDerivative.
func Newton[T numeric.Float](x0 T, f, df func(T) T, opts ...Option) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunction
	}
	o := gatherOptions(opts)
	if df == nil {
		df = centralDifference(f, T(o.Accuracy))
	}

	bud := newBudget(o)
	x := x0
	for {
		ok, why := bud.next()
		if !ok {
			return finish("newton", bud, x, why), nil
		}
		d := df(x)
		if d == 0 {
			return Result[T]{X: x, Iterations: bud.iter}, fmt.Errorf("Newton: f'(%v)=0: %w", x, ErrZeroDerivative)
		}
		step := f(x) / d
		x -= step
		if math.Abs(float64(step)) <= o.Accuracy {
			return finish("newton", bud, x, Converged), nil
		}
	}
}

func centralDifference[T numeric.Float](f func(T) T, h T) func(T) T {
	return func(x T) T {
		return (f(x+h) - f(x-h)) / (2 * h)
	}
}

// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmath/numeric"
)

// Bisection finds a root of f in [a, b]. f(a) and f(b) must differ in sign
// (a zero counts as its own sign) and a ≤ b.
//
// Each iteration halves the bracket, keeping the half whose ends still
// differ in sign. An exact zero at the midpoint stops immediately.
// Complexity: O(log((b−a)/accuracy)) evaluations of f.
func Bisection[T numeric.Float](a, b T, f func(T) T, opts ...Option) (Result[T], error) {
	if f == nil {
		return Result[T]{}, ErrNilFunction
	}
	if a > b || a != a || b != b {
		return Result[T]{}, fmt.Errorf("Bisection(%v, %v): %w", a, b, ErrBadInterval)
	}
	fa, fb := f(a), f(b)
	sa := sign(fa)
	if sa == sign(fb) {
		return Result[T]{}, fmt.Errorf("Bisection: f(%v)=%v, f(%v)=%v: %w", a, fa, b, fb, ErrSameSign)
	}

	o := gatherOptions(opts)
	bud := newBudget(o)
	tol := T(2 * o.Accuracy)
	for b-a > tol {
		ok, why := bud.next()
		if !ok {
			return finish("bisection", bud, a+(b-a)/2, why), nil
		}
		m := a + (b-a)/2
		fm := f(m)
		sm := sign(fm)
		if sm == 0 {
			return finish("bisection", bud, m, Converged), nil
		}
		if sm == sa {
			a = m
		} else {
			b = m
		}
	}

	return finish("bisection", bud, a+(b-a)/2, Converged), nil
}

func sign[T numeric.Float](x T) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	case math.IsNaN(float64(x)):
		return 2
	default:
		return 0
	}
}

// SPDX-License-Identifier: MIT

package vector

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvmath/numeric"
)

// asFloat64 exposes s as []float64 when T is exactly float64, unlocking the
// gonum fast path. Named float types take the generic path.
func asFloat64[T numeric.Number](s []T) ([]float64, bool) {
	f, ok := any(s).([]float64)

	return f, ok
}

// Add returns v + w element-wise.
func (v *Vector[T]) Add(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(opAdd, w); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	if dst, ok := asFloat64(out); ok {
		a, _ := asFloat64(v.data)
		b, _ := asFloat64(w.data)
		floats.AddTo(dst, a, b)

		return &Vector[T]{data: out}, nil
	}
	for i := range out {
		out[i] = v.data[i] + w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Sub returns v - w element-wise.
func (v *Vector[T]) Sub(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(opSub, w); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	if dst, ok := asFloat64(out); ok {
		a, _ := asFloat64(v.data)
		b, _ := asFloat64(w.data)
		floats.SubTo(dst, a, b)

		return &Vector[T]{data: out}, nil
	}
	for i := range out {
		out[i] = v.data[i] - w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Mul returns the element-wise (Hadamard) product v ∘ w.
func (v *Vector[T]) Mul(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(opMul, w); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	if dst, ok := asFloat64(out); ok {
		a, _ := asFloat64(v.data)
		b, _ := asFloat64(w.data)
		floats.MulTo(dst, a, b)

		return &Vector[T]{data: out}, nil
	}
	for i := range out {
		out[i] = v.data[i] * w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// Div returns v / w element-wise. Integer division by a zero element fails
// with ErrDivisionByZero; float division follows IEEE-754.
func (v *Vector[T]) Div(w *Vector[T]) (*Vector[T], error) {
	if err := v.sameLen(opDiv, w); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	if dst, ok := asFloat64(out); ok {
		a, _ := asFloat64(v.data)
		b, _ := asFloat64(w.data)
		floats.DivTo(dst, a, b)

		return &Vector[T]{data: out}, nil
	}
	isFloat := numeric.IsFloat[T]()
	for i := range out {
		if !isFloat && w.data[i] == 0 {
			return nil, vectorErrorf(opDiv, ErrDivisionByZero)
		}
		out[i] = v.data[i] / w.data[i]
	}

	return &Vector[T]{data: out}, nil
}

// AddScalar returns v + c.
func (v *Vector[T]) AddScalar(c T) *Vector[T] {
	out := v.Clone()
	if dst, ok := asFloat64(out.data); ok {
		floats.AddConst(float64(c), dst)

		return out
	}
	for i := range out.data {
		out.data[i] += c
	}

	return out
}

// SubScalar returns v - c.
func (v *Vector[T]) SubScalar(c T) *Vector[T] {
	return v.AddScalar(-c)
}

// Scale returns c·v.
func (v *Vector[T]) Scale(c T) *Vector[T] {
	out := v.Clone()
	out.ScaleInPlace(c)

	return out
}

// ScaleInPlace multiplies every element of v by c without allocating.
func (v *Vector[T]) ScaleInPlace(c T) {
	if dst, ok := asFloat64(v.data); ok {
		floats.Scale(float64(c), dst)

		return
	}
	for i := range v.data {
		v.data[i] *= c
	}
}

// AddInPlace adds w into v element-wise.
func (v *Vector[T]) AddInPlace(w *Vector[T]) error {
	if err := v.sameLen(opAdd, w); err != nil {
		return err
	}
	if dst, ok := asFloat64(v.data); ok {
		s, _ := asFloat64(w.data)
		floats.Add(dst, s)

		return nil
	}
	for i := range v.data {
		v.data[i] += w.data[i]
	}

	return nil
}

// DivScalar returns v / c. Integer division by zero fails.
func (v *Vector[T]) DivScalar(c T) (*Vector[T], error) {
	if c == 0 && !numeric.IsFloat[T]() {
		return nil, vectorErrorf(opDivS, ErrDivisionByZero)
	}
	out := v.Clone()
	for i := range out.data {
		out.data[i] /= c
	}

	return out, nil
}

// Neg returns -v.
func (v *Vector[T]) Neg() *Vector[T] {
	out := v.Clone()
	if dst, ok := asFloat64(out.data); ok {
		floats.Scale(-1, dst)

		return out
	}
	for i := range out.data {
		out.data[i] = -out.data[i]
	}

	return out
}

// Dot returns the inner product Σ v[i]·w[i].
func (v *Vector[T]) Dot(w *Vector[T]) (T, error) {
	if err := v.sameLen(opDot, w); err != nil {
		return 0, err
	}
	if a, ok := asFloat64(v.data); ok {
		b, _ := asFloat64(w.data)

		return T(floats.Dot(a, b)), nil
	}
	var sum T
	for i := range v.data {
		sum += v.data[i] * w.data[i]
	}

	return sum, nil
}

// Norm returns the Euclidean 2-norm as float64.
func (v *Vector[T]) Norm() (float64, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(opNorm, ErrEmptyVector)
	}
	if a, ok := asFloat64(v.data); ok {
		return floats.Norm(a, 2), nil
	}
	var sum float64
	for _, x := range v.data {
		f := float64(x)
		sum += f * f
	}

	return math.Sqrt(sum), nil
}

// Sum returns the sum of all elements (0 for an empty vector).
func (v *Vector[T]) Sum() T {
	if a, ok := asFloat64(v.data); ok {
		return T(floats.Sum(a))
	}
	var sum T
	for _, x := range v.data {
		sum += x
	}

	return sum
}

// Min returns the smallest element.
func (v *Vector[T]) Min() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(opMin, ErrEmptyVector)
	}
	if a, ok := asFloat64(v.data); ok {
		return T(floats.Min(a)), nil
	}

	return slices.Min(v.data), nil
}

// Max returns the largest element.
func (v *Vector[T]) Max() (T, error) {
	if len(v.data) == 0 {
		return 0, vectorErrorf(opMax, ErrEmptyVector)
	}
	if a, ok := asFloat64(v.data); ok {
		return T(floats.Max(a)), nil
	}

	return slices.Max(v.data), nil
}

// SPDX-License-Identifier: MIT
// Package matrix: cross-variant arithmetic.
// Results keep a specialized variant when the operation is closed over it
// (Diagonal±Diagonal, Diagonal×Diagonal, Permutation×Permutation, scaled
// Diagonal) and widen to *Dense otherwise. Inputs are never mutated.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// asFloat64 exposes s as []float64 when T is exactly float64.
func asFloat64[T numeric.Number](s []T) ([]float64, bool) {
	f, ok := any(s).([]float64)

	return f, ok
}

// ToDense returns a *Dense copy of any variant.
// Complexity: O(r*c).
func ToDense[T numeric.Number](m Matrix[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense[T]); ok {
		return d.clone(), nil
	}

	return &Dense[T]{dims: m.Dimensions(), data: m.ElementsList()}, nil
}

// Add returns a + b. Diagonal+Diagonal stays Diagonal; anything else is Dense.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(min(r,c)) for diagonals, O(r*c) otherwise.
func Add[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, false, opAdd) }

// Sub returns a - b with the same variant rules as Add.
func Sub[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) { return addSub(a, b, true, opSub) }

func addSub[T numeric.Number](a, b Matrix[T], negate bool, op string) (Matrix[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(op, err)
	}
	combine := func(x, y T) T {
		if negate {
			return x - y
		}

		return x + y
	}

	da, okA := a.(*Diagonal[T])
	db, okB := b.(*Diagonal[T])
	if okA && okB {
		out := da.clone()
		for k := range out.diag {
			out.diag[k] = combine(da.diag[k], db.diag[k])
		}

		return out, nil
	}

	left, err := ToDense(a)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	right := b.ElementsList()
	if dst, ok := asFloat64(left.data); ok {
		src, _ := asFloat64(right)
		if negate {
			floats.Sub(dst, src)
		} else {
			floats.Add(dst, src)
		}

		return left, nil
	}
	for k := range left.data {
		left.data[k] = combine(left.data[k], right[k])
	}

	return left, nil
}

// Mul returns the matrix product a×b; a.Cols must equal b.Rows.
//   - Permutation×Permutation: the permutation of the composite map.
//   - Diagonal×Diagonal: Diagonal with entry-wise products.
//   - otherwise Dense; float64 operands use gonum mat.Dense.Mul.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Mul[T numeric.Number](a, b Matrix[T]) (Matrix[T], error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if a.Cols() != b.Rows() {
		return nil, fmt.Errorf("%s: %v × %v: %w", opMul, a.Dimensions(), b.Dimensions(), ErrDimensionMismatch)
	}

	switch x := a.(type) {
	case *PermutationMatrix[T]:
		if y, ok := b.(*PermutationMatrix[T]); ok {
			// row i of P_a·P_b is e_{b(a(i))}
			p, err := y.perm.Compose(x.perm)
			if err != nil {
				return nil, matrixErrorf(opMul, err)
			}

			return &PermutationMatrix[T]{perm: p}, nil
		}
	case *Diagonal[T]:
		if y, ok := b.(*Diagonal[T]); ok {
			dims := Dimensions{rows: x.dims.rows, cols: y.dims.cols}
			diag := make([]T, dims.Minimum())
			for k := range diag {
				if k < len(x.diag) && k < len(y.diag) {
					diag[k] = x.diag[k] * y.diag[k]
				}
			}

			return &Diagonal[T]{dims: dims, diag: diag}, nil
		}
	}

	return mulDense(a, b), nil
}

// mulDense multiplies via i→k→j over row-major copies, skipping zero a(i,k).
func mulDense[T numeric.Number](a, b Matrix[T]) *Dense[T] {
	r, inner, c := a.Rows(), a.Cols(), b.Cols()
	out := &Dense[T]{dims: Dimensions{rows: r, cols: c}, data: make([]T, r*c)}
	if r == 0 || c == 0 {
		return out
	}
	left, right := a.ElementsList(), b.ElementsList()
	if dst, ok := asFloat64(out.data); ok && inner > 0 {
		l, _ := asFloat64(left)
		rr, _ := asFloat64(right)
		mat.NewDense(r, c, dst).Mul(mat.NewDense(r, inner, l), mat.NewDense(inner, c, rr))

		return out
	}
	for i := 0; i < r; i++ {
		for k := 0; k < inner; k++ {
			aik := left[i*inner+k]
			if aik == 0 {
				continue
			}
			for j := 0; j < c; j++ {
				out.data[i*c+j] += aik * right[k*c+j]
			}
		}
	}

	return out
}

// Scale returns s·m. Diagonal stays Diagonal; Dense and PermutationMatrix
// produce a Dense.
func Scale[T numeric.Number](m Matrix[T], s T) (Matrix[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Diagonal[T]); ok {
		out := d.clone()
		for k := range out.diag {
			out.diag[k] *= s
		}

		return out, nil
	}
	out, err := ToDense(m)
	if err != nil {
		return nil, err
	}
	if dst, ok := asFloat64(out.data); ok {
		floats.Scale(float64(s), dst)

		return out, nil
	}
	for k := range out.data {
		out.data[k] *= s
	}

	return out, nil
}

// Equal compares dimensions and every cell, across variants.
func Equal[T numeric.Number](a, b Matrix[T]) bool {
	if ValidateNotNil(a) != nil || ValidateNotNil(b) != nil {
		return false
	}
	if a.Dimensions() != b.Dimensions() {
		return false
	}
	if pa, ok := a.(*PermutationMatrix[T]); ok {
		if pb, ok := b.(*PermutationMatrix[T]); ok {
			return pa.perm.Equal(pb.perm)
		}
	}
	x, y := a.ElementsList(), b.ElementsList()
	for k := range x {
		if x[k] != y[k] {
			return false
		}
	}

	return true
}

// MatVec returns m·v; v must have m.Cols() elements.
func MatVec[T numeric.Number](m Matrix[T], v *vector.Vector[T]) (*vector.Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if v == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if v.Len() != m.Cols() {
		return nil, fmt.Errorf("%s: %v · len %d: %w", opMatVec, m.Dimensions(), v.Len(), ErrDimensionMismatch)
	}
	out := make([]T, m.Rows())
	for i := range out {
		row, err := m.Row(i)
		if err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
		if out[i], err = row.Dot(v); err != nil {
			return nil, matrixErrorf(opMatVec, err)
		}
	}

	return vector.Wrap(out), nil
}

// Outer returns the direct product a⊗b: cell (i, j) = a[i]·b[j].
func Outer[T numeric.Number](a, b *vector.Vector[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opOuter, ErrNilMatrix)
	}
	x, y := a.Elements(), b.Elements()

	return NewDenseFromFunc(len(x), len(y), func(i, j int) T { return x[i] * y[j] })
}

// Rank computes the rank of any variant with an optional tolerance override
// (see WithEpsilon). PermutationMatrix rank is always n.
func Rank[T numeric.Number](m Matrix[T], opts ...Option) (int, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, err
	}
	o := gatherOptions(opts...)
	switch v := m.(type) {
	case *Dense[T]:
		return rankCells(v.dims, v.cell, o.Epsilon), nil
	case *Diagonal[T]:
		return v.rankTol(o.Epsilon), nil
	default:
		return m.Rank(), nil
	}
}

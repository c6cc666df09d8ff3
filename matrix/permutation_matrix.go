// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/permutation"
	"github.com/katalvlaran/lvmath/vector"
)

const variantPermutation = "PermutationMatrix"

// PermutationMatrix is the square 0/1 matrix of a permutation p:
// cell (i, j) is 1 iff p(i) == j. Storage is O(n).
type PermutationMatrix[T numeric.Number] struct {
	perm *permutation.Permutation
}

// NewPermutationMatrix wraps p. Permutations are immutable, so p is shared.
func NewPermutationMatrix[T numeric.Number](p *permutation.Permutation) (*PermutationMatrix[T], error) {
	if p == nil {
		return nil, matrixErrorf(variantPermutation+"."+opNew, ErrNilMatrix)
	}

	return &PermutationMatrix[T]{perm: p}, nil
}

// NewPermutationMatrixFromArray validates arr as a permutation and wraps it.
func NewPermutationMatrixFromArray[T numeric.Number](arr ...int) (*PermutationMatrix[T], error) {
	p, err := permutation.New(arr...)
	if err != nil {
		return nil, matrixErrorf(variantPermutation+"."+opNew, err)
	}

	return &PermutationMatrix[T]{perm: p}, nil
}

// Permutation returns the backing permutation.
func (m *PermutationMatrix[T]) Permutation() *permutation.Permutation { return m.perm }

// Kind returns KindPermutation.
func (m *PermutationMatrix[T]) Kind() Kind { return KindPermutation }

// Dimensions returns n×n.
func (m *PermutationMatrix[T]) Dimensions() Dimensions {
	n := m.perm.Len()

	return Dimensions{rows: n, cols: n}
}

// Rows returns n.
func (m *PermutationMatrix[T]) Rows() int { return m.perm.Len() }

// Cols returns n.
func (m *PermutationMatrix[T]) Cols() int { return m.perm.Len() }

// image returns p(i) for an in-range i.
func (m *PermutationMatrix[T]) image(i int) int {
	v, _ := m.perm.At(i)

	return v
}

func (m *PermutationMatrix[T]) cell(i, j int) T {
	if m.image(i) == j {
		return 1
	}

	return 0
}

// At returns 1 iff p(i) == j, else 0.
func (m *PermutationMatrix[T]) At(i, j int) (T, error) {
	if !m.Dimensions().Contains(i, j) {
		return 0, cellErrorf(variantPermutation, opAt, i, j, ErrOutOfRange)
	}

	return m.cell(i, j), nil
}

// Set is a no-op when v equals the current cell, else ErrUnsettableElement.
func (m *PermutationMatrix[T]) Set(i, j int, v T) error {
	cur, err := m.At(i, j)
	if err != nil {
		return err
	}
	if cur != v {
		return cellErrorf(variantPermutation, opSet, i, j, ErrUnsettableElement)
	}

	return nil
}

// Row returns the one-hot vector e_{p(i)}.
func (m *PermutationMatrix[T]) Row(i int) (*vector.Vector[T], error) {
	n := m.perm.Len()
	if i < 0 || i >= n {
		return nil, cellErrorf(variantPermutation, opRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, n)
	out[m.image(i)] = 1

	return vector.Wrap(out), nil
}

// Column returns the one-hot vector e_{p⁻¹(j)}. Complexity: O(n).
func (m *PermutationMatrix[T]) Column(j int) (*vector.Vector[T], error) {
	n := m.perm.Len()
	if j < 0 || j >= n {
		return nil, cellErrorf(variantPermutation, opColumn, 0, j, ErrOutOfRange)
	}
	i, err := m.perm.IndexOf(j)
	if err != nil {
		return nil, matrixErrorf(variantPermutation+"."+opColumn, err)
	}
	out := make([]T, n)
	out[i] = 1

	return vector.Wrap(out), nil
}

// sameLine accepts a row or column write only when it changes nothing.
func (m *PermutationMatrix[T]) sameLine(op string, k int, v *vector.Vector[T], current func(int) (*vector.Vector[T], error)) error {
	if v == nil {
		return matrixErrorf(variantPermutation+"."+op, ErrNilMatrix)
	}
	cur, err := current(k)
	if err != nil {
		return err
	}
	if v.Len() != cur.Len() {
		return fmt.Errorf("%s.%s: vector length %d, want %d: %w",
			variantPermutation, op, v.Len(), cur.Len(), ErrDimensionMismatch)
	}
	if !cur.Equal(v) {
		return cellErrorf(variantPermutation, op, k, k, ErrUnsettableElement)
	}

	return nil
}

// SetRow succeeds only if v equals the current row.
func (m *PermutationMatrix[T]) SetRow(i int, v *vector.Vector[T]) error {
	return m.sameLine(opSetRow, i, v, m.Row)
}

// SetColumn succeeds only if v equals the current column.
func (m *PermutationMatrix[T]) SetColumn(j int, v *vector.Vector[T]) error {
	return m.sameLine(opSetColumn, j, v, m.Column)
}

// SwitchRows exchanges rows i and j, replacing p with p∘(i j).
func (m *PermutationMatrix[T]) SwitchRows(i, j int) error {
	if err := checkIndex(variantPermutation, opSwitchRows, i, j, m.perm.Len()); err != nil {
		return err
	}
	p, err := m.perm.Swap(i, j)
	if err != nil {
		return matrixErrorf(variantPermutation+"."+opSwitchRows, err)
	}
	m.perm = p

	return nil
}

// SwitchColumns exchanges columns i and j, replacing p with (i j)∘p.
func (m *PermutationMatrix[T]) SwitchColumns(i, j int) error {
	n := m.perm.Len()
	if err := checkIndex(variantPermutation, opSwitchCols, i, j, n); err != nil {
		return err
	}
	tau, err := permutation.Transposition(n, i, j)
	if err != nil {
		return matrixErrorf(variantPermutation+"."+opSwitchCols, err)
	}
	p, err := tau.Compose(m.perm)
	if err != nil {
		return matrixErrorf(variantPermutation+"."+opSwitchCols, err)
	}
	m.perm = p

	return nil
}

// FillDiagonal succeeds only if every diagonal cell already equals v.
func (m *PermutationMatrix[T]) FillDiagonal(v T) error {
	for k := 0; k < m.perm.Len(); k++ {
		if m.cell(k, k) != v {
			return cellErrorf(variantPermutation, opFillDiagonal, k, k, ErrUnsettableElement)
		}
	}

	return nil
}

// Diagonal returns diagonal n.
func (m *PermutationMatrix[T]) Diagonal(n int) (*vector.Vector[T], error) {
	return diagonalCells(variantPermutation, m.Dimensions(), m.cell, n)
}

// Transpose returns the matrix of p⁻¹, itself a *PermutationMatrix.
func (m *PermutationMatrix[T]) Transpose() Matrix[T] {
	return &PermutationMatrix[T]{perm: m.perm.Inverse()}
}

// Conjugate returns a *PermutationMatrix sharing the immutable permutation.
func (m *PermutationMatrix[T]) Conjugate() Matrix[T] { return m.clone() }

// ConjugateTranspose equals Transpose.
func (m *PermutationMatrix[T]) ConjugateTranspose() Matrix[T] { return m.Transpose() }

// Determinant is the sign of p. For unsigned T, -1 wraps to the maximum value.
func (m *PermutationMatrix[T]) Determinant() (T, error) {
	one := T(1)
	if m.perm.Sign() < 0 {
		return -one, nil
	}

	return one, nil
}

// Rank is always n.
func (m *PermutationMatrix[T]) Rank() int { return m.perm.Len() }

// IsZero holds only for the empty matrix.
func (m *PermutationMatrix[T]) IsZero() bool { return m.perm.Len() == 0 }

// IsDiagonal holds iff p is the identity.
func (m *PermutationMatrix[T]) IsDiagonal() bool { return m.perm.IsIdentity() }

// IsSymmetric holds iff p is an involution.
func (m *PermutationMatrix[T]) IsSymmetric() bool { return m.perm.Equal(m.perm.Inverse()) }

// IsUpperTriangular checks the single 1 in each row: p(i)-i >= n.
func (m *PermutationMatrix[T]) IsUpperTriangular(n int, _ bool) bool {
	for i := 0; i < m.perm.Len(); i++ {
		if m.image(i)-i < n {
			return false
		}
	}

	return true
}

// IsLowerTriangular checks the single 1 in each row: p(i)-i <= n.
func (m *PermutationMatrix[T]) IsLowerTriangular(n int, _ bool) bool {
	for i := 0; i < m.perm.Len(); i++ {
		if m.image(i)-i > n {
			return false
		}
	}

	return true
}

// IsUpperHessenberg reports p(i) >= i-1 for every i.
func (m *PermutationMatrix[T]) IsUpperHessenberg() bool { return m.IsUpperTriangular(-1, true) }

// IsLowerHessenberg reports p(i) <= i+1 for every i.
func (m *PermutationMatrix[T]) IsLowerHessenberg() bool { return m.IsLowerTriangular(1, true) }

// Elements returns a row-major 2D copy.
func (m *PermutationMatrix[T]) Elements() [][]T { return elementsOf(m.Dimensions(), m.cell) }

// ElementsList returns a flat row-major copy.
func (m *PermutationMatrix[T]) ElementsList() []T { return listOf(m.Dimensions(), m.cell) }

// Clone returns a copy; the permutation itself is immutable and shared.
func (m *PermutationMatrix[T]) Clone() Matrix[T] { return m.clone() }

func (m *PermutationMatrix[T]) clone() *PermutationMatrix[T] {
	return &PermutationMatrix[T]{perm: m.perm}
}

// String renders one "[a, b]" row per line.
func (m *PermutationMatrix[T]) String() string { return formatCells(m.Dimensions(), m.cell) }

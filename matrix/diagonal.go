// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

const variantDiagonal = "Diagonal"

// Diagonal stores only the min(rows, cols) main-diagonal values.
// Invariant: every off-diagonal cell is zero, and len(diag) == dims.Minimum().
type Diagonal[T numeric.Number] struct {
	dims Dimensions
	diag []T
}

// NewDiagonal returns the square n×n matrix with values on its diagonal.
func NewDiagonal[T numeric.Number](values ...T) *Diagonal[T] {
	diag := make([]T, len(values))
	copy(diag, values)

	return &Diagonal[T]{dims: Dimensions{rows: len(diag), cols: len(diag)}, diag: diag}
}

// NewDiagonalWithDims returns a rows×cols diagonal matrix. len(values) must
// equal min(rows, cols).
func NewDiagonalWithDims[T numeric.Number](rows, cols int, values []T) (*Diagonal[T], error) {
	d, err := NewDimensions(rows, cols)
	if err != nil {
		return nil, matrixErrorf(variantDiagonal+"."+opNew, err)
	}
	if len(values) != d.Minimum() {
		return nil, fmt.Errorf("%s.%s: %d values for %v: %w",
			variantDiagonal, opNew, len(values), d, ErrDimensionMismatch)
	}
	diag := make([]T, len(values))
	copy(diag, values)

	return &Diagonal[T]{dims: d, diag: diag}, nil
}

// NewDiagonalFilled returns a rows×cols diagonal matrix with v on the diagonal.
func NewDiagonalFilled[T numeric.Number](rows, cols int, v T) (*Diagonal[T], error) {
	d, err := NewDimensions(rows, cols)
	if err != nil {
		return nil, matrixErrorf(variantDiagonal+"."+opNew, err)
	}
	diag := make([]T, d.Minimum())
	for k := range diag {
		diag[k] = v
	}

	return &Diagonal[T]{dims: d, diag: diag}, nil
}

// Kind returns KindDiagonal.
func (m *Diagonal[T]) Kind() Kind { return KindDiagonal }

// Dimensions returns the matrix shape.
func (m *Diagonal[T]) Dimensions() Dimensions { return m.dims }

// Rows returns the number of rows.
func (m *Diagonal[T]) Rows() int { return m.dims.rows }

// Cols returns the number of columns.
func (m *Diagonal[T]) Cols() int { return m.dims.cols }

func (m *Diagonal[T]) cell(i, j int) T {
	if i != j {
		return 0
	}

	return m.diag[i]
}

// At returns the stored value on the diagonal and zero elsewhere.
func (m *Diagonal[T]) At(i, j int) (T, error) {
	if !m.dims.Contains(i, j) {
		return 0, cellErrorf(variantDiagonal, opAt, i, j, ErrOutOfRange)
	}

	return m.cell(i, j), nil
}

// Set writes a diagonal cell. Off-diagonal writes always fail with
// ErrUnsettableElement.
func (m *Diagonal[T]) Set(i, j int, v T) error {
	if !m.dims.Contains(i, j) {
		return cellErrorf(variantDiagonal, opSet, i, j, ErrOutOfRange)
	}
	if i != j {
		return cellErrorf(variantDiagonal, opSet, i, j, ErrUnsettableElement)
	}
	m.diag[i] = v

	return nil
}

// DiagonalElements returns a copy of the stored diagonal.
func (m *Diagonal[T]) DiagonalElements() []T {
	out := make([]T, len(m.diag))
	copy(out, m.diag)

	return out
}

// SetDiagonalElements replaces the diagonal with values, resizing the
// matrix when len(values) differs from min(rows, cols):
//   - k >= min: each axis grows to max(k, axis).
//   - k < min, square: both axes shrink to k.
//   - k < min, non-square: only the shorter axis shrinks to k.
func (m *Diagonal[T]) SetDiagonalElements(values []T) {
	k := len(values)
	r, c := m.dims.rows, m.dims.cols
	switch {
	case k >= m.dims.Minimum():
		r, c = max(k, r), max(k, c)
	case m.dims.IsSquare():
		r, c = k, k
	case r < c:
		r = k
	default:
		c = k
	}
	m.dims = Dimensions{rows: r, cols: c}
	m.diag = make([]T, k)
	copy(m.diag, values)
}

// Row synthesizes row i: zero except at column i.
func (m *Diagonal[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.dims.rows {
		return nil, cellErrorf(variantDiagonal, opRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.dims.cols)
	if i < len(m.diag) {
		out[i] = m.diag[i]
	}

	return vector.Wrap(out), nil
}

// Column synthesizes column j: zero except at row j.
func (m *Diagonal[T]) Column(j int) (*vector.Vector[T], error) {
	if j < 0 || j >= m.dims.cols {
		return nil, cellErrorf(variantDiagonal, opColumn, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.dims.rows)
	if j < len(m.diag) {
		out[j] = m.diag[j]
	}

	return vector.Wrap(out), nil
}

// setLine writes line k from v, which must be zero away from the diagonal.
func (m *Diagonal[T]) setLine(op string, k, limit, want int, v *vector.Vector[T]) error {
	if v == nil {
		return matrixErrorf(variantDiagonal+"."+op, ErrNilMatrix)
	}
	if k < 0 || k >= limit {
		return cellErrorf(variantDiagonal, op, k, k, ErrOutOfRange)
	}
	if v.Len() != want {
		return fmt.Errorf("%s.%s: vector length %d, want %d: %w",
			variantDiagonal, op, v.Len(), want, ErrDimensionMismatch)
	}
	elems := v.Elements()
	for p, x := range elems {
		if p != k && x != 0 {
			return cellErrorf(variantDiagonal, op, k, p, ErrUnsettableElement)
		}
	}
	if k < len(m.diag) {
		m.diag[k] = elems[k]
	}

	return nil
}

// SetRow accepts v only if it is zero off the diagonal position.
func (m *Diagonal[T]) SetRow(i int, v *vector.Vector[T]) error {
	return m.setLine(opSetRow, i, m.dims.rows, m.dims.cols, v)
}

// SetColumn accepts v only if it is zero off the diagonal position.
func (m *Diagonal[T]) SetColumn(j int, v *vector.Vector[T]) error {
	return m.setLine(opSetColumn, j, m.dims.cols, m.dims.rows, v)
}

// SwitchRows always fails: exchanging rows moves values off the diagonal.
func (m *Diagonal[T]) SwitchRows(i, j int) error {
	return cellErrorf(variantDiagonal, opSwitchRows, i, j, ErrUnsettableElement)
}

// SwitchColumns always fails: exchanging columns moves values off the diagonal.
func (m *Diagonal[T]) SwitchColumns(i, j int) error {
	return cellErrorf(variantDiagonal, opSwitchCols, i, j, ErrUnsettableElement)
}

// FillDiagonal writes v to every stored value.
func (m *Diagonal[T]) FillDiagonal(v T) error {
	for k := range m.diag {
		m.diag[k] = v
	}

	return nil
}

// Diagonal returns diagonal n; every n != 0 is all zeros.
func (m *Diagonal[T]) Diagonal(n int) (*vector.Vector[T], error) {
	if n == 0 {
		return vector.New(m.diag...), nil
	}

	return diagonalCells(variantDiagonal, m.dims, m.cell, n)
}

// Transpose returns a *Diagonal with swapped dimensions.
func (m *Diagonal[T]) Transpose() Matrix[T] {
	out := m.clone()
	out.dims = m.dims.Transpose()

	return out
}

// Conjugate returns a *Diagonal copy.
func (m *Diagonal[T]) Conjugate() Matrix[T] { return m.clone() }

// ConjugateTranspose returns a *Diagonal, equal to Transpose for real types.
func (m *Diagonal[T]) ConjugateTranspose() Matrix[T] { return m.Transpose() }

// Determinant is the product of the diagonal. Complexity: O(n).
func (m *Diagonal[T]) Determinant() (T, error) {
	if err := ValidateSquare[T](m); err != nil {
		return 0, matrixErrorf(variantDiagonal+"."+opDeterminant, err)
	}
	det := T(1)
	for _, x := range m.diag {
		det *= x
	}

	return det, nil
}

// Rank counts the non-zero diagonal values.
func (m *Diagonal[T]) Rank() int {
	rank := 0
	for _, x := range m.diag {
		if x != 0 {
			rank++
		}
	}

	return rank
}

// rankTol counts diagonal values with |x| > eps·max|x| for float types.
func (m *Diagonal[T]) rankTol(eps float64) int {
	if !numeric.IsFloat[T]() || len(m.diag) == 0 {
		return m.Rank()
	}
	largest := 0.0
	for _, x := range m.diag {
		largest = max(largest, float64(numeric.Abs(x)))
	}
	rank := 0
	for _, x := range m.diag {
		if x != 0 && float64(numeric.Abs(x)) > eps*largest {
			rank++
		}
	}

	return rank
}

// IsZero reports whether every stored value is zero.
func (m *Diagonal[T]) IsZero() bool {
	for _, x := range m.diag {
		if x != 0 {
			return false
		}
	}

	return true
}

// IsDiagonal is always true.
func (m *Diagonal[T]) IsDiagonal() bool { return true }

// IsSymmetric holds for every square diagonal matrix.
func (m *Diagonal[T]) IsSymmetric() bool { return m.dims.IsSquare() }

// IsUpperTriangular only constrains the main diagonal when n > 0.
func (m *Diagonal[T]) IsUpperTriangular(n int, mustBeSquare bool) bool {
	if mustBeSquare && !m.dims.IsSquare() {
		return false
	}

	return n <= 0 || m.IsZero()
}

// IsLowerTriangular only constrains the main diagonal when n < 0.
func (m *Diagonal[T]) IsLowerTriangular(n int, mustBeSquare bool) bool {
	if mustBeSquare && !m.dims.IsSquare() {
		return false
	}

	return n >= 0 || m.IsZero()
}

// IsUpperHessenberg holds for every square diagonal matrix.
func (m *Diagonal[T]) IsUpperHessenberg() bool { return m.IsUpperTriangular(-1, true) }

// IsLowerHessenberg holds for every square diagonal matrix.
func (m *Diagonal[T]) IsLowerHessenberg() bool { return m.IsLowerTriangular(1, true) }

// Elements returns a row-major 2D copy.
func (m *Diagonal[T]) Elements() [][]T { return elementsOf(m.dims, m.cell) }

// ElementsList returns a flat row-major copy.
func (m *Diagonal[T]) ElementsList() []T { return listOf(m.dims, m.cell) }

// Clone returns a deep copy.
func (m *Diagonal[T]) Clone() Matrix[T] { return m.clone() }

func (m *Diagonal[T]) clone() *Diagonal[T] {
	diag := make([]T, len(m.diag))
	copy(diag, m.diag)

	return &Diagonal[T]{dims: m.dims, diag: diag}
}

// String renders one "[a, b]" row per line.
func (m *Diagonal[T]) String() string { return formatCells(m.dims, m.cell) }

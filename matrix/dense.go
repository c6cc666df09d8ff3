// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

const variantDense = "Dense"

// Dense is a row-major matrix: data holds rows*cols elements and cell (i, j)
// lives at data[i*cols+j].
type Dense[T numeric.Number] struct {
	dims Dimensions
	data []T
}

// NewDense creates a rows×cols zero matrix. Zero-sized dimensions are legal.
// Complexity: O(rows*cols).
func NewDense[T numeric.Number](rows, cols int) (*Dense[T], error) {
	d, err := NewDimensions(rows, cols)
	if err != nil {
		return nil, matrixErrorf(variantDense+"."+opNew, err)
	}

	return &Dense[T]{dims: d, data: make([]T, d.Product())}, nil
}

// NewDenseFilled creates a rows×cols matrix with every cell equal to v.
func NewDenseFilled[T numeric.Number](rows, cols int, v T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for k := range m.data {
		m.data[k] = v
	}

	return m, nil
}

// NewDenseFromFunc creates a rows×cols matrix with cell (i, j) = fn(i, j),
// evaluated in row-major order.
func NewDenseFromFunc[T numeric.Number](rows, cols int, fn func(i, j int) T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.data[i*cols+j] = fn(i, j)
		}
	}

	return m, nil
}

// NewDenseFromRows copies a 2D slice. Every row must have the same length;
// ragged input fails with ErrDimensionMismatch. No rows yields a 0×0 matrix.
func NewDenseFromRows[T numeric.Number](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0)
	}
	cols := len(rows[0])
	m, err := NewDense[T](len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%s.%s: row %d has %d elements, want %d: %w",
				variantDense, opNew, i, len(row), cols, ErrDimensionMismatch)
		}
		copy(m.data[i*cols:], row)
	}

	return m, nil
}

// NewDenseFromList copies a flat row-major list; len(list) must be rows*cols.
func NewDenseFromList[T numeric.Number](rows, cols int, list []T) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if len(list) != len(m.data) {
		return nil, fmt.Errorf("%s.%s: %d elements for %v: %w",
			variantDense, opNew, len(list), m.dims, ErrBadShape)
	}
	copy(m.data, list)

	return m, nil
}

// Identity returns the n×n identity as a Dense matrix.
func Identity[T numeric.Number](n int) (*Dense[T], error) {
	return NewDenseFromFunc(n, n, func(i, j int) T {
		if i == j {
			return 1
		}

		return 0
	})
}

// NewDenseRandom fills a rows×cols matrix with values drawn uniformly from
// [lo, hi]. A nil src uses numeric.DefaultSeed.
func NewDenseRandom[T numeric.Number](rows, cols int, lo, hi T, src *numeric.Source) (*Dense[T], error) {
	m, err := NewDense[T](rows, cols)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = numeric.NewSource(0)
	}
	for k := range m.data {
		if m.data[k], err = numeric.UniformIn(src, lo, hi); err != nil {
			return nil, matrixErrorf(variantDense+"."+opNew, err)
		}
	}

	return m, nil
}

// Kind returns KindDense.
func (m *Dense[T]) Kind() Kind { return KindDense }

// Dimensions returns the matrix shape.
func (m *Dense[T]) Dimensions() Dimensions { return m.dims }

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.dims.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.dims.cols }

// cell is the unchecked accessor handed to the shared kernels.
func (m *Dense[T]) cell(i, j int) T { return m.data[i*m.dims.cols+j] }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if !m.dims.Contains(row, col) {
		return 0, cellErrorf(variantDense, method, row, col, ErrOutOfRange)
	}

	return row*m.dims.cols + col, nil
}

// At returns cell (i, j).
// Complexity: O(1).
func (m *Dense[T]) At(i, j int) (T, error) {
	idx, err := m.indexOf(opAt, i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set writes cell (i, j).
// Complexity: O(1).
func (m *Dense[T]) Set(i, j int, v T) error {
	idx, err := m.indexOf(opSet, i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) (*vector.Vector[T], error) {
	if i < 0 || i >= m.dims.rows {
		return nil, cellErrorf(variantDense, opRow, i, 0, ErrOutOfRange)
	}
	c := m.dims.cols

	return vector.New(m.data[i*c : (i+1)*c]...), nil
}

// Column returns a copy of column j.
func (m *Dense[T]) Column(j int) (*vector.Vector[T], error) {
	if j < 0 || j >= m.dims.cols {
		return nil, cellErrorf(variantDense, opColumn, 0, j, ErrOutOfRange)
	}
	out := make([]T, m.dims.rows)
	for i := range out {
		out[i] = m.cell(i, j)
	}

	return vector.Wrap(out), nil
}

// SetRow overwrites row i with v.
func (m *Dense[T]) SetRow(i int, v *vector.Vector[T]) error {
	if v == nil {
		return matrixErrorf(variantDense+"."+opSetRow, ErrNilMatrix)
	}
	if i < 0 || i >= m.dims.rows {
		return cellErrorf(variantDense, opSetRow, i, 0, ErrOutOfRange)
	}
	if v.Len() != m.dims.cols {
		return fmt.Errorf("%s.%s: vector length %d, want %d: %w",
			variantDense, opSetRow, v.Len(), m.dims.cols, ErrDimensionMismatch)
	}
	copy(m.data[i*m.dims.cols:], v.Elements())

	return nil
}

// SetColumn overwrites column j with v.
func (m *Dense[T]) SetColumn(j int, v *vector.Vector[T]) error {
	if v == nil {
		return matrixErrorf(variantDense+"."+opSetColumn, ErrNilMatrix)
	}
	if j < 0 || j >= m.dims.cols {
		return cellErrorf(variantDense, opSetColumn, 0, j, ErrOutOfRange)
	}
	if v.Len() != m.dims.rows {
		return fmt.Errorf("%s.%s: vector length %d, want %d: %w",
			variantDense, opSetColumn, v.Len(), m.dims.rows, ErrDimensionMismatch)
	}
	for i, x := range v.Elements() {
		m.data[i*m.dims.cols+j] = x
	}

	return nil
}

// SwitchRows exchanges rows i and j in place.
// Complexity: O(cols).
func (m *Dense[T]) SwitchRows(i, j int) error {
	if err := checkIndex(variantDense, opSwitchRows, i, j, m.dims.rows); err != nil {
		return err
	}
	c := m.dims.cols
	for k := 0; k < c; k++ {
		m.data[i*c+k], m.data[j*c+k] = m.data[j*c+k], m.data[i*c+k]
	}

	return nil
}

// SwitchColumns exchanges columns i and j in place.
// Complexity: O(rows).
func (m *Dense[T]) SwitchColumns(i, j int) error {
	if err := checkIndex(variantDense, opSwitchCols, i, j, m.dims.cols); err != nil {
		return err
	}
	c := m.dims.cols
	for r := 0; r < m.dims.rows; r++ {
		m.data[r*c+i], m.data[r*c+j] = m.data[r*c+j], m.data[r*c+i]
	}

	return nil
}

// FillDiagonal writes v to every main-diagonal cell.
func (m *Dense[T]) FillDiagonal(v T) error {
	for k := 0; k < m.dims.Minimum(); k++ {
		m.data[k*m.dims.cols+k] = v
	}

	return nil
}

// Diagonal returns diagonal n (0 main, n > 0 above, n < 0 below).
func (m *Dense[T]) Diagonal(n int) (*vector.Vector[T], error) {
	return diagonalCells(variantDense, m.dims, m.cell, n)
}

// Transpose returns a new *Dense with rows and columns exchanged.
// Complexity: O(rows*cols).
func (m *Dense[T]) Transpose() Matrix[T] {
	out := &Dense[T]{dims: m.dims.Transpose(), data: make([]T, len(m.data))}
	r, c := m.dims.rows, m.dims.cols
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out.data[j*r+i] = m.data[i*c+j]
		}
	}

	return out
}

// Conjugate returns a copy; real element types are self-conjugate.
func (m *Dense[T]) Conjugate() Matrix[T] { return m.Clone() }

// ConjugateTranspose equals Transpose for real element types.
func (m *Dense[T]) ConjugateTranspose() Matrix[T] { return m.Transpose() }

// Determinant of a square matrix. See package doc for the numeric policy.
// Complexity: O(n³).
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateSquare[T](m); err != nil {
		return 0, matrixErrorf(variantDense+"."+opDeterminant, err)
	}

	return determinantCells(m.dims.rows, m.cell), nil
}

// Rank with the default tolerance; use the free Rank to override it.
// Complexity: O(min(r,c)·r·c).
func (m *Dense[T]) Rank() int {
	return rankCells(m.dims, m.cell, DefaultEpsilon)
}

// IsZero reports whether every cell is zero.
func (m *Dense[T]) IsZero() bool { return isZeroCells(m.dims, m.cell) }

// IsDiagonal reports whether every off-diagonal cell is zero.
func (m *Dense[T]) IsDiagonal() bool {
	return m.IsUpperTriangular(0, false) && m.IsLowerTriangular(0, false)
}

// IsSymmetric reports a square matrix equal to its transpose.
func (m *Dense[T]) IsSymmetric() bool { return isSymmetricCells(m.dims, m.cell) }

// IsUpperTriangular reports a(i,j) = 0 for all j-i < n.
func (m *Dense[T]) IsUpperTriangular(n int, mustBeSquare bool) bool {
	return isUpperTriangularCells(m.dims, m.cell, n, mustBeSquare)
}

// IsLowerTriangular reports a(i,j) = 0 for all j-i > n.
func (m *Dense[T]) IsLowerTriangular(n int, mustBeSquare bool) bool {
	return isLowerTriangularCells(m.dims, m.cell, n, mustBeSquare)
}

// IsUpperHessenberg reports zeros below the first subdiagonal.
func (m *Dense[T]) IsUpperHessenberg() bool { return m.IsUpperTriangular(-1, true) }

// IsLowerHessenberg reports zeros above the first superdiagonal.
func (m *Dense[T]) IsLowerHessenberg() bool { return m.IsLowerTriangular(1, true) }

// Elements returns a row-major 2D copy.
func (m *Dense[T]) Elements() [][]T { return elementsOf(m.dims, m.cell) }

// ElementsList returns a copy of the flat row-major storage.
func (m *Dense[T]) ElementsList() []T {
	out := make([]T, len(m.data))
	copy(out, m.data)

	return out
}

// Clone returns a deep copy.
func (m *Dense[T]) Clone() Matrix[T] { return m.clone() }

func (m *Dense[T]) clone() *Dense[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)

	return &Dense[T]{dims: m.dims, data: data}
}

// String renders one "[a, b]" row per line.
func (m *Dense[T]) String() string { return formatCells(m.dims, m.cell) }

// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Dimensions is an immutable (rows, cols) pair. Both are non-negative.
type Dimensions struct {
	rows, cols int
}

// NewDimensions validates rows, cols >= 0.
func NewDimensions(rows, cols int) (Dimensions, error) {
	if rows < 0 || cols < 0 {
		return Dimensions{}, fmt.Errorf("Dimensions(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return Dimensions{rows: rows, cols: cols}, nil
}

// Square returns n×n dimensions.
func Square(n int) (Dimensions, error) { return NewDimensions(n, n) }

// Rows returns the number of rows.
func (d Dimensions) Rows() int { return d.rows }

// Cols returns the number of columns.
func (d Dimensions) Cols() int { return d.cols }

// Minimum returns min(rows, cols), the length of the main diagonal.
func (d Dimensions) Minimum() int { return min(d.rows, d.cols) }

// Product returns rows*cols.
func (d Dimensions) Product() int { return d.rows * d.cols }

// IsSquare reports rows == cols.
func (d Dimensions) IsSquare() bool { return d.rows == d.cols }

// Transpose swaps rows and cols.
func (d Dimensions) Transpose() Dimensions { return Dimensions{rows: d.cols, cols: d.rows} }

// Contains reports whether (i, j) is a valid cell.
func (d Dimensions) Contains(i, j int) bool {
	return i >= 0 && i < d.rows && j >= 0 && j < d.cols
}

// diagonalLen returns the number of cells on diagonal n, or -1 if the
// diagonal does not exist. n = 0 always exists, even for empty matrices.
func (d Dimensions) diagonalLen(n int) int {
	switch {
	case n == 0:
		return d.Minimum()
	case n > 0 && n < d.cols:
		return min(d.rows, d.cols-n)
	case n < 0 && -n < d.rows:
		return min(d.rows+n, d.cols)
	default:
		return -1
	}
}

// String renders "rows×cols".
func (d Dimensions) String() string { return fmt.Sprintf("%d×%d", d.rows, d.cols) }

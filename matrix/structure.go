// SPDX-License-Identifier: MIT

package matrix

import (
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// The kernels below read cells through an unchecked at(i, j) accessor
// supplied by each variant.

// isZeroCells reports whether every cell is zero.
// Complexity: O(r*c).
func isZeroCells[T numeric.Number](d Dimensions, at func(i, j int) T) bool {
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			if at(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// isSymmetricCells compares the strict upper triangle to the lower one.
// Complexity: O(n²/2).
func isSymmetricCells[T numeric.Number](d Dimensions, at func(i, j int) T) bool {
	if !d.IsSquare() {
		return false
	}
	for i := 0; i < d.rows; i++ {
		for j := i + 1; j < d.cols; j++ {
			if at(i, j) != at(j, i) {
				return false
			}
		}
	}

	return true
}

// isUpperTriangularCells checks a(i,j) = 0 for j-i < n, i.e. j < i+n.
func isUpperTriangularCells[T numeric.Number](d Dimensions, at func(i, j int) T, n int, mustBeSquare bool) bool {
	if mustBeSquare && !d.IsSquare() {
		return false
	}
	for i := 0; i < d.rows; i++ {
		limit := min(d.cols, i+n) // exclusive bound on constrained columns
		for j := 0; j < limit; j++ {
			if at(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// isLowerTriangularCells checks a(i,j) = 0 for j-i > n, i.e. j > i+n.
func isLowerTriangularCells[T numeric.Number](d Dimensions, at func(i, j int) T, n int, mustBeSquare bool) bool {
	if mustBeSquare && !d.IsSquare() {
		return false
	}
	for i := 0; i < d.rows; i++ {
		for j := max(0, i+n+1); j < d.cols; j++ {
			if at(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// diagonalCells collects diagonal n or fails with ErrOutOfRange.
func diagonalCells[T numeric.Number](variant string, d Dimensions, at func(i, j int) T, n int) (*vector.Vector[T], error) {
	size := d.diagonalLen(n)
	if size < 0 {
		return nil, cellErrorf(variant, opDiagonal, n, n, ErrOutOfRange)
	}
	out := make([]T, size)
	row, col := max(0, -n), max(0, n)
	for k := range out {
		out[k] = at(row+k, col+k)
	}

	return vector.Wrap(out), nil
}

// elementsOf materializes a row-major 2D copy.
func elementsOf[T numeric.Number](d Dimensions, at func(i, j int) T) [][]T {
	out := make([][]T, d.rows)
	for i := range out {
		out[i] = make([]T, d.cols)
		for j := range out[i] {
			out[i][j] = at(i, j)
		}
	}

	return out
}

// listOf materializes a flat row-major copy.
func listOf[T numeric.Number](d Dimensions, at func(i, j int) T) []T {
	out := make([]T, 0, d.Product())
	for i := 0; i < d.rows; i++ {
		for j := 0; j < d.cols; j++ {
			out = append(out, at(i, j))
		}
	}

	return out
}

// formatCells renders one "[a, b]" row per line.
func formatCells[T numeric.Number](d Dimensions, at func(i, j int) T) string {
	var sb strings.Builder
	for i := 0; i < d.rows; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		row := make([]T, d.cols)
		for j := range row {
			row[j] = at(i, j)
		}
		sb.WriteString(vector.Wrap(row).String())
	}

	return sb.String()
}

// checkIndex validates a single row or column index against limit.
func checkIndex(variant, op string, i, j, limit int) error {
	if i < 0 || i >= limit || j < 0 || j >= limit {
		return cellErrorf(variant, op, i, j, ErrOutOfRange)
	}

	return nil
}

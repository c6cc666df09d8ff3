// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// Every algorithm returns one of these (possibly wrapped with an operation
// tag via matrixErrorf), and tests match them with errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

var (
	// ErrBadShape is returned when requested dimensions are negative, or a
	// flat element list does not fill rows×cols.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates a row, column or diagonal index outside bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. Add on
	// different dimensions, Mul with a.Cols != b.Rows, or ragged input rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrUnsettableElement signals a write that would break the storage
	// invariant of a Diagonal or PermutationMatrix.
	ErrUnsettableElement = errors.New("matrix: unsettable element")

	// ErrNilMatrix indicates a nil matrix, vector or permutation operand.
	ErrNilMatrix = errors.New("matrix: nil operand")
)

// Operation tags for error wrapping.
const (
	opNew          = "New"
	opAt           = "At"
	opSet          = "Set"
	opRow          = "Row"
	opColumn       = "Column"
	opSetRow       = "SetRow"
	opSetColumn    = "SetColumn"
	opSwitchRows   = "SwitchRows"
	opSwitchCols   = "SwitchColumns"
	opFillDiagonal = "FillDiagonal"
	opDiagonal     = "Diagonal"
	opDeterminant  = "Determinant"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opMatVec       = "MatVec"
	opOuter        = "Outer"
)

// matrixErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the variant, method and cell coordinates.
func cellErrorf(variant, method string, row, col int, err error) error {
	return fmt.Errorf("%s.%s(%d,%d): %w", variant, method, row, col, err)
}

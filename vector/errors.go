// SPDX-License-Identifier: MIT

package vector

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds indicates an element or slice index outside the vector.
	ErrIndexOutOfBounds = errors.New("vector: index out of bounds")

	// ErrLengthMismatch indicates a binary operation on vectors of different lengths.
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrEmptyVector indicates an operation that is undefined for zero-length vectors.
	ErrEmptyVector = errors.New("vector: empty vector")

	// ErrBadLength indicates a negative requested length.
	ErrBadLength = errors.New("vector: negative length")

	// ErrDivisionByZero indicates an integer division by zero.
	ErrDivisionByZero = errors.New("vector: division by zero")

	// ErrNilVector indicates a nil *Vector operand.
	ErrNilVector = errors.New("vector: nil vector")
)

// Operation tags used in error wrapping.
const (
	opAt      = "At"
	opSet     = "Set"
	opSlice   = "Slice"
	opNorm    = "Norm"
	opDot     = "Dot"
	opAdd     = "Add"
	opSub     = "Sub"
	opMul     = "Mul"
	opDiv     = "Div"
	opDivS    = "DivScalar"
	opCombine = "Combine"
	opZip     = "Zip"
	opMin     = "Min"
	opMax     = "Max"
	opNew     = "New"
)

// vectorErrorf wraps err with the method tag, keeping errors.Is working.
func vectorErrorf(op string, err error) error {
	return fmt.Errorf("Vector.%s: %w", op, err)
}

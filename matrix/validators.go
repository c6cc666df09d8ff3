// SPDX-License-Identifier: MIT
// Package matrix: centralized validators shared by the free functions.
// Each returns a plain sentinel so callers can wrap it with an op tag.

package matrix

import "github.com/katalvlaran/lvmath/numeric"

// ValidateNotNil rejects nil interfaces and typed-nil variant pointers.
func ValidateNotNil[T numeric.Number](m Matrix[T]) error {
	switch v := m.(type) {
	case nil:
		return ErrNilMatrix
	case *Dense[T]:
		if v == nil {
			return ErrNilMatrix
		}
	case *Diagonal[T]:
		if v == nil {
			return ErrNilMatrix
		}
	case *PermutationMatrix[T]:
		if v == nil || v.perm == nil {
			return ErrNilMatrix
		}
	}

	return nil
}

// ValidateSameShape checks both operands are non-nil with equal dimensions.
func ValidateSameShape[T numeric.Number](a, b Matrix[T]) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Dimensions() != b.Dimensions() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare checks m is non-nil and square.
func ValidateSquare[T numeric.Number](m Matrix[T]) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if !m.Dimensions().IsSquare() {
		return ErrNonSquare
	}

	return nil
}

// SPDX-License-Identifier: MIT

package permutation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPermutation indicates an array that is not a bijection on [0, n).
	ErrInvalidPermutation = errors.New("permutation: not a bijection")

	// ErrInvalidCycle indicates a malformed cycle representation.
	ErrInvalidCycle = errors.New("permutation: invalid cycle")

	// ErrIndexOutOfBounds indicates an index outside [0, n).
	ErrIndexOutOfBounds = errors.New("permutation: index out of bounds")

	// ErrLengthMismatch indicates an operation on permutations of different size.
	ErrLengthMismatch = errors.New("permutation: length mismatch")

	// ErrNotFound indicates a value that the permutation does not contain.
	ErrNotFound = errors.New("permutation: value not found")
)

const (
	opNew     = "New"
	opAt      = "At"
	opIndexOf = "IndexOf"
	opCompose = "Compose"
	opSwap    = "Swap"
	opApply   = "Apply"
	opCycle   = "NewCycle"
	opRandom  = "Random"
)

// permErrorf tags err with the operation name.
func permErrorf(op string, err error) error {
	return fmt.Errorf("Permutation.%s: %w", op, err)
}

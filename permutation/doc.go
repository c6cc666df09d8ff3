// SPDX-License-Identifier: MIT

// Package permutation models bijections on {0, …, n-1}, their decomposition
// into disjoint cycles, and the two-valued Parity algebra.
//
// A Permutation is immutable once constructed: Inverse, Compose and Swap
// return new values. The cycle decomposition is computed lazily on first use
// and cached, so a *Permutation may be shared across goroutines.
//
// Cycles are compared by the successor map they induce, not by their
// starting element, so (0 1 2), (1 2 0) and (2 0 1) are the same cycle.
//
// Errors:
//
//	ErrInvalidPermutation - input is not a bijection on [0, n).
//	ErrInvalidCycle       - cycle is empty, has duplicates or negative entries.
//	ErrIndexOutOfBounds   - index outside [0, Len()).
//	ErrLengthMismatch     - Compose on permutations of different size.
//	ErrNotFound           - IndexOf on a value outside the permutation.
package permutation

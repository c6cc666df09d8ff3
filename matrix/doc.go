// SPDX-License-Identifier: MIT

// Package matrix provides generic two-dimensional matrices over any
// numeric.Number element type, in three storage variants:
//
//   - Dense: row-major flat storage, every cell writable.
//   - Diagonal: only the min(rows, cols) diagonal values are stored;
//     off-diagonal cells read as zero and reject writes.
//   - PermutationMatrix: square 0/1 matrix backed by a
//     *permutation.Permutation; rows and columns may be switched (which
//     composes a transposition) but individual cells cannot change.
//
// All three satisfy the Matrix[T] interface, a closed tagged variant whose
// Kind reports the storage. Cross-variant arithmetic lives in free functions
// (Add, Sub, Mul, Scale, Equal, MatVec, Outer) that keep a specialized
// variant when the result is closed under it, and widen to Dense otherwise.
//
// Numeric policy:
//
//   - Determinant of a float matrix is computed by gonum's LU (mat.Det);
//     integer matrices use exact fraction-free Bareiss elimination over
//     math/big and the result is narrowed back to T.
//   - Rank of a float matrix counts singular values (gonum mat.SVD) above
//     Epsilon relative to the largest one; integer matrices use exact
//     elimination.
//   - Float64 Dense add/sub/scale go through gonum/floats.
//
// Triangularity uses one diagonal offset n for both directions:
// IsUpperTriangular(n) holds when a(i,j) = 0 for every j-i < n, and
// IsLowerTriangular(n) when a(i,j) = 0 for every j-i > n. An upper
// Hessenberg matrix is IsUpperTriangular(-1), a lower one IsLowerTriangular(1).
//
// Errors are sentinels matched with errors.Is; no exported function panics
// on caller input. Matrices are single-owner values and are not safe for
// concurrent mutation.
package matrix

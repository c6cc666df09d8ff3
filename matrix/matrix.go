// SPDX-License-Identifier: MIT

package matrix

import (
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// Kind tags the storage variant behind a Matrix.
type Kind int

const (
	// KindDense is row-major storage of every cell.
	KindDense Kind = iota
	// KindDiagonal stores only the main diagonal.
	KindDiagonal
	// KindPermutation is backed by a permutation.
	KindPermutation
)

// String returns the variant name.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "Dense"
	case KindDiagonal:
		return "Diagonal"
	case KindPermutation:
		return "Permutation"
	default:
		return "Unknown"
	}
}

// Matrix is the capability contract shared by Dense, Diagonal and
// PermutationMatrix. The set of implementations is closed: free functions
// switch on Kind (or the concrete type) to pick a specialized kernel.
//
// Accessors are bounds-checked and return ErrOutOfRange. Mutators that would
// violate the variant's storage invariant return ErrUnsettableElement.
// Methods returning Matrix[T] keep the receiver's variant unless documented.
type Matrix[T numeric.Number] interface {
	// Kind reports the storage variant.
	Kind() Kind
	// Dimensions returns the (rows, cols) pair.
	Dimensions() Dimensions
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int

	// At reads cell (i, j).
	At(i, j int) (T, error)
	// Set writes cell (i, j).
	Set(i, j int, v T) error
	// Row returns a copy of row i.
	Row(i int) (*vector.Vector[T], error)
	// Column returns a copy of column j.
	Column(j int) (*vector.Vector[T], error)
	// SetRow overwrites row i; v must have Cols() elements.
	SetRow(i int, v *vector.Vector[T]) error
	// SetColumn overwrites column j; v must have Rows() elements.
	SetColumn(j int, v *vector.Vector[T]) error
	// SwitchRows exchanges rows i and j.
	SwitchRows(i, j int) error
	// SwitchColumns exchanges columns i and j.
	SwitchColumns(i, j int) error
	// FillDiagonal writes v to every main-diagonal cell.
	FillDiagonal(v T) error
	// Diagonal returns diagonal n: 0 main, n > 0 above, n < 0 below.
	Diagonal(n int) (*vector.Vector[T], error)

	// Transpose returns the transposed matrix.
	Transpose() Matrix[T]
	// Conjugate is the identity for real element types and returns a copy.
	Conjugate() Matrix[T]
	// ConjugateTranspose equals Transpose for real element types.
	ConjugateTranspose() Matrix[T]
	// Determinant fails with ErrNonSquare on non-square matrices.
	Determinant() (T, error)
	// Rank returns the number of linearly independent rows.
	Rank() int

	// IsZero reports whether every cell is zero.
	IsZero() bool
	// IsDiagonal reports whether every off-diagonal cell is zero.
	IsDiagonal() bool
	// IsSymmetric reports a square matrix equal to its transpose.
	IsSymmetric() bool
	// IsUpperTriangular reports a(i,j) = 0 for all j-i < n.
	IsUpperTriangular(n int, mustBeSquare bool) bool
	// IsLowerTriangular reports a(i,j) = 0 for all j-i > n.
	IsLowerTriangular(n int, mustBeSquare bool) bool
	// IsUpperHessenberg reports zeros below the first subdiagonal.
	IsUpperHessenberg() bool
	// IsLowerHessenberg reports zeros above the first superdiagonal.
	IsLowerHessenberg() bool

	// Elements returns a row-major 2D copy.
	Elements() [][]T
	// ElementsList returns a flat row-major copy.
	ElementsList() []T
	// Clone returns an independent copy of the same variant.
	Clone() Matrix[T]
	// String renders one bracketed row per line.
	String() string
}

// Compile-time checks.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Diagonal[int])(nil)
	_ Matrix[int]     = (*PermutationMatrix[int])(nil)
)

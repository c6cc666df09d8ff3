// SPDX-License-Identifier: MIT
// Package matrix_test contains shared fixtures for the matrix tests.

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
)

// mustDense builds a Dense from rows or fails the test.
func mustDense[T int | int64 | uint8 | float64](t *testing.T, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// mustPerm builds a PermutationMatrix[int] from its array form.
func mustPerm(t *testing.T, arr ...int) *matrix.PermutationMatrix[int] {
	t.Helper()
	m, err := matrix.NewPermutationMatrixFromArray[int](arr...)
	require.NoError(t, err)

	return m
}

// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

func TestDimensions(t *testing.T) {
	d, err := matrix.NewDimensions(2, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Minimum())
	assert.Equal(t, 10, d.Product())
	assert.False(t, d.IsSquare())
	assert.Equal(t, 5, d.Transpose().Rows())
	assert.Equal(t, "2×5", d.String())

	_, err = matrix.NewDimensions(-1, 2)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.NewDense[int](2, -3)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	z, err := matrix.NewDense[float64](0, 0)
	require.NoError(t, err)
	det, err := z.Determinant()
	require.NoError(t, err)
	assert.Equal(t, 1.0, det)
	assert.Equal(t, 0, z.Rank())
}

func TestFilledMatrixReadsFillValue(t *testing.T) {
	for _, shape := range [][2]int{{1, 1}, {2, 3}, {4, 1}, {5, 5}} {
		m, err := matrix.NewDenseFilled(shape[0], shape[1], 7)
		require.NoError(t, err)
		for i := 0; i < shape[0]; i++ {
			for j := 0; j < shape[1]; j++ {
				v, err := m.At(i, j)
				require.NoError(t, err)
				require.Equal(t, 7, v)
			}
		}
	}
}

func TestDenseConstructors(t *testing.T) {
	_, err := matrix.NewDenseFromRows([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromList(2, 2, []int{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrBadShape)

	m, err := matrix.NewDenseFromList(2, 3, []int{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.Elements())
	assert.Equal(t, "[1, 2, 3]\n[4, 5, 6]", m.String())

	g, err := matrix.NewDenseFromFunc(2, 2, func(i, j int) int { return 10*i + j })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 10, 11}, g.ElementsList())

	id, err := matrix.Identity[float64](3)
	require.NoError(t, err)
	assert.True(t, id.IsDiagonal())
	assert.True(t, id.IsSymmetric())

	r1, err := matrix.NewDenseRandom(3, 3, -4, 4, numeric.NewSource(5))
	require.NoError(t, err)
	r2, err := matrix.NewDenseRandom(3, 3, -4, 4, numeric.NewSource(5))
	require.NoError(t, err)
	assert.True(t, matrix.Equal[int](r1, r2))
}

func TestDenseAccessAndMutation(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	_, err := m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 3, 1), matrix.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, row.Elements())
	col, err := m.Column(2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 6}, col.Elements())

	require.NoError(t, m.SetRow(0, vector.New(7, 8, 9)))
	require.ErrorIs(t, m.SetRow(0, vector.New(1, 2)), matrix.ErrDimensionMismatch)
	require.NoError(t, m.SetColumn(0, vector.New(0, 0)))
	assert.Equal(t, [][]int{{0, 8, 9}, {0, 5, 6}}, m.Elements())

	require.NoError(t, m.SwitchRows(0, 1))
	require.NoError(t, m.SwitchColumns(0, 2))
	assert.Equal(t, [][]int{{6, 5, 0}, {9, 8, 0}}, m.Elements())
	require.ErrorIs(t, m.SwitchRows(0, 2), matrix.ErrOutOfRange)

	require.NoError(t, m.FillDiagonal(1))
	assert.Equal(t, [][]int{{1, 5, 0}, {9, 1, 0}}, m.Elements())
}

func TestDenseDiagonals(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	cases := map[int][]int{0: {1, 5}, 1: {2, 6}, 2: {3}, -1: {4}}
	for n, want := range cases {
		got, err := m.Diagonal(n)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, want, got.Elements(), "n=%d", n)
	}
	for _, n := range []int{3, -2} {
		_, err := m.Diagonal(n)
		require.ErrorIs(t, err, matrix.ErrOutOfRange, "n=%d", n)
	}
}

func TestDenseTranspose(t *testing.T) {
	m := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	tr := m.Transpose()
	require.Equal(t, matrix.KindDense, tr.Kind())
	assert.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.Elements())
	assert.True(t, matrix.Equal(tr.Transpose(), matrix.Matrix[int](m)))
	assert.True(t, matrix.Equal(m.ConjugateTranspose(), tr))
}

func TestDenseStructure(t *testing.T) {
	upper := mustDense(t, [][]int{{1, 2, 3}, {0, 4, 5}, {0, 0, 6}})
	assert.True(t, upper.IsUpperTriangular(0, true))
	assert.False(t, upper.IsUpperTriangular(1, true))
	assert.False(t, upper.IsLowerTriangular(0, true))
	assert.True(t, upper.IsUpperHessenberg())
	assert.False(t, upper.IsDiagonal())

	strict := mustDense(t, [][]int{{0, 1}, {0, 0}})
	assert.True(t, strict.IsUpperTriangular(1, true))

	hess := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}, {0, 7, 8}})
	assert.True(t, hess.IsUpperHessenberg())
	assert.False(t, hess.IsUpperTriangular(0, true))
	assert.False(t, hess.IsLowerHessenberg())

	lower := upper.Transpose()
	assert.True(t, lower.IsLowerTriangular(0, true))
	assert.True(t, lower.IsLowerHessenberg())

	wide := mustDense(t, [][]int{{1, 2, 3}, {0, 4, 5}})
	assert.True(t, wide.IsUpperTriangular(0, false))
	assert.False(t, wide.IsUpperTriangular(0, true))

	sym := mustDense(t, [][]int{{1, 7}, {7, 2}})
	assert.True(t, sym.IsSymmetric())
	assert.False(t, wide.IsSymmetric())

	z, err := matrix.NewDense[int](2, 2)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
}

func TestDenseDeterminant(t *testing.T) {
	tests := []struct {
		name string
		rows [][]int
		want int
	}{
		{"3x3", [][]int{{2, -3, 1}, {2, 0, -1}, {1, 4, 5}}, 49},
		{"pivot swap", [][]int{{0, 2, 1}, {3, 0, 0}, {0, 0, 4}}, -24},
		{"swap 2x2", [][]int{{0, 1}, {1, 0}}, -1},
		{"singular", [][]int{{1, 2}, {2, 4}}, 0},
		{"1x1", [][]int{{-9}}, -9},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			det, err := mustDense(t, tc.rows).Determinant()
			require.NoError(t, err)
			assert.Equal(t, tc.want, det)
		})
	}

	f, err := mustDense(t, [][]float64{{4, 3}, {6, 3}}).Determinant()
	require.NoError(t, err)
	assert.InDelta(t, -6.0, f, 1e-12)

	u, err := mustDense(t, [][]uint8{{0, 1}, {1, 0}}).Determinant()
	require.NoError(t, err)
	assert.Equal(t, uint8(255), u, "unsigned determinants wrap like Go conversions")

	_, err = mustDense(t, [][]int{{1, 2, 3}}).Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestDenseRank(t *testing.T) {
	assert.Equal(t, 2, mustDense(t, [][]int{{1, 2, 3}, {2, 4, 6}, {1, 0, 1}}).Rank())
	assert.Equal(t, 1, mustDense(t, [][]int64{{0, 0, 5}, {0, 0, 10}}).Rank())
	assert.Equal(t, 1, mustDense(t, [][]float64{{1, 2}, {2, 4}}).Rank())
	assert.Equal(t, 2, mustDense(t, [][]float64{{1, 2}, {3, 4}}).Rank())

	nearly := mustDense(t, [][]float64{{1, 1}, {1, 1 + 1e-9}})
	r, err := matrix.Rank[float64](nearly)
	require.NoError(t, err)
	assert.Equal(t, 2, r)
	r, err = matrix.Rank[float64](nearly, matrix.WithEpsilon(1e-6))
	require.NoError(t, err)
	assert.Equal(t, 1, r)

	assert.Panics(t, func() { matrix.WithEpsilon(-1) })
}

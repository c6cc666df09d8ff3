// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/vector"
)

func TestAddSubVariants(t *testing.T) {
	a := matrix.NewDiagonal(1, 2)
	b := matrix.NewDiagonal(10, 20)
	sum, err := matrix.Add[int](a, b)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDiagonal, sum.Kind())
	assert.Equal(t, [][]int{{11, 0}, {0, 22}}, sum.Elements())

	p := mustPerm(t, 1, 0)
	mixed, err := matrix.Sub[int](a, p)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, mixed.Kind())
	assert.Equal(t, [][]int{{1, -1}, {-1, 2}}, mixed.Elements())

	_, err = matrix.Add[int](a, matrix.NewDiagonal(1, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Add[int](a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	var nilDense *matrix.Dense[int]
	_, err = matrix.Add[int](a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFloatFastPathMatchesGeneric(t *testing.T) {
	type real64 float64
	rows := [][]float64{{1.5, -2}, {0.25, 4}}
	fa := mustDense(t, rows)
	fb := mustDense(t, [][]float64{{3, 1}, {-1, 0.5}})
	ga, err := matrix.NewDenseFromFunc(2, 2, func(i, j int) real64 { return real64(rows[i][j]) })
	require.NoError(t, err)
	gb, err := matrix.NewDenseFromFunc(2, 2, func(i, j int) real64 {
		v, _ := fb.At(i, j)
		return real64(v)
	})
	require.NoError(t, err)

	type pair struct {
		fast func() (matrix.Matrix[float64], error)
		slow func() (matrix.Matrix[real64], error)
	}
	ops := map[string]pair{
		"add": {
			func() (matrix.Matrix[float64], error) { return matrix.Add[float64](fa, fb) },
			func() (matrix.Matrix[real64], error) { return matrix.Add[real64](ga, gb) },
		},
		"sub": {
			func() (matrix.Matrix[float64], error) { return matrix.Sub[float64](fa, fb) },
			func() (matrix.Matrix[real64], error) { return matrix.Sub[real64](ga, gb) },
		},
		"mul": {
			func() (matrix.Matrix[float64], error) { return matrix.Mul[float64](fa, fb) },
			func() (matrix.Matrix[real64], error) { return matrix.Mul[real64](ga, gb) },
		},
		"scale": {
			func() (matrix.Matrix[float64], error) { return matrix.Scale[float64](fa, -2.5) },
			func() (matrix.Matrix[real64], error) { return matrix.Scale[real64](ga, -2.5) },
		},
	}
	for name, op := range ops {
		fast, err := op.fast()
		require.NoError(t, err, name)
		slow, err := op.slow()
		require.NoError(t, err, name)
		fl, sl := fast.ElementsList(), slow.ElementsList()
		require.Len(t, sl, len(fl))
		for k := range fl {
			assert.InDelta(t, fl[k], float64(sl[k]), 1e-12, "%s[%d]", name, k)
		}
	}
}

func TestMulVariants(t *testing.T) {
	p := mustPerm(t, 2, 0, 1)
	q := mustPerm(t, 1, 0, 2)
	pq, err := matrix.Mul[int](p, q)
	require.NoError(t, err)
	require.Equal(t, matrix.KindPermutation, pq.Kind())

	dp, err := matrix.ToDense[int](p)
	require.NoError(t, err)
	dq, err := matrix.ToDense[int](q)
	require.NoError(t, err)
	want, err := matrix.Mul[int](dp, dq)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDense, want.Kind())
	assert.True(t, matrix.Equal(pq, want))

	d1, err := matrix.NewDiagonalWithDims(2, 3, []int{2, 3})
	require.NoError(t, err)
	d2, err := matrix.NewDiagonalWithDims(3, 4, []int{5, 7, 11})
	require.NoError(t, err)
	dd, err := matrix.Mul[int](d1, d2)
	require.NoError(t, err)
	require.Equal(t, matrix.KindDiagonal, dd.Kind())
	assert.Equal(t, [][]int{{10, 0, 0, 0}, {0, 21, 0, 0}}, dd.Elements())

	_, err = matrix.Mul[int](d1, d1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	a := mustDense(t, [][]int{{1, 2}, {3, 4}, {5, 6}})
	b := mustDense(t, [][]int{{1, 0, 2}, {0, 1, 3}})
	ab, err := matrix.Mul[int](a, b)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 8}, {3, 4, 18}, {5, 6, 28}}, ab.Elements())
}

func TestScaleEqualMatVecOuter(t *testing.T) {
	d := matrix.NewDiagonal(1, -2)
	s, err := matrix.Scale[int](d, 3)
	require.NoError(t, err)
	assert.Equal(t, matrix.KindDiagonal, s.Kind())
	assert.Equal(t, []int{3, 0, 0, -6}, s.ElementsList())

	ps, err := matrix.Scale[int](mustPerm(t, 1, 0), 2)
	require.NoError(t, err)
	assert.Equal(t, matrix.KindDense, ps.Kind())

	dense, err := matrix.ToDense[int](d)
	require.NoError(t, err)
	assert.True(t, matrix.Equal[int](d, dense), "equality crosses variants")
	require.NoError(t, dense.Set(0, 1, 1))
	assert.False(t, matrix.Equal[int](d, dense))

	m := mustDense(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	mv, err := matrix.MatVec[int](m, vector.New(1, 0, -1))
	require.NoError(t, err)
	assert.Equal(t, []int{-2, -2}, mv.Elements())
	_, err = matrix.MatVec[int](m, vector.New(1, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	o, err := matrix.Outer(vector.New(1, 2), vector.New(3, 4, 5))
	require.NoError(t, err)
	assert.Equal(t, [][]int{{3, 4, 5}, {6, 8, 10}}, o.Elements())
	assert.Equal(t, 1, o.Rank())
}

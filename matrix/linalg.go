// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmath/numeric"
)

// mask64 reduces a big.Int modulo 2^64 (two's complement for negatives).
var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// determinantCells dispatches on the element type of an n×n matrix.
//   - Floats: gonum mat.Det (LU with partial pivoting).
//   - Integers: exact Bareiss elimination, narrowed to T with wrap-around.
//
// The 0×0 determinant is 1.
func determinantCells[T numeric.Number](n int, at func(i, j int) T) T {
	if n == 0 {
		return 1
	}
	if numeric.IsFloat[T]() {
		return T(mat.Det(toGonum(n, n, at)))
	}

	return fromBig[T](bareissDeterminant(toBig(n, n, at)))
}

// rankCells dispatches on the element type of an r×c matrix.
//   - Floats: singular values above eps·σmax via gonum mat.SVD, falling back
//     to partial-pivot elimination if the SVD does not converge.
//   - Integers: exact fraction-free elimination.
func rankCells[T numeric.Number](d Dimensions, at func(i, j int) T, eps float64) int {
	if d.rows == 0 || d.cols == 0 {
		return 0
	}
	if !numeric.IsFloat[T]() {
		return bareissRank(toBig(d.rows, d.cols, at))
	}
	a := toGonum(d.rows, d.cols, at)
	var svd mat.SVD
	if svd.Factorize(a, mat.SVDNone) {
		return svd.Rank(eps)
	}

	return eliminationRank(a, eps)
}

// toGonum copies the cells into a gonum dense matrix. r and c must be > 0.
func toGonum[T numeric.Number](r, c int, at func(i, j int) T) *mat.Dense {
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data[i*c+j] = float64(at(i, j))
		}
	}

	return mat.NewDense(r, c, data)
}

// toBig copies the cells into an exact integer grid.
func toBig[T numeric.Number](r, c int, at func(i, j int) T) [][]*big.Int {
	unsigned := numeric.IsUnsigned[T]()
	out := make([][]*big.Int, r)
	for i := range out {
		out[i] = make([]*big.Int, c)
		for j := range out[i] {
			v := at(i, j)
			if unsigned {
				out[i][j] = new(big.Int).SetUint64(uint64(v))
			} else {
				out[i][j] = big.NewInt(int64(v))
			}
		}
	}

	return out
}

// fromBig narrows x to T modulo 2^64, matching Go integer conversion.
func fromBig[T numeric.Number](x *big.Int) T {
	return T(new(big.Int).And(x, mask64).Uint64())
}

// bareissDeterminant runs fraction-free elimination on a square grid in place.
// Every intermediate entry is a minor of the input, so each division is exact.
// Complexity: O(n³) big-integer operations.
func bareissDeterminant(m [][]*big.Int) *big.Int {
	n := len(m)
	sign := 1
	prev := big.NewInt(1)
	tmp := new(big.Int)
	for k := 0; k < n-1; k++ {
		if m[k][k].Sign() == 0 {
			p := k + 1
			for p < n && m[p][k].Sign() == 0 {
				p++
			}
			if p == n {
				return new(big.Int)
			}
			m[k], m[p] = m[p], m[k]
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				// m[i][j] = (m[i][j]*m[k][k] - m[i][k]*m[k][j]) / prev
				m[i][j].Mul(m[i][j], m[k][k])
				tmp.Mul(m[i][k], m[k][j])
				m[i][j].Sub(m[i][j], tmp)
				m[i][j].Quo(m[i][j], prev)
			}
		}
		prev = m[k][k]
	}
	det := new(big.Int).Set(m[n-1][n-1])
	if sign < 0 {
		det.Neg(det)
	}

	return det
}

// bareissRank counts pivots of fraction-free elimination on an r×c grid,
// skipping columns that have no pivot left.
func bareissRank(m [][]*big.Int) int {
	rows, cols := len(m), len(m[0])
	prev := big.NewInt(1)
	tmp := new(big.Int)
	rank := 0
	for col := 0; col < cols && rank < rows; col++ {
		p := rank
		for p < rows && m[p][col].Sign() == 0 {
			p++
		}
		if p == rows {
			continue
		}
		m[rank], m[p] = m[p], m[rank]
		for i := rank + 1; i < rows; i++ {
			for j := col + 1; j < cols; j++ {
				m[i][j].Mul(m[i][j], m[rank][col])
				tmp.Mul(m[i][col], m[rank][j])
				m[i][j].Sub(m[i][j], tmp)
				m[i][j].Quo(m[i][j], prev)
			}
			m[i][col].SetInt64(0)
		}
		prev = m[rank][col]
		rank++
	}

	return rank
}

// eliminationRank is Gaussian elimination with partial pivoting; a pivot
// counts when |pivot| > eps·max(‖a‖∞, 1).
func eliminationRank(a *mat.Dense, eps float64) int {
	r, c := a.Dims()
	w := mat.DenseCopyOf(a)
	scale := mat.Norm(w, math.Inf(1))
	tol := eps * math.Max(scale, 1)
	rank := 0
	for col := 0; col < c && rank < r; col++ {
		p, best := -1, tol
		for i := rank; i < r; i++ {
			if v := math.Abs(w.At(i, col)); v > best {
				p, best = i, v
			}
		}
		if p < 0 {
			continue
		}
		if p != rank {
			rp := mat.Row(nil, p, w)
			w.SetRow(p, mat.Row(nil, rank, w))
			w.SetRow(rank, rp)
		}
		pivot := w.At(rank, col)
		for i := rank + 1; i < r; i++ {
			f := w.At(i, col) / pivot
			for j := col; j < c; j++ {
				w.Set(i, j, w.At(i, j)-f*w.At(rank, j))
			}
		}
		rank++
	}

	return rank
}

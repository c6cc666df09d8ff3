package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/vector"
)

// meters is a named float so the generic (non-gonum) path gets exercised.
type meters float64

func TestConstructorsAndAccess(t *testing.T) {
	src := []int{1, 2, 3}
	v := vector.New(src...)
	src[0] = 99
	x, err := v.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, x, "New must copy its input")

	_, err = v.At(3)
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
	require.ErrorIs(t, v.Set(-1, 0), vector.ErrIndexOutOfBounds)

	z, err := vector.Zeros[float64](4)
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 4, z.Len())

	_, err = vector.Fill(-1, 2)
	require.ErrorIs(t, err, vector.ErrBadLength)

	sq, err := vector.FromFunc(4, func(i int) int { return i * i })
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 9}, sq.Elements())
	assert.Equal(t, "[0, 1, 4, 9]", sq.String())

	s, err := sq.Slice(1, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4}, s.Elements())
	_, err = sq.Slice(3, 1)
	require.ErrorIs(t, err, vector.ErrIndexOutOfBounds)
}

func TestArithmeticLengthMismatch(t *testing.T) {
	a := vector.New(1.0, 2.0)
	b := vector.New(1.0, 2.0, 3.0)
	_, err := a.Add(b)
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
	_, err = a.Dot(b)
	require.ErrorIs(t, err, vector.ErrLengthMismatch)
	_, err = a.Sub(nil)
	require.ErrorIs(t, err, vector.ErrNilVector)
}

func TestAddSubRoundTrip(t *testing.T) {
	a := vector.New(1, -2, 3, 40)
	b := vector.New(5, 6, -7, 8)
	sum, err := a.Add(b)
	require.NoError(t, err)
	back, err := sum.Sub(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	ua := vector.New[uint8](250, 3)
	ub := vector.New[uint8](10, 4)
	us, err := ua.Add(ub)
	require.NoError(t, err)
	assert.Equal(t, []uint8{4, 7}, us.Elements(), "unsigned arithmetic wraps")
}

func TestFastPathMatchesGeneric(t *testing.T) {
	fa := vector.New(1.5, -2.0, 3.25)
	fb := vector.New(0.5, 4.0, -1.0)
	ma := vector.MapTo(fa, func(x float64) meters { return meters(x) })
	mb := vector.MapTo(fb, func(x float64) meters { return meters(x) })

	fd, err := fa.Dot(fb)
	require.NoError(t, err)
	md, err := ma.Dot(mb)
	require.NoError(t, err)
	assert.InDelta(t, fd, float64(md), 1e-12)

	fp, err := fa.Mul(fb)
	require.NoError(t, err)
	mp, err := ma.Mul(mb)
	require.NoError(t, err)
	for i := 0; i < fp.Len(); i++ {
		x, _ := fp.At(i)
		y, _ := mp.At(i)
		assert.InDelta(t, x, float64(y), 1e-12)
	}

	fn, err := fa.Norm()
	require.NoError(t, err)
	mn, err := ma.Norm()
	require.NoError(t, err)
	assert.InDelta(t, fn, mn, 1e-12)

	assert.InDelta(t, fa.Sum(), float64(ma.Sum()), 1e-12)
	assert.True(t, fa.Neg().Neg().Equal(fa))
}

func TestDotCommutesAndNorm(t *testing.T) {
	a := vector.New(3, 4)
	b := vector.New(-2, 7)
	ab, err := a.Dot(b)
	require.NoError(t, err)
	ba, err := b.Dot(a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)
	assert.Equal(t, 22, ab)

	n, err := a.Norm()
	require.NoError(t, err)
	assert.Equal(t, 5.0, n)

	_, err = vector.New[float64]().Norm()
	require.ErrorIs(t, err, vector.ErrEmptyVector)
	_, err = vector.New[int]().Min()
	require.ErrorIs(t, err, vector.ErrEmptyVector)
}

func TestDivision(t *testing.T) {
	_, err := vector.New(4, 6).Div(vector.New(2, 0))
	require.ErrorIs(t, err, vector.ErrDivisionByZero)
	_, err = vector.New(4, 6).DivScalar(0)
	require.ErrorIs(t, err, vector.ErrDivisionByZero)

	q, err := vector.New(4, 6).DivScalar(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, q.Elements())

	f, err := vector.New(1.0, -1.0).Div(vector.New(0.0, 0.0))
	require.NoError(t, err)
	x, _ := f.At(0)
	y, _ := f.At(1)
	assert.True(t, math.IsInf(x, 1))
	assert.True(t, math.IsInf(y, -1))
}

func TestScalarOps(t *testing.T) {
	v := vector.New(1, 2, 3)
	assert.Equal(t, []int{3, 4, 5}, v.AddScalar(2).Elements())
	assert.Equal(t, []int{0, 1, 2}, v.SubScalar(1).Elements())
	assert.Equal(t, []int{3, 6, 9}, v.Scale(3).Elements())
	assert.Equal(t, []int{1, 2, 3}, v.Elements(), "out-of-place ops leave the receiver alone")

	require.NoError(t, v.AddInPlace(vector.New(1, 1, 1)))
	v.ScaleInPlace(2)
	assert.Equal(t, []int{4, 6, 8}, v.Elements())

	lo, err := v.Min()
	require.NoError(t, err)
	hi, err := v.Max()
	require.NoError(t, err)
	assert.Equal(t, 4, lo)
	assert.Equal(t, 8, hi)

	f := vector.New(2.0, -1.0, 7.0)
	flo, _ := f.Min()
	fhi, _ := f.Max()
	assert.Equal(t, -1.0, flo)
	assert.Equal(t, 7.0, fhi)
}

func TestFunctional(t *testing.T) {
	v := vector.New(3, 1, 2)
	assert.Equal(t, []int{9, 1, 4}, v.Map(func(x int) int { return x * x }).Elements())
	assert.Equal(t, 6, vector.Reduce(v, 0, func(acc, x int) int { return acc + x }))

	c, err := v.Combine(vector.New(1, 1, 1), func(a, b int) int { return a - b })
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, c.Elements())

	pairs, err := vector.Zip(v, vector.New(30, 10, 20))
	require.NoError(t, err)
	require.Len(t, pairs, 3)
	assert.Equal(t, 3, pairs[0].A)
	assert.Equal(t, 30, pairs[0].B)

	assert.Equal(t, []int{1, 2, 3}, v.Clone().Sort(vector.Ascending).Elements())
	v.Sort(vector.Descending)
	assert.Equal(t, []int{3, 2, 1}, v.Elements(), "Sort works in place")
	assert.Equal(t, "descending", vector.Descending.String())
}

func TestRandomIsReproducible(t *testing.T) {
	a, err := vector.Random(16, -5, 5, numeric.NewSource(7))
	require.NoError(t, err)
	b, err := vector.Random(16, -5, 5, numeric.NewSource(7))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
	for _, x := range a.Elements() {
		assert.GreaterOrEqual(t, x, -5)
		assert.LessOrEqual(t, x, 5)
	}

	_, err = vector.Random(3, 5, -5, nil)
	require.ErrorIs(t, err, numeric.ErrBadRange)
}

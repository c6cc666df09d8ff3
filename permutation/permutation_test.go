package permutation_test

import (
	"testing"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/numeric"
	"github.com/katalvlaran/lvmath/permutation"
)

func mustCycle(t *testing.T, elems ...int) permutation.Cycle {
	t.Helper()
	c, err := permutation.NewCycle(elems...)
	require.NoError(t, err)

	return c
}

func TestNewRejectsNonBijections(t *testing.T) {
	for _, arr := range [][]int{{0, 0}, {1, 2}, {-1, 0}, {0, 2, 1, 2}} {
		_, err := permutation.New(arr...)
		require.ErrorIs(t, err, permutation.ErrInvalidPermutation, "%v", arr)
	}
	p, err := permutation.New()
	require.NoError(t, err)
	require.Equal(t, 0, p.Len())
	require.Empty(t, p.Cycles())
	require.Equal(t, permutation.Even, p.Parity())
}

func TestCyclesOfWorkedExample(t *testing.T) {
	g := NewWithT(t)
	p, err := permutation.New(1, 4, 3, 2, 0)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(p.Cycles()).To(ConsistOf(
		WithTransform(permutation.Cycle.Elements, Equal([]int{0, 1, 4})),
		WithTransform(permutation.Cycle.Elements, Equal([]int{2, 3})),
	))
	g.Expect(p.CycleSet().Contains(mustCycle(t, 4, 0, 1))).To(BeTrue())
	g.Expect(p.CycleSet().Contains(mustCycle(t, 3, 2))).To(BeTrue())
	g.Expect(p.CycleSet().String()).To(Equal("(0 1 4)(2 3)"))
	g.Expect(p.Parity()).To(Equal(permutation.Odd))
	g.Expect(p.Sign()).To(Equal(-1))
}

func TestCyclesPartitionIndices(t *testing.T) {
	src := numeric.NewSource(11)
	for n := 0; n < 30; n++ {
		p, err := permutation.Random(n, src)
		require.NoError(t, err)

		seen := make(map[int]int)
		for _, c := range p.Cycles() {
			for _, e := range c.Elements() {
				seen[e]++
			}
		}
		require.Len(t, seen, n)
		for i := 0; i < n; i++ {
			require.Equal(t, 1, seen[i], "index %d must appear exactly once", i)
		}
		require.True(t, p.Inverse().Inverse().Equal(p))
	}
}

func TestCycleRotationEquality(t *testing.T) {
	a := mustCycle(t, 0, 1, 2)
	b := mustCycle(t, 1, 2, 0)
	c := mustCycle(t, 2, 0, 1)
	d := mustCycle(t, 0, 2, 1)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(c))
	require.True(t, c.Equal(a))
	require.False(t, a.Equal(d), "reversed orientation is a different cycle")
	require.Equal(t, []int{0, 1, 2}, c.Canonical().Elements())
	require.Equal(t, 2, permutation.NewCycleSet(a, b, c, d).Len())

	next, ok := a.Next(2)
	require.True(t, ok)
	require.Equal(t, 0, next)
	_, ok = a.Next(7)
	require.False(t, ok)

	require.Equal(t, permutation.Even, a.Parity())
	require.Equal(t, permutation.Odd, mustCycle(t, 3, 5).Parity())
	require.Equal(t, permutation.Even, mustCycle(t, 9).Parity())

	for _, bad := range [][]int{{}, {1, 1}, {0, -2}} {
		_, err := permutation.NewCycle(bad...)
		require.ErrorIs(t, err, permutation.ErrInvalidCycle)
	}
}

func TestParityAlgebra(t *testing.T) {
	even, odd := permutation.Even, permutation.Odd
	for _, p := range []permutation.Parity{even, odd} {
		require.Equal(t, p, even.Add(p), "even is the additive identity")
		require.Equal(t, p, even.Mul(p), "even is the multiplicative identity")
		require.Equal(t, even, p.Sub(p))
	}
	require.Equal(t, even, odd.Add(odd))
	require.Equal(t, odd, odd.Mul(odd))
	require.Equal(t, "odd", odd.String())
	require.Equal(t, 1, even.Sign())
}

func TestComposeInverseSwap(t *testing.T) {
	p, err := permutation.New(2, 0, 1)
	require.NoError(t, err)
	id, err := p.Compose(p.Inverse())
	require.NoError(t, err)
	require.True(t, id.IsIdentity())

	q, err := permutation.New(1, 0, 2)
	require.NoError(t, err)
	pq, err := p.Compose(q)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2, 1}, pq.Array())

	s := []string{"a", "b", "c"}
	direct, err := permutation.Apply(pq, s)
	require.NoError(t, err)
	stepped, err := permutation.Apply(p, s)
	require.NoError(t, err)
	stepped, err = permutation.Apply(q, stepped)
	require.NoError(t, err)
	require.Equal(t, direct, stepped)

	sw, err := p.Swap(0, 2)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0, 2}, sw.Array())
	require.Equal(t, []int{2, 0, 1}, p.Array(), "Swap must not mutate the receiver")
	tr, err := permutation.Transposition(3, 0, 2)
	require.NoError(t, err)
	viaCompose, err := p.Compose(tr)
	require.NoError(t, err)
	require.True(t, viaCompose.Equal(sw))

	small, _ := permutation.Identity(2)
	_, err = p.Compose(small)
	require.ErrorIs(t, err, permutation.ErrLengthMismatch)
	_, err = p.Swap(0, 3)
	require.ErrorIs(t, err, permutation.ErrIndexOutOfBounds)
}

func TestAccessors(t *testing.T) {
	p, err := permutation.New(3, 1, 0, 2)
	require.NoError(t, err)
	v, err := p.At(0)
	require.NoError(t, err)
	require.Equal(t, 3, v)
	_, err = p.At(4)
	require.ErrorIs(t, err, permutation.ErrIndexOutOfBounds)

	i, err := p.IndexOf(2)
	require.NoError(t, err)
	require.Equal(t, 3, i)
	_, err = p.IndexOf(9)
	require.ErrorIs(t, err, permutation.ErrNotFound)

	arr := p.Array()
	arr[0] = 0
	require.Equal(t, []int{3, 1, 0, 2}, p.Array())
	require.Equal(t, "[3 1 0 2]", p.String())
}

// SPDX-License-Identifier: MIT

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvmath/numeric"
)

// DefaultSeed seeds the generator when neither WithSeed nor WithRand is given.
const DefaultSeed int64 = 1

// WeightFn draws one edge weight.
type WeightFn[W numeric.Number] func(rng *rand.Rand) W

// ConstantWeightFn always returns w.
func ConstantWeightFn[W numeric.Number](w W) WeightFn[W] {
	return func(*rand.Rand) W { return w }
}

// UniformWeightFn draws integers uniformly from [lo, hi] and converts them to W.
// It panics if hi < lo.
func UniformWeightFn[W numeric.Number](lo, hi int) WeightFn[W] {
	if hi < lo {
		panic("builder: UniformWeightFn requires lo <= hi")
	}
	span := hi - lo + 1

	return func(rng *rand.Rand) W { return W(lo + rng.Intn(span)) }
}

type config[W numeric.Number] struct {
	rng      *rand.Rand
	weightFn WeightFn[W]
	directed bool
	offset   int
}

// Option mutates the builder configuration.
type Option[W numeric.Number] func(*config[W])

// WithSeed seeds a private generator.
func WithSeed[W numeric.Number](seed int64) Option[W] {
	return func(c *config[W]) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand shares an existing generator; nil is ignored.
func WithRand[W numeric.Number](r *rand.Rand) Option[W] {
	return func(c *config[W]) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithWeightFn sets the weight generator; nil is ignored.
func WithWeightFn[W numeric.Number](fn WeightFn[W]) Option[W] {
	return func(c *config[W]) {
		if fn != nil {
			c.weightFn = fn
		}
	}
}

// WithDirected emits each edge in one orientation only.
func WithDirected[W numeric.Number]() Option[W] {
	return func(c *config[W]) { c.directed = true }
}

// WithOffset shifts vertex IDs of every constructor by off.
func WithOffset[W numeric.Number](off int) Option[W] {
	return func(c *config[W]) { c.offset = off }
}

func newConfig[W numeric.Number](opts ...Option[W]) config[W] {
	c := config[W]{
		rng:      rand.New(rand.NewSource(DefaultSeed)),
		weightFn: ConstantWeightFn(W(1)),
	}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

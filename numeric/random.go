// SPDX-License-Identifier: MIT

package numeric

import (
	"errors"
	"fmt"
	"math/rand"
)

// DefaultSeed is used whenever a caller asks for seed 0, so that "no seed"
// still yields reproducible sequences.
const DefaultSeed int64 = 1

// ErrBadRange is returned when a random range has lo > hi.
var ErrBadRange = errors.New("numeric: invalid random range")

// Source produces uniformly distributed values for any Number type.
// A Source is not safe for concurrent use; derive one per goroutine.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a deterministic Source. seed==0 selects DefaultSeed.
func NewSource(seed int64) *Source {
	if seed == 0 {
		seed = DefaultSeed
	}

	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// orDefault lets nil Sources behave as NewSource(0).
func (s *Source) orDefault() *Source {
	if s == nil || s.rng == nil {
		return NewSource(0)
	}

	return s
}

// Shuffle permutes n elements in place through swap (Fisher–Yates).
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	s.orDefault().rng.Shuffle(n, swap)
}

// Uniform returns a uniformly distributed value of T.
// Floats are drawn from [0,1); integers cover every value of T.
func Uniform[T Number](src *Source) T {
	r := src.orDefault().rng
	if IsFloat[T]() {
		// float32 rounding can turn a draw just below 1 into 1.
		for {
			if v := T(r.Float64()); v < 1 {
				return v
			}
		}
	}

	return T(r.Uint64())
}

// UniformIn returns a uniformly distributed value in the range [lo, hi]
// for integers and [lo, hi) for floats.
func UniformIn[T Number](src *Source, lo, hi T) (T, error) {
	if lo > hi {
		return lo, fmt.Errorf("UniformIn(%v,%v): %w", lo, hi, ErrBadRange)
	}
	r := src.orDefault().rng
	if IsFloat[T]() {
		// Redraw when rounding in T lands on hi.
		for {
			v := lo + T(r.Float64()*(float64(hi)-float64(lo)))
			if v < hi || lo == hi {
				return v, nil
			}
		}
	}
	// Conversion sign-extends, so the difference is exact modulo 2^64.
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		// full 64-bit range
		return lo + T(r.Uint64()), nil
	}

	return lo + T(r.Uint64()%span), nil
}

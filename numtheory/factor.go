// SPDX-License-Identifier: MIT

package numtheory

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// ErrZero is returned when 0 is passed where a positive integer is required.
var ErrZero = errors.New("numtheory: argument must be positive")

// PrimePower is one factor p^k of a factorisation.
type PrimePower struct {
	Prime uint64
	Exp   int
}

func (pp PrimePower) String() string {
	if pp.Exp == 1 {
		return fmt.Sprint(pp.Prime)
	}

	return fmt.Sprintf("%d^%d", pp.Prime, pp.Exp)
}

// Factorize returns the prime factorisation of n in ascending prime order.
// Factorize(1) is empty. cache may be nil.
// Complexity: O(√n) on a cache miss.
func Factorize(n uint64, cache *FactorCache) ([]PrimePower, error) {
	if n == 0 {
		return nil, fmt.Errorf("Factorize(0): %w", ErrZero)
	}
	if f, ok := cache.get(n); ok {
		return slices.Clone(f), nil
	}

	f := trialDivision(n)
	cache.put(n, f)

	return slices.Clone(f), nil
}

func trialDivision(n uint64) []PrimePower {
	var out []PrimePower
	for p := uint64(2); p <= n/p; p++ {
		if n%p != 0 {
			continue
		}
		pp := PrimePower{Prime: p}
		for n%p == 0 {
			n /= p
			pp.Exp++
		}
		out = append(out, pp)
	}
	if n > 1 {
		out = append(out, PrimePower{Prime: n, Exp: 1})
	}

	return out
}

// Divisors returns every positive divisor of n in ascending order.
func Divisors(n uint64, cache *FactorCache) ([]uint64, error) {
	f, err := Factorize(n, cache)
	if err != nil {
		return nil, fmt.Errorf("Divisors: %w", err)
	}

	divs := []uint64{1}
	for _, pp := range f {
		powers := make([]uint64, pp.Exp)
		q := uint64(1)
		for i := range powers {
			q *= pp.Prime
			powers[i] = q
		}
		next := slices.Clone(divs)
		for _, p := range powers {
			next = append(next, lo.Map(divs, func(d uint64, _ int) uint64 { return d * p })...)
		}
		divs = next
	}
	slices.Sort(divs)

	return divs, nil
}

// Totient returns Euler's φ(n): the count of 1 ≤ k ≤ n coprime to n.
func Totient(n uint64, cache *FactorCache) (uint64, error) {
	f, err := Factorize(n, cache)
	if err != nil {
		return 0, fmt.Errorf("Totient: %w", err)
	}

	return lo.Reduce(f, func(acc uint64, pp PrimePower, _ int) uint64 {
		return acc / pp.Prime * (pp.Prime - 1)
	}, n), nil
}

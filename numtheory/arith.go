// SPDX-License-Identifier: MIT

package numtheory

import "github.com/katalvlaran/lvmath/numeric"

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD[T numeric.Integer](a, b T) T {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the non-negative least common multiple of a and b, or 0 if
// either is 0.
func LCM[T numeric.Integer](a, b T) T {
	if a == 0 || b == 0 {
		return 0
	}

	return abs(a / GCD(a, b) * b)
}

func abs[T numeric.Integer](x T) T {
	if x < 0 {
		return -x
	}

	return x
}

// IsPrime reports whether n is prime, by 6k±1 trial division.
// Complexity: O(√n).
func IsPrime(n uint64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for i := uint64(5); i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// PrimesUpTo returns every prime ≤ n in ascending order using the sieve of
// Eratosthenes. n < 2 yields nil.
// Complexity: O(n log log n) time, O(n) space.
func PrimesUpTo(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}

	return primes
}

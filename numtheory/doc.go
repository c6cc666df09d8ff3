// SPDX-License-Identifier: MIT

// Package numtheory provides integer helpers: gcd and lcm, primality, a
// prime sieve, factorisation, divisors and Euler's totient.
//
// Factorisation results may be memoised in a FactorCache, a bounded LRU
// owned by the caller. Passing a nil cache disables memoisation; the
// package keeps no global state.
package numtheory

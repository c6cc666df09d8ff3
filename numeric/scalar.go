// SPDX-License-Identifier: MIT

package numeric

import "math"

// DefaultEpsilon is the absolute tolerance used by tolerant float comparisons
// when callers do not supply one.
const DefaultEpsilon = 1e-12

// Zero returns the additive identity of T.
func Zero[T Number]() T { return 0 }

// One returns the multiplicative identity of T.
func One[T Number]() T { return 1 }

// FromInt converts a natural or integer constant into T.
// Values outside the range of T wrap following Go conversion rules.
func FromInt[T Number](n int) T { return T(n) }

// IsFloat reports whether T is a floating point type.
// Integer division truncates 1/2 to zero, floats keep the half.
func IsFloat[T Number]() bool {
	one, two := T(1), T(2)

	return one/two != 0
}

// Abs returns |v|. For unsigned types it is the identity.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Sign returns -1, 0 or +1 according to the sign of v.
// NaN yields 0.
func Sign[T Number](v T) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// Sqrt returns the square root of v computed in float64.
// Integer results are truncated toward zero.
func Sqrt[T Number](v T) T {
	return T(math.Sqrt(float64(v)))
}

// IsZero reports whether v equals zero. Floats are compared with the
// absolute tolerance eps (eps <= 0 means exact comparison); integers are
// always compared exactly.
func IsZero[T Number](v T, eps float64) bool {
	if v == 0 {
		return true
	}
	if eps <= 0 || !IsFloat[T]() {
		return false
	}

	return math.Abs(float64(v)) <= eps
}

// AlmostEqual reports whether a and b differ by at most eps.
// Integers are compared exactly.
func AlmostEqual[T Number](a, b T, eps float64) bool {
	if a == b {
		return true
	}
	if !IsFloat[T]() {
		return false
	}

	return math.Abs(float64(a)-float64(b)) <= eps
}

// IsNaNOrInf reports whether v is NaN or ±Inf. Always false for integers.
func IsNaNOrInf[T Number](v T) bool {
	if !IsFloat[T]() {
		return false
	}
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// IsUnsigned reports whether T is an unsigned integer type.
func IsUnsigned[T Number]() bool {
	var zero T

	return zero-1 > 0
}

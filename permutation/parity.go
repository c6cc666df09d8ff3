// SPDX-License-Identifier: MIT

package permutation

// Parity classifies a permutation by the number of transpositions it
// decomposes into, modulo 2.
type Parity uint8

const (
	// Even is the parity of an even number of transpositions.
	Even Parity = iota
	// Odd is the parity of an odd number of transpositions.
	Odd
)

// ParityOf returns the parity of n transpositions.
func ParityOf(n int) Parity {
	if n%2 == 0 {
		return Even
	}

	return Odd
}

// Add is exclusive or: two parities of the same kind sum to Even.
func (p Parity) Add(q Parity) Parity { return p ^ q }

// Sub equals Add over GF(2).
func (p Parity) Sub(q Parity) Parity { return p ^ q }

// Mul yields Even only when both operands are Even, so Even is its identity.
func (p Parity) Mul(q Parity) Parity { return p | q }

// Sign maps Even to +1 and Odd to -1.
func (p Parity) Sign() int {
	if p == Odd {
		return -1
	}

	return 1
}

// String returns "even" or "odd".
func (p Parity) String() string {
	if p == Odd {
		return "odd"
	}

	return "even"
}

// SPDX-License-Identifier: MIT

// Package vector implements Vector[T], a dense one-dimensional container over
// any numeric.Number element type.
//
// A Vector owns its backing storage: constructors copy their input and every
// arithmetic operation returns a fresh Vector. The explicit exceptions are
// Set, Sort, SortFunc and the *InPlace helpers, which mutate the receiver.
//
// Element-wise operations and reductions have two code paths. The generic
// path works for every Number type. When T is float64 the same operations
// are routed through gonum's floats package, which is behaviourally
// indistinguishable from the generic path up to floating-point rounding.
//
// Errors are returned, never panicked:
//
//	ErrIndexOutOfBounds - At/Set/Slice outside [0, Len()).
//	ErrLengthMismatch   - binary operation on vectors of different length.
//	ErrEmptyVector      - Norm/Min/Max on an empty vector.
//	ErrDivisionByZero   - integer division by zero.
//
// Vectors are single-owner values and are not safe for concurrent mutation.
package vector

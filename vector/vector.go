// SPDX-License-Identifier: MIT

package vector

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvmath/numeric"
)

// Vector is a dense, ordered sequence of T. The zero value is an empty vector.
type Vector[T numeric.Number] struct {
	data []T
}

// New returns a vector holding a copy of elems.
func New[T numeric.Number](elems ...T) *Vector[T] {
	data := make([]T, len(elems))
	copy(data, elems)

	return &Vector[T]{data: data}
}

// Wrap adopts s as backing storage without copying.
// The caller must not keep using s independently afterwards.
func Wrap[T numeric.Number](s []T) *Vector[T] {
	return &Vector[T]{data: s}
}

// FromFunc builds a vector of length n with element i set to fn(i).
func FromFunc[T numeric.Number](n int, fn func(i int) T) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}
	data := make([]T, n)
	for i := range data {
		data[i] = fn(i)
	}

	return &Vector[T]{data: data}, nil
}

// Fill builds a vector of length n with every element equal to value.
func Fill[T numeric.Number](n int, value T) (*Vector[T], error) {
	return FromFunc(n, func(int) T { return value })
}

// Zeros builds a zero vector of length n.
func Zeros[T numeric.Number](n int) (*Vector[T], error) {
	return Fill(n, numeric.Zero[T]())
}

// Random builds a vector of length n with elements drawn uniformly from
// [lo, hi] (integers) or [lo, hi) (floats). A nil src uses the default seed.
func Random[T numeric.Number](n int, lo, hi T, src *numeric.Source) (*Vector[T], error) {
	if n < 0 {
		return nil, vectorErrorf(opNew, ErrBadLength)
	}
	if src == nil {
		src = numeric.NewSource(0)
	}
	data := make([]T, n)
	var err error
	for i := range data {
		if data[i], err = numeric.UniformIn(src, lo, hi); err != nil {
			return nil, vectorErrorf(opNew, err)
		}
	}

	return &Vector[T]{data: data}, nil
}

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return len(v.data) }

// At returns element i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.data) {
		return 0, fmt.Errorf("Vector.%s(%d): %w", opAt, i, ErrIndexOutOfBounds)
	}

	return v.data[i], nil
}

// Set assigns element i.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= len(v.data) {
		return fmt.Errorf("Vector.%s(%d): %w", opSet, i, ErrIndexOutOfBounds)
	}
	v.data[i] = value

	return nil
}

// Slice returns a new vector with the elements in [from, to).
func (v *Vector[T]) Slice(from, to int) (*Vector[T], error) {
	if from < 0 || to > len(v.data) || from > to {
		return nil, fmt.Errorf("Vector.%s(%d,%d): %w", opSlice, from, to, ErrIndexOutOfBounds)
	}

	return New(v.data[from:to]...), nil
}

// Elements returns a copy of the elements.
func (v *Vector[T]) Elements() []T {
	out := make([]T, len(v.data))
	copy(out, v.data)

	return out
}

// Clone returns an independent copy.
func (v *Vector[T]) Clone() *Vector[T] { return New(v.data...) }

// Conjugate returns a copy; conjugation is the identity for real element types.
func (v *Vector[T]) Conjugate() *Vector[T] { return v.Clone() }

// IsZero reports whether every element is exactly zero.
func (v *Vector[T]) IsZero() bool {
	for _, x := range v.data {
		if x != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether w has the same length and elements.
func (v *Vector[T]) Equal(w *Vector[T]) bool {
	if w == nil || len(v.data) != len(w.data) {
		return false
	}
	for i := range v.data {
		if v.data[i] != w.data[i] {
			return false
		}
	}

	return true
}

// String renders the vector as "[a, b, c]".
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", x)
	}
	sb.WriteString("]")

	return sb.String()
}

// sameLen validates a binary operand.
func (v *Vector[T]) sameLen(op string, w *Vector[T]) error {
	if w == nil {
		return vectorErrorf(op, ErrNilVector)
	}
	if len(v.data) != len(w.data) {
		return fmt.Errorf("Vector.%s(%d vs %d): %w", op, len(v.data), len(w.data), ErrLengthMismatch)
	}

	return nil
}

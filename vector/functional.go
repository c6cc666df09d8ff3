// SPDX-License-Identifier: MIT

package vector

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvmath/numeric"
)

// Order selects the direction of Sort.
type Order int

const (
	// Ascending sorts smallest first.
	Ascending Order = iota
	// Descending sorts largest first.
	Descending
)

// Map returns a vector with fn applied to every element.
func (v *Vector[T]) Map(fn func(T) T) *Vector[T] {
	return Wrap(lo.Map(v.data, func(x T, _ int) T { return fn(x) }))
}

// MapTo converts v into a vector of another element type.
func MapTo[T, U numeric.Number](v *Vector[T], fn func(T) U) *Vector[U] {
	return Wrap(lo.Map(v.data, func(x T, _ int) U { return fn(x) }))
}

// Reduce folds v from the left starting at init.
func Reduce[T numeric.Number, A any](v *Vector[T], init A, fn func(acc A, x T) A) A {
	return lo.Reduce(v.data, func(acc A, x T, _ int) A { return fn(acc, x) }, init)
}

// Combine returns fn(v[i], w[i]) for every i.
func (v *Vector[T]) Combine(w *Vector[T], fn func(a, b T) T) (*Vector[T], error) {
	if err := v.sameLen(opCombine, w); err != nil {
		return nil, err
	}
	out := make([]T, len(v.data))
	for i := range out {
		out[i] = fn(v.data[i], w.data[i])
	}

	return Wrap(out), nil
}

// Zip pairs the elements of v and w positionally.
func Zip[T numeric.Number](v, w *Vector[T]) ([]lo.Tuple2[T, T], error) {
	if v == nil {
		return nil, vectorErrorf(opZip, ErrNilVector)
	}
	if err := v.sameLen(opZip, w); err != nil {
		return nil, err
	}

	return lo.Zip2(v.data, w.data), nil
}

// Sort sorts v in place and returns it. Equal elements keep their relative order.
func (v *Vector[T]) Sort(order Order) *Vector[T] {
	switch order {
	case Descending:
		return v.SortFunc(func(a, b T) int { return cmp.Compare(b, a) })
	default:
		return v.SortFunc(cmp.Compare[T])
	}
}

// SortFunc stably sorts v in place by the three-way comparator fn and returns it.
func (v *Vector[T]) SortFunc(fn func(a, b T) int) *Vector[T] {
	slices.SortStableFunc(v.data, fn)

	return v
}

// String renders the order name.
func (o Order) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

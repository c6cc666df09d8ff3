// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/lvmath/numeric"
)

// Permutation is a bijection on {0, …, n-1} stored as its array form:
// index i maps to arr[i].
type Permutation struct {
	arr []int

	once   sync.Once
	cycles []Cycle
	parity Parity
}

// New validates arr as a bijection on [0, len(arr)) and copies it.
func New(arr ...int) (*Permutation, error) {
	seen := make([]bool, len(arr))
	for i, v := range arr {
		if v < 0 || v >= len(arr) {
			return nil, fmt.Errorf("Permutation.%s: arr[%d]=%d out of [0,%d): %w",
				opNew, i, v, len(arr), ErrInvalidPermutation)
		}
		if seen[v] {
			return nil, fmt.Errorf("Permutation.%s: value %d repeated: %w", opNew, v, ErrInvalidPermutation)
		}
		seen[v] = true
	}

	return &Permutation{arr: slices.Clone(arr)}, nil
}

// Identity returns the identity permutation of size n.
func Identity(n int) (*Permutation, error) {
	if n < 0 {
		return nil, fmt.Errorf("Permutation.Identity(%d): %w", n, ErrInvalidPermutation)
	}
	arr := make([]int, n)
	for i := range arr {
		arr[i] = i
	}

	return &Permutation{arr: arr}, nil
}

// Transposition returns the permutation of size n exchanging i and j.
func Transposition(n, i, j int) (*Permutation, error) {
	p, err := Identity(n)
	if err != nil {
		return nil, err
	}
	if i < 0 || i >= n || j < 0 || j >= n {
		return nil, fmt.Errorf("Permutation.Transposition(%d,%d,%d): %w", n, i, j, ErrIndexOutOfBounds)
	}
	p.arr[i], p.arr[j] = j, i

	return p, nil
}

// Random returns a uniformly random permutation of size n (Fisher–Yates).
// A nil src uses numeric.DefaultSeed.
func Random(n int, src *numeric.Source) (*Permutation, error) {
	p, err := Identity(n)
	if err != nil {
		return nil, permErrorf(opRandom, err)
	}
	src.Shuffle(n, func(i, j int) { p.arr[i], p.arr[j] = p.arr[j], p.arr[i] })

	return p, nil
}

// Len returns n.
func (p *Permutation) Len() int { return len(p.arr) }

// At returns the image of i.
func (p *Permutation) At(i int) (int, error) {
	if i < 0 || i >= len(p.arr) {
		return 0, fmt.Errorf("Permutation.%s(%d): %w", opAt, i, ErrIndexOutOfBounds)
	}

	return p.arr[i], nil
}

// Array returns a copy of the array form.
func (p *Permutation) Array() []int { return slices.Clone(p.arr) }

// IndexOf returns the i with p(i) == v. It scans linearly, O(n).
func (p *Permutation) IndexOf(v int) (int, error) {
	if i := slices.Index(p.arr, v); i >= 0 {
		return i, nil
	}

	return 0, fmt.Errorf("Permutation.%s(%d): %w", opIndexOf, v, ErrNotFound)
}

// Cycles returns the disjoint cycle decomposition, fixed points included.
// Each cycle starts at its smallest element and the list is sorted by it.
func (p *Permutation) Cycles() []Cycle {
	p.decompose()

	return slices.Clone(p.cycles)
}

// CycleSet returns the decomposition as a set with rotation-invariant lookup.
func (p *Permutation) CycleSet() *CycleSet {
	p.decompose()

	return &CycleSet{cycles: slices.Clone(p.cycles)}
}

// decompose walks every orbit once. Visiting starts in increasing order, so
// each orbit is entered at its minimum and emitted already canonical.
func (p *Permutation) decompose() {
	p.once.Do(func() {
		visited := make([]bool, len(p.arr))
		parity := Even
		for start := range p.arr {
			if visited[start] {
				continue
			}
			var orbit []int
			for i := start; !visited[i]; i = p.arr[i] {
				visited[i] = true
				orbit = append(orbit, i)
			}
			c := Cycle{elems: orbit}
			p.cycles = append(p.cycles, c)
			parity = parity.Add(c.Parity())
		}
		p.parity = parity
	})
}

// Parity returns the sum of the parities of all cycles.
func (p *Permutation) Parity() Parity {
	p.decompose()

	return p.parity
}

// Sign returns +1 for even and -1 for odd permutations.
func (p *Permutation) Sign() int { return p.Parity().Sign() }

// IsIdentity reports whether every index is a fixed point.
func (p *Permutation) IsIdentity() bool {
	for i, v := range p.arr {
		if i != v {
			return false
		}
	}

	return true
}

// Inverse returns q with q[p[i]] = i.
func (p *Permutation) Inverse() *Permutation {
	inv := make([]int, len(p.arr))
	for i, v := range p.arr {
		inv[v] = i
	}

	return &Permutation{arr: inv}
}

// Compose returns p∘q, the permutation i ↦ p[q[i]].
func (p *Permutation) Compose(q *Permutation) (*Permutation, error) {
	if q == nil || len(q.arr) != len(p.arr) {
		return nil, permErrorf(opCompose, ErrLengthMismatch)
	}
	out := make([]int, len(p.arr))
	for i, v := range q.arr {
		out[i] = p.arr[v]
	}

	return &Permutation{arr: out}, nil
}

// Swap returns a copy of p with the images of i and j exchanged, which is
// p∘(i j).
func (p *Permutation) Swap(i, j int) (*Permutation, error) {
	if i < 0 || i >= len(p.arr) || j < 0 || j >= len(p.arr) {
		return nil, fmt.Errorf("Permutation.%s(%d,%d): %w", opSwap, i, j, ErrIndexOutOfBounds)
	}
	out := slices.Clone(p.arr)
	out[i], out[j] = out[j], out[i]

	return &Permutation{arr: out}, nil
}

// Equal reports whether p and q have the same array form.
func (p *Permutation) Equal(q *Permutation) bool {
	return q != nil && slices.Equal(p.arr, q.arr)
}

// String renders the array form, e.g. "[1 4 3 2 0]".
func (p *Permutation) String() string {
	parts := make([]string, len(p.arr))
	for i, v := range p.arr {
		parts[i] = fmt.Sprint(v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Apply gathers s through p: out[i] = s[p[i]]. Hence
// Apply(p.Compose(q), s) equals Apply(q, Apply(p, s)).
func Apply[E any](p *Permutation, s []E) ([]E, error) {
	if len(s) != len(p.arr) {
		return nil, permErrorf(opApply, ErrLengthMismatch)
	}
	out := make([]E, len(s))
	for i, v := range p.arr {
		out[i] = s[v]
	}

	return out, nil
}

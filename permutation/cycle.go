// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"slices"
	"strings"
)

// Cycle is one orbit of a permutation written as the sequence of indices it
// visits. The last element maps back to the first.
type Cycle struct {
	elems []int
}

// NewCycle validates elems and returns the cycle they describe.
// elems must be non-empty, non-negative and free of duplicates.
func NewCycle(elems ...int) (Cycle, error) {
	if len(elems) == 0 {
		return Cycle{}, permErrorf(opCycle, ErrInvalidCycle)
	}
	seen := make(map[int]struct{}, len(elems))
	for _, e := range elems {
		if e < 0 {
			return Cycle{}, fmt.Errorf("Permutation.%s(%v): negative element: %w", opCycle, elems, ErrInvalidCycle)
		}
		if _, dup := seen[e]; dup {
			return Cycle{}, fmt.Errorf("Permutation.%s(%v): duplicate %d: %w", opCycle, elems, e, ErrInvalidCycle)
		}
		seen[e] = struct{}{}
	}

	return Cycle{elems: slices.Clone(elems)}, nil
}

// Len returns the number of indices in the cycle.
func (c Cycle) Len() int { return len(c.elems) }

// Elements returns a copy of the cycle in its stored rotation.
func (c Cycle) Elements() []int { return slices.Clone(c.elems) }

// Contains reports whether x lies on the cycle.
func (c Cycle) Contains(x int) bool { return slices.Contains(c.elems, x) }

// Next returns the successor of x on the cycle.
func (c Cycle) Next(x int) (int, bool) {
	i := slices.Index(c.elems, x)
	if i < 0 {
		return 0, false
	}

	return c.elems[(i+1)%len(c.elems)], true
}

// Parity of a cycle of length L is that of its L-1 transpositions.
func (c Cycle) Parity() Parity {
	if len(c.elems) == 0 {
		return Even
	}

	return ParityOf(len(c.elems) - 1)
}

// Canonical returns the rotation that starts at the smallest element.
func (c Cycle) Canonical() Cycle {
	if len(c.elems) == 0 {
		return c
	}
	k := slices.Index(c.elems, slices.Min(c.elems))
	out := make([]int, 0, len(c.elems))
	out = append(out, c.elems[k:]...)
	out = append(out, c.elems[:k]...)

	return Cycle{elems: out}
}

// Equal reports whether c and d induce the same successor map.
func (c Cycle) Equal(d Cycle) bool {
	if len(c.elems) != len(d.elems) {
		return false
	}
	for i, x := range c.elems {
		next, ok := d.Next(x)
		if !ok || next != c.elems[(i+1)%len(c.elems)] {
			return false
		}
	}

	return true
}

// String renders the cycle in standard notation, e.g. "(0 1 4)".
func (c Cycle) String() string {
	parts := make([]string, len(c.elems))
	for i, e := range c.elems {
		parts[i] = fmt.Sprint(e)
	}

	return "(" + strings.Join(parts, " ") + ")"
}

// CycleSet is an unordered collection of cycles with rotation-invariant
// membership. Cycles are stored canonically and sorted by smallest element.
type CycleSet struct {
	cycles []Cycle
}

// NewCycleSet builds a set from cycles, dropping duplicates.
func NewCycleSet(cycles ...Cycle) *CycleSet {
	s := &CycleSet{}
	for _, c := range cycles {
		s.add(c)
	}

	return s
}

func (s *CycleSet) add(c Cycle) {
	if s.Contains(c) {
		return
	}
	s.cycles = append(s.cycles, c.Canonical())
	slices.SortFunc(s.cycles, compareCycles)
}

// compareCycles orders canonical cycles by first element, then lexicographically.
func compareCycles(a, b Cycle) int {
	if len(a.elems) == 0 || len(b.elems) == 0 {
		return len(a.elems) - len(b.elems)
	}
	if a.elems[0] != b.elems[0] {
		return a.elems[0] - b.elems[0]
	}

	return slices.Compare(a.elems, b.elems)
}

// Len returns the number of distinct cycles.
func (s *CycleSet) Len() int { return len(s.cycles) }

// Contains reports whether any member equals c up to rotation.
func (s *CycleSet) Contains(c Cycle) bool {
	return slices.ContainsFunc(s.cycles, c.Equal)
}

// Cycles returns the members in canonical, sorted form.
func (s *CycleSet) Cycles() []Cycle { return slices.Clone(s.cycles) }

// Equal reports whether both sets hold the same cycles.
func (s *CycleSet) Equal(t *CycleSet) bool {
	if t == nil || s.Len() != t.Len() {
		return false
	}
	for _, c := range s.cycles {
		if !t.Contains(c) {
			return false
		}
	}

	return true
}

// String renders the set as a product of cycles, e.g. "(0 1 4)(2 3)".
func (s *CycleSet) String() string {
	var sb strings.Builder
	for _, c := range s.cycles {
		sb.WriteString(c.String())
	}

	return sb.String()
}

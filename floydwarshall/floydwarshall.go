// SPDX-License-Identifier: MIT

package floydwarshall

import (
	"cmp"
	"errors"
	"fmt"

	log "github.com/golang/glog"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/numeric"
)

// Sentinel errors returned by FloydWarshall.
var (
	// ErrNilGraph indicates that a nil *graph.Graph was passed.
	ErrNilGraph = errors.New("floydwarshall: graph is nil")

	// ErrNegativeCycle indicates that some vertex has a negative self-distance.
	ErrNegativeCycle = errors.New("floydwarshall: negative-weight cycle detected")
)

const noHop = -1

// Result holds all-pairs distances over Vertices.
type Result[V cmp.Ordered, W numeric.Number] struct {
	// Vertices lists the graph's vertices; row and column i of Dist refer
	// to Vertices[i].
	Vertices []V

	// Dist[i][j] is the shortest distance i→j when Reachable(i, j).
	// Unreachable cells hold zero.
	Dist *matrix.Dense[W]

	index map[V]int
	reach []bool // n×n row-major
	next  []int  // n×n row-major, first hop on a shortest i→j route
}

// FloydWarshall computes shortest distances between every ordered pair of
// vertices in g.
func FloydWarshall[V cmp.Ordered, W numeric.Number](g *graph.Graph[V, W]) (*Result[V, W], error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	verts := g.Vertices()
	n := len(verts)
	r := &Result[V, W]{
		Vertices: verts,
		index:    make(map[V]int, n),
		reach:    make([]bool, n*n),
		next:     make([]int, n*n),
	}
	for i, v := range verts {
		r.index[v] = i
	}
	for i := range r.next {
		r.next[i] = noHop
	}

	// Seed: zero on the diagonal, direct edges elsewhere. A negative
	// self-loop overrides the zero diagonal.
	d := make([]W, n*n)
	for i := 0; i < n; i++ {
		r.reach[i*n+i] = true
		r.next[i*n+i] = i
	}
	for _, e := range g.Edges() {
		i, j := r.index[e.From], r.index[e.To]
		if i == j && e.Weight >= 0 {
			continue
		}
		d[i*n+j] = e.Weight
		r.reach[i*n+j] = true
		r.next[i*n+j] = j
	}

	relaxAll(n, d, r.reach, r.next)

	for i := 0; i < n; i++ {
		if d[i*n+i] < 0 {
			if log.V(1) {
				log.Infof("floydwarshall: vertex %v has negative self-distance %v", verts[i], d[i*n+i])
			}

			return nil, fmt.Errorf("%w: through vertex %v", ErrNegativeCycle, verts[i])
		}
	}

	dist, err := matrix.NewDenseFromList(n, n, d)
	if err != nil {
		return nil, fmt.Errorf("FloydWarshall: %w", err)
	}
	r.Dist = dist

	return r, nil
}

// relaxAll runs the k → i → j closure in place over the flat buffers.
func relaxAll[W numeric.Number](n int, d []W, reach []bool, next []int) {
	var (
		k, i, j      int
		baseK, baseI int
		cand         W
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			if !reach[i*n+k] {
				continue // no path i→k
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				if !reach[baseK+j] {
					continue
				}
				cand = d[baseI+k] + d[baseK+j]
				if !reach[baseI+j] || cand < d[baseI+j] {
					d[baseI+j] = cand
					reach[baseI+j] = true
					next[baseI+j] = next[baseI+k]
				}
			}
		}
	}
}

// Distance reports the shortest distance from → to and whether to is
// reachable. Unknown vertices are unreachable.
func (r *Result[V, W]) Distance(from, to V) (W, bool) {
	i, j, ok := r.pair(from, to)
	if !ok || !r.reach[i*len(r.Vertices)+j] {
		var zero W
		return zero, false
	}
	d, _ := r.Dist.At(i, j) // indices come from index, always in range

	return d, true
}

// Reachable reports whether some path leads from → to.
func (r *Result[V, W]) Reachable(from, to V) bool {
	i, j, ok := r.pair(from, to)

	return ok && r.reach[i*len(r.Vertices)+j]
}

// Path rebuilds a shortest route from → to using the next-hop table.
// Returns nil, false if to is unreachable.
func (r *Result[V, W]) Path(from, to V) ([]V, bool) {
	i, j, ok := r.pair(from, to)
	n := len(r.Vertices)
	if !ok || !r.reach[i*n+j] {
		return nil, false
	}
	route := []V{r.Vertices[i]}
	for i != j {
		i = r.next[i*n+j]
		route = append(route, r.Vertices[i])
	}

	return route, true
}

func (r *Result[V, W]) pair(from, to V) (int, int, bool) {
	i, ok := r.index[from]
	if !ok {
		return 0, 0, false
	}
	j, ok := r.index[to]

	return i, j, ok
}

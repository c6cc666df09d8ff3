// SPDX-License-Identifier: MIT

package bfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/bfs"
	"github.com/katalvlaran/lvmath/graph"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := graph.New[int, int]()
	for i := 0; i < N; i++ {
		g.AddEdge(i, i+1, 1)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBipartition_Grid colours a 100×100 grid graph.
func BenchmarkBipartition_Grid(b *testing.B) {
	const side = 100
	g := graph.New[int, int]()
	for r := 0; r < side; r++ {
		for c := 0; c < side; c++ {
			v := r*side + c
			if c+1 < side {
				g.AddBidirectionalEdge(v, v+1, 1)
			}
			if r+1 < side {
				g.AddBidirectionalEdge(v, v+side, 1)
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Bipartition(g, 0)
	}
}

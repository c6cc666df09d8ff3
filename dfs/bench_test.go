// SPDX-License-Identifier: MIT

package dfs_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/dfs"
)

func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(5000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, 0)
	}
}

func BenchmarkTopologicalSort_Tree(b *testing.B) {
	g := buildBinaryTree(12)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.TopologicalSort(g)
	}
}

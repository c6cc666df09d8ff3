package prim_kruskal_test

import (
	"testing"

	"github.com/katalvlaran/lvmath/prim_kruskal"
)

func BenchmarkKruskal(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Kruskal(g)
	}
}

func BenchmarkPrim(b *testing.B) {
	g := buildMediumGraph(500, 2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = prim_kruskal.Prim(g, "V0")
	}
}

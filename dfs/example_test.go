// SPDX-License-Identifier: MIT

package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/dfs"
	"github.com/katalvlaran/lvmath/graph"
)

// ExampleTopologicalSort orders build steps by their dependencies.
func ExampleTopologicalSort() {
	g := graph.New[string, int]()
	g.AddEdge("fetch", "compile", 0)
	g.AddEdge("compile", "test", 0)
	g.AddEdge("compile", "package", 0)
	g.AddEdge("test", "package", 0)

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output: [fetch compile test package]
}

// ExampleDetectCycles reports a rotation-normalised cycle.
func ExampleDetectCycles() {
	g := graph.New[int, int]()
	g.AddEdge(3, 1, 0)
	g.AddEdge(1, 2, 0)
	g.AddEdge(2, 3, 0)

	has, cycles, _ := dfs.DetectCycles(g)
	fmt.Println(has, cycles)
	// Output: true [[1 2 3 1]]
}

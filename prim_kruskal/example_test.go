package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/graph"
	"github.com/katalvlaran/lvmath/prim_kruskal"
)

// ExampleKruskal builds a triangle and prints its spanning tree.
func ExampleKruskal() {
	g := graph.New[string, int]()
	g.AddBidirectionalEdge("A", "B", 1)
	g.AddBidirectionalEdge("B", "C", 2)
	g.AddBidirectionalEdge("A", "C", 4)

	edges, total, err := prim_kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 3, Edges: A-B B-C
}

// ExamplePrim grows a tree over a pentagon from A.
func ExamplePrim() {
	g := graph.New[string, int]()
	g.AddBidirectionalEdge("A", "B", 1)
	g.AddBidirectionalEdge("A", "E", 12)
	g.AddBidirectionalEdge("B", "C", 2)
	g.AddBidirectionalEdge("C", "D", 3)
	g.AddBidirectionalEdge("D", "E", 5)

	edges, total, err := prim_kruskal.Prim(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %d, Edges:", total)
	for _, e := range edges {
		fmt.Printf(" %s-%s", e.From, e.To)
	}
	fmt.Println()
	// Output: Total: 11, Edges: A-B B-C C-D D-E
}

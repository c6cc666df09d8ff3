// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/dijkstra"
	"github.com/katalvlaran/lvmath/graph"
)

// ExampleShortestPath finds the cheapest road between two cities.
func ExampleShortestPath() {
	g := graph.New[string, float64]()
	g.AddBidirectionalEdge("Amsterdam", "Brussels", 173.4)
	g.AddBidirectionalEdge("Brussels", "Charleroi", 46.8)
	g.AddBidirectionalEdge("Amsterdam", "Dublin", 757.1)
	g.AddBidirectionalEdge("Dublin", "Charleroi", 800.8)
	g.AddBidirectionalEdge("Eindhoven", "Charleroi", 135.8)

	path, found, err := dijkstra.ShortestPath(g, "Amsterdam", "Eindhoven")
	if err != nil || !found {
		fmt.Println("no route")
		return
	}
	fmt.Println(path.Vertices)
	fmt.Printf("%.1f\n", path.Distance)
	// Output:
	// [Amsterdam Brussels Charleroi Eindhoven]
	// 356.0
}

// ExampleDijkstra computes distances from one source on an integer graph.
func ExampleDijkstra() {
	g := graph.New[string, int]()
	g.AddBidirectionalEdge("A", "B", 1)
	g.AddBidirectionalEdge("B", "C", 2)
	g.AddBidirectionalEdge("A", "C", 5)

	dist, _, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("dist[A]=%d, dist[B]=%d, dist[C]=%d\n", dist["A"], dist["B"], dist["C"])
	// Output: dist[A]=0, dist[B]=1, dist[C]=3
}

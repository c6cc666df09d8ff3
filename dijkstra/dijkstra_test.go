// SPDX-License-Identifier: MIT
// Package dijkstra_test validates Dijkstra and ShortestPath: input
// validation, distances, predecessors, the distance cap and path recovery.
package dijkstra_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/dijkstra"
	"github.com/katalvlaran/lvmath/graph"
)

// cities builds the five-city road map used by several tests.
func cities() *graph.Graph[string, float64] {
	g := graph.New[string, float64]()
	g.AddBidirectionalEdge("Amsterdam", "Brussels", 173.4)
	g.AddBidirectionalEdge("Brussels", "Charleroi", 46.8)
	g.AddBidirectionalEdge("Amsterdam", "Dublin", 757.1)
	g.AddBidirectionalEdge("Dublin", "Charleroi", 800.8)
	g.AddBidirectionalEdge("Eindhoven", "Charleroi", 135.8)

	return g
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	_, _, err := dijkstra.Dijkstra[string, int](nil, "A")
	require.ErrorIs(t, err, dijkstra.ErrNilGraph)
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	_, _, err := dijkstra.Dijkstra(g, "X")
	require.ErrorIs(t, err, dijkstra.ErrVertexNotFound)
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 2)
	g.AddEdge("C", "D", -5) // unreachable from A, still rejected
	_, _, err := dijkstra.Dijkstra(g, "A")
	require.True(t, errors.Is(err, dijkstra.ErrNegativeWeight))
	assert.Contains(t, err.Error(), "C→D")

	_, found, err := dijkstra.ShortestPath(g, "A", "B")
	require.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	assert.False(t, found)
}

func TestWithMaxDistance_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { dijkstra.WithMaxDistance(-1) })
}

// ------------------------------------------------------------------------
// 2. Distances and predecessors
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	g := graph.New[string, int]()
	g.AddBidirectionalEdge("A", "B", 1)
	g.AddBidirectionalEdge("B", "C", 2)
	g.AddBidirectionalEdge("A", "C", 5)

	dist, prev, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Nil(t, prev)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 3}, dist)

	_, prev, err = dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath[int]())
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"B": "A", "C": "B"}, prev)
}

func TestDijkstra_DirectedUnreachable(t *testing.T) {
	g := graph.New[int, int]()
	g.AddEdge(1, 2, 4)
	g.AddEdge(3, 1, 1) // 3 cannot be reached from 1

	dist, _, err := dijkstra.Dijkstra(g, 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 0, 2: 4}, dist)
}

func TestDijkstra_TieBreakByVertex(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "C", 1)
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "D", 1)
	g.AddEdge("C", "D", 1)

	_, prev, err := dijkstra.Dijkstra(g, "A", dijkstra.WithReturnPath[int]())
	require.NoError(t, err)
	assert.Equal(t, "B", prev["D"])
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("C", "D", 4)

	dist, _, err := dijkstra.Dijkstra(g, "A", dijkstra.WithMaxDistance(3))
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 3}, dist)
}

func TestDijkstra_ZeroWeightAndSelfLoop(t *testing.T) {
	g := graph.New[string, uint]()
	g.AddEdge("A", "A", 7)
	g.AddEdge("A", "B", 0)

	dist, _, err := dijkstra.Dijkstra(g, "A")
	require.NoError(t, err)
	assert.Equal(t, map[string]uint{"A": 0, "B": 0}, dist)
}

// ------------------------------------------------------------------------
// 3. ShortestPath
// ------------------------------------------------------------------------

func TestShortestPath_Cities(t *testing.T) {
	path, found, err := dijkstra.ShortestPath(cities(), "Amsterdam", "Eindhoven")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Amsterdam", "Brussels", "Charleroi", "Eindhoven"}, path.Vertices)
	assert.InDelta(t, 356.0, path.Distance, 1e-9)
}

func TestShortestPath_SameVertex(t *testing.T) {
	path, found, err := dijkstra.ShortestPath(cities(), "Dublin", "Dublin")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"Dublin"}, path.Vertices)
	assert.Zero(t, path.Distance)
}

func TestShortestPath_NotFound(t *testing.T) {
	g := cities()
	g.AddVertex("Oslo")

	_, found, err := dijkstra.ShortestPath(g, "Amsterdam", "Oslo")
	require.NoError(t, err)
	assert.False(t, found)

	_, found, err = dijkstra.ShortestPath(g, "Amsterdam", "Paris")
	require.NoError(t, err)
	assert.False(t, found)
}

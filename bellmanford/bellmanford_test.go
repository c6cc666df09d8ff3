// SPDX-License-Identifier: MIT

package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/bellmanford"
	"github.com/katalvlaran/lvmath/graph"
)

func TestBellmanFord_Validation(t *testing.T) {
	_, err := bellmanford.BellmanFord[string, int](nil, "A")
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)

	g := graph.New[string, int]()
	_, err = bellmanford.BellmanFord(g, "A")
	require.ErrorIs(t, err, bellmanford.ErrVertexNotFound)
}

// CLRS figure 24.4: negative edges, no negative cycle.
func TestBellmanFord_NegativeEdges(t *testing.T) {
	g := graph.New[string, int]()
	g.AddEdge("s", "t", 6)
	g.AddEdge("s", "y", 7)
	g.AddEdge("t", "x", 5)
	g.AddEdge("t", "y", 8)
	g.AddEdge("t", "z", -4)
	g.AddEdge("x", "t", -2)
	g.AddEdge("y", "x", -3)
	g.AddEdge("y", "z", 9)
	g.AddEdge("z", "s", 2)
	g.AddEdge("z", "x", 7)

	res, err := bellmanford.BellmanFord(g, "s")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"s": 0, "t": 2, "x": 4, "y": 7, "z": -2}, res.Dist)

	path, ok := res.PathTo("z")
	require.True(t, ok)
	assert.Equal(t, []string{"s", "y", "x", "t", "z"}, path)

	d, ok := res.Distance("x")
	assert.True(t, ok)
	assert.Equal(t, 4, d)
}

func TestBellmanFord_Unreachable(t *testing.T) {
	g := graph.New[string, float64]()
	g.AddEdge("a", "b", 1.5)
	g.AddVertex("c")

	res, err := bellmanford.BellmanFord(g, "a")
	require.NoError(t, err)
	_, ok := res.Distance("c")
	assert.False(t, ok)
	_, ok = res.PathTo("c")
	assert.False(t, ok)

	path, ok := res.PathTo("a")
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, path)
}

func TestBellmanFord_NegativeCycle(t *testing.T) {
	g := graph.New[int, int]()
	g.AddEdge(0, 1, 1)
	g.AddEdge(1, 2, -1)
	g.AddEdge(2, 1, -1)

	_, err := bellmanford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_NegativeSelfLoop(t *testing.T) {
	g := graph.New[int, int]()
	g.AddEdge(0, 0, -1)

	_, err := bellmanford.BellmanFord(g, 0)
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestBellmanFord_UnreachableNegativeCycleIgnored(t *testing.T) {
	g := graph.New[int, int]()
	g.AddEdge(0, 1, 3)
	g.AddEdge(2, 3, -1)
	g.AddEdge(3, 2, -1)

	res, err := bellmanford.BellmanFord(g, 0)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{0: 0, 1: 3}, res.Dist)
}

// SPDX-License-Identifier: MIT

package graph_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/graph"
)

// TestConcurrentAddEdge ensures concurrent AddEdge calls are safe and all
// neighbors appear.
func TestConcurrentAddEdge(t *testing.T) {
	g := graph.New[string, int]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)
	for i := 0; i < num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge("X", fmt.Sprintf("V%03d", id), id)
		}(i)
	}
	wg.Wait()

	nbs, err := g.Neighbors("X")
	require.NoError(t, err)
	require.Len(t, nbs, num)
}

// TestConcurrentReadWrite mixes readers and writers; run with -race.
func TestConcurrentReadWrite(t *testing.T) {
	g := graph.New[int, int]()
	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)
	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddBidirectionalEdge(0, id+1, id)
		}(i)
		go func() {
			defer wg.Done()
			for _, e := range g.Edges() {
				_ = g.RemoveEdge(e.From, e.To)
			}
		}()
	}
	wg.Wait()
	require.True(t, g.HasVertex(0))
}

// Package core_test verifies thread-safety of core.Graph under concurrent operations.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidipath/core"
)

// TestConcurrentAddEdge ensures that concurrent AddEdge calls are safe and
// every mirror entry lands in the hub's adjacency.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph[int]()
	const num = 200
	var wg sync.WaitGroup
	wg.Add(num)

	for i := 1; i <= num; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(0, id, float64(id))
		}(i)
	}
	wg.Wait()

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	require.Len(t, nbrs, num)
	require.Equal(t, num, g.EdgeCount())
	require.Equal(t, num+1, g.NodeCount())
}

// TestConcurrentReadsDuringWrites mixes queries with insertions to surface
// races under -race.
func TestConcurrentReadsDuringWrites(t *testing.T) {
	g := core.NewGraph[int]()
	g.AddNode(0)

	const rounds = 100
	var wg sync.WaitGroup
	wg.Add(2 * rounds)

	for i := 0; i < rounds; i++ {
		go func(id int) {
			defer wg.Done()
			g.AddEdge(id, id+1, 1)
		}(i)
		go func(id int) {
			defer wg.Done()
			_, _ = g.Neighbors(id)
			_ = g.Weight(id, id+1)
			_ = g.Nodes()
			_ = g.Edges()
		}(i)
	}
	wg.Wait()

	require.Equal(t, rounds, g.EdgeCount())
}

package dijkstra_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/bidipath/builder"
	"github.com/katalvlaran/bidipath/core"
	"github.com/katalvlaran/bidipath/dijkstra"
)

// benchGraph is the random 10000×10 fixture of the benchmark suite.
func benchGraph(b *testing.B) *core.Graph[int] {
	b.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(42)}, builder.Random(10000, 10, 10))
	if err != nil {
		b.Fatalf("build: %v", err)
	}
	return g
}

func BenchmarkShortestPath(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.ShortestPath(g, 0, 9999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBidirectional(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Bidirectional(g, 0, 9999); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBidirectionalEarlyExit(b *testing.B) {
	g := benchGraph(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Bidirectional(g, 0, 9999, dijkstra.WithEarlyExit()); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParallelBidirectional(b *testing.B) {
	g := benchGraph(b)
	ctx := context.Background()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.ParallelBidirectional(ctx, g, 0, 9999, dijkstra.WithEarlyExit()); err != nil {
			b.Fatal(err)
		}
	}
}

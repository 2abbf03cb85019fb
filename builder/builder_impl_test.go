// Package builder_test contains functional tests for all Constructor
// implementations in the builder package, verifying topology, counts,
// determinism, and weights.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bidipath/builder"
	"github.com/katalvlaran/bidipath/core"
)

// TestBuilders_Functional runs table-driven functional tests for each builder.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		opts        []builder.BuilderOption
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *core.Graph[int])
	}{
		{
			name:  "Dense(4)",
			ctor:  builder.Dense(4),
			wantV: 4, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				// default modular weight: (1+2)%10+1
				assert.Equal(t, 4.0, g.Weight(1, 2))
				assert.Equal(t, 3, g.Degree(0))
			},
		},
		{
			name:  "Sparse(5,2)",
			ctor:  builder.Sparse(5, 2),
			wantV: 5, wantE: 6,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				// pair 0—1 chosen by both ends is stored once
				nbrs, err := g.Neighbors(0)
				require.NoError(t, err)
				ones := 0
				for _, a := range nbrs {
					if a.Node == 1 {
						ones++
					}
				}
				assert.Equal(t, 1, ones)
				assert.Equal(t, 4, g.Degree(0))
			},
		},
		{
			name:  "Sparse(3,5) clamps k",
			ctor:  builder.Sparse(3, 5),
			wantV: 3, wantE: 3,
		},
		{
			name:  "Chain(4)",
			opts:  []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(2))},
			ctor:  builder.Chain(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				for i := 1; i < 4; i++ {
					assert.Equal(t, 2.0, g.Weight(i-1, i))
				}
				assert.Equal(t, 1, g.Degree(0))
				assert.Equal(t, 1, g.Degree(3))
			},
		},
		{
			name:  "Grid(3,4)",
			opts:  []builder.BuilderOption{builder.WithWeightFn(builder.ConstantWeightFn(1))},
			ctor:  builder.Grid(3, 4),
			wantV: 12, wantE: 17,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				// corner has 2 neighbors, inner cell 4
				assert.Equal(t, 2, g.Degree(builder.GridID(0, 0, 4)))
				assert.Equal(t, 4, g.Degree(builder.GridID(1, 1, 4)))
				assert.Equal(t, 1.0, g.Weight(builder.GridID(1, 1, 4), builder.GridID(2, 1, 4)))
			},
		},
		{
			name:  "Isolated(3)",
			ctor:  builder.Isolated(3),
			wantV: 3, wantE: 0,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				assert.True(t, g.HasNode(2))
				assert.Zero(t, g.Degree(2))
			},
		},
		{
			name: "EdgeList",
			ctor: builder.EdgeList([]builder.WeightedEdge{
				{U: 0, V: 1, Weight: 1.5},
				{U: 1, V: 2, Weight: 2},
				{U: 0, V: 1, Weight: 0.5},
			}),
			wantV: 3, wantE: 3,
			sampleCheck: func(t *testing.T, g *core.Graph[int]) {
				// first inserted parallel edge wins the lookup
				assert.Equal(t, 1.5, g.Weight(1, 0))
			},
		},
		{
			name:  "Random(6,0,10) without rng",
			ctor:  builder.Random(6, 0, 10),
			wantV: 6, wantE: 0,
		},
		{
			name:  "Random(1,5,3) drops every self draw",
			opts:  []builder.BuilderOption{builder.WithSeed(1)},
			ctor:  builder.Random(1, 5, 3),
			wantV: 1, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.NodeCount(), "node count")
			assert.Equal(t, tc.wantE, g.EdgeCount(), "edge count")
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestRandom_Properties(t *testing.T) {
	t.Parallel()

	const (
		n        = 200
		perNode  = 4
		maxW     = 7
		seed     = 42
		trialCap = n * perNode
	)
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(n, perNode, maxW))
	require.NoError(t, err)

	// every index is present even if it drew no edge
	assert.Equal(t, n, g.NodeCount())
	assert.LessOrEqual(t, g.EdgeCount(), trialCap)
	assert.Greater(t, g.EdgeCount(), 0)

	for _, e := range g.Edges() {
		assert.NotEqual(t, e.U, e.V, "self-loop %v", e)
		assert.GreaterOrEqual(t, e.Weight, 1.0)
		assert.LessOrEqual(t, e.Weight, float64(maxW))
		assert.Equal(t, float64(int(e.Weight)), e.Weight, "weight must be integral")
	}
}

func TestRandom_Deterministic(t *testing.T) {
	t.Parallel()

	build := func(seed int64) []core.Edge[int] {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.Random(100, 10, 10))
		require.NoError(t, err)
		return g.Edges()
	}

	assert.Equal(t, build(7), build(7))
	assert.NotEqual(t, build(7), build(8))
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	seeded := []builder.BuilderOption{builder.WithSeed(1)}
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{"Random n=0", seeded, builder.Random(0, 1, 1), builder.ErrTooFewVertices},
		{"Random negative edges", seeded, builder.Random(3, -1, 1), builder.ErrTooFewVertices},
		{"Random maxWeight=0", seeded, builder.Random(3, 1, 0), builder.ErrInvalidWeight},
		{"Random without rng", nil, builder.Random(3, 1, 5), builder.ErrNeedRandSource},
		{"Dense n=0", nil, builder.Dense(0), builder.ErrTooFewVertices},
		{"Sparse n=1", nil, builder.Sparse(1, 1), builder.ErrTooFewVertices},
		{"Sparse k=0", nil, builder.Sparse(4, 0), builder.ErrTooFewVertices},
		{"Chain n=1", nil, builder.Chain(1), builder.ErrTooFewVertices},
		{"Grid 0 rows", nil, builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"Isolated n=0", nil, builder.Isolated(0), builder.ErrTooFewVertices},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			require.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestBuildGraph_ComposesInOrder(t *testing.T) {
	t.Parallel()

	g, err := builder.BuildGraph(nil,
		builder.Isolated(10),
		builder.EdgeList([]builder.WeightedEdge{{U: 0, V: 9, Weight: 3}}),
	)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
	assert.Equal(t, 1, g.EdgeCount())
	assert.Equal(t, 3.0, g.Weight(9, 0))
}

func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformIntWeightFn(5, 1) })
}

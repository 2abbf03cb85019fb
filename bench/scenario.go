package bench

import (
	"github.com/katalvlaran/bidipath/builder"
	"github.com/katalvlaran/bidipath/core"
)

// Scenario is a named graph fixture with one query.
type Scenario struct {
	Name         string
	Source       int
	Target       int
	Options      []builder.BuilderOption
	Constructors []builder.Constructor
}

// Graph builds the scenario's graph.
func (s Scenario) Graph() (*core.Graph[int], error) {
	return builder.BuildGraph(s.Options, s.Constructors...)
}

// edges is shorthand for an explicit fixture.
func edges(es ...builder.WeightedEdge) []builder.Constructor {
	return []builder.Constructor{builder.EdgeList(es)}
}

// DefaultScenarios returns the standard benchmark suite. seed drives the
// random scenario only.
func DefaultScenarios(seed int64) []Scenario {
	return []Scenario{
		{
			Name:   "simple path",
			Source: 0, Target: 3,
			Constructors: edges(
				builder.WeightedEdge{U: 0, V: 1, Weight: 2},
				builder.WeightedEdge{U: 1, V: 2, Weight: 2},
				builder.WeightedEdge{U: 2, V: 3, Weight: 2},
			),
		},
		{
			Name:   "graph with cycles",
			Source: 0, Target: 3,
			Constructors: edges(
				builder.WeightedEdge{U: 0, V: 1, Weight: 2},
				builder.WeightedEdge{U: 0, V: 2, Weight: 1},
				builder.WeightedEdge{U: 1, V: 3, Weight: 1},
				builder.WeightedEdge{U: 2, V: 1, Weight: 2},
				builder.WeightedEdge{U: 2, V: 3, Weight: 2},
			),
		},
		{
			Name:   "medium sparse",
			Source: 0, Target: 499,
			Constructors: []builder.Constructor{builder.Sparse(500, 5)},
		},
		{
			Name:   "medium dense, close endpoints",
			Source: 0, Target: 10,
			Constructors: []builder.Constructor{builder.Dense(500)},
		},
		{
			Name:   "very complex",
			Source: 0, Target: 5,
			Constructors: edges(
				builder.WeightedEdge{U: 0, V: 1, Weight: 5},
				builder.WeightedEdge{U: 0, V: 2, Weight: 1},
				builder.WeightedEdge{U: 0, V: 3, Weight: 10},
				builder.WeightedEdge{U: 1, V: 2, Weight: 3},
				builder.WeightedEdge{U: 1, V: 4, Weight: 1},
				builder.WeightedEdge{U: 2, V: 3, Weight: 4},
				builder.WeightedEdge{U: 2, V: 4, Weight: 8},
				builder.WeightedEdge{U: 3, V: 4, Weight: 2},
				builder.WeightedEdge{U: 4, V: 5, Weight: 6},
			),
		},
		{
			Name:   "multiple paths",
			Source: 0, Target: 7,
			Constructors: edges(
				builder.WeightedEdge{U: 0, V: 1, Weight: 1},
				builder.WeightedEdge{U: 0, V: 5, Weight: 3},
				builder.WeightedEdge{U: 1, V: 2, Weight: 2},
				builder.WeightedEdge{U: 1, V: 4, Weight: 3},
				builder.WeightedEdge{U: 2, V: 3, Weight: 4},
				builder.WeightedEdge{U: 3, V: 4, Weight: 1},
				builder.WeightedEdge{U: 3, V: 6, Weight: 1},
				builder.WeightedEdge{U: 4, V: 7, Weight: 5},
				builder.WeightedEdge{U: 5, V: 6, Weight: 2},
				builder.WeightedEdge{U: 6, V: 7, Weight: 1},
			),
		},
		{
			Name:   "dense 100",
			Source: 0, Target: 99,
			Constructors: []builder.Constructor{builder.Dense(100)},
		},
		{
			Name:   "dense 1000",
			Source: 0, Target: 700,
			Constructors: []builder.Constructor{builder.Dense(1000)},
		},
		{
			Name:   "grid 100x100",
			Source: 0, Target: builder.GridID(99, 99, 100),
			Constructors: []builder.Constructor{builder.Grid(100, 100)},
		},
		RandomScenario{Name: "random 10000x10", Nodes: 10000, EdgesPerNode: 10, MaxWeight: 10, Target: 9999}.Scenario(seed),
	}
}

// RandomScenario describes a generated graph: every node casts EdgesPerNode
// random edges with weights in [1,MaxWeight].
type RandomScenario struct {
	Name         string `yaml:"name"`
	Nodes        int    `yaml:"nodes"`
	EdgesPerNode int    `yaml:"edges_per_node"`
	MaxWeight    int    `yaml:"max_weight"`
	Source       int    `yaml:"source"`
	Target       int    `yaml:"target"`
}

// Scenario turns the description into a runnable scenario seeded with seed.
func (r RandomScenario) Scenario(seed int64) Scenario {
	return Scenario{
		Name:         r.Name,
		Source:       r.Source,
		Target:       r.Target,
		Options:      []builder.BuilderOption{builder.WithSeed(seed)},
		Constructors: []builder.Constructor{builder.Random(r.Nodes, r.EdgesPerNode, r.MaxWeight)},
	}
}

// Package builder generates integer-labeled core.Graph fixtures for tests,
// examples and the benchmark harness.
//
// Everything funnels through one orchestrator:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.Random(10000, 10, 10),
//	)
//
// Constructors:
//
//   - Random(n, edgesPerNode, maxWeight) - every node casts edgesPerNode edges
//     to uniformly drawn targets with integer weights in [1,maxWeight].
//   - Dense(n)      - complete graph K_n.
//   - Sparse(n, k)  - node i joined to its first k peers.
//   - Chain(n)      - path 0—1—…—(n-1).
//   - Grid(r, c)    - 4-neighbour lattice, node id r*cols+c (see GridID).
//   - Isolated(n)   - nodes 0..n-1 without edges.
//   - EdgeList(es)  - explicit edges, in order.
//
// Options:
//
//   - WithSeed / WithRand - RNG for Random (required) and for WeightFn draws.
//   - WithWeightFn        - weights of Dense, Sparse, Chain and Grid; defaults to
//     ModularWeightFn, (i+j) mod 10 + 1.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors validate before mutating and return wrapped sentinel errors.
//   - Same options, seed and constructor order ⇒ identical graphs.
package builder

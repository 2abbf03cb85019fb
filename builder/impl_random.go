// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_random.go - implementation of Random(n, edgesPerNode, maxWeight).
//
// Model:
//   - Every node 0..n-1 is registered first, so nodes that draw no edge
//     are still present (zero-degree nodes are first-class).
//   - For each node in ascending order, edgesPerNode trials draw a target
//     uniformly in [0,n) and a weight uniformly in [1,maxWeight]. Trials whose
//     target is the node itself are dropped after both draws.
//   - Repeated targets yield parallel edges; they are kept as drawn.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices), edgesPerNode ≥ 0 (else ErrTooFewVertices).
//   - maxWeight ≥ 1 (else ErrInvalidWeight).
//   - cfg.rng must be non-nil when edgesPerNode > 0 (else ErrNeedRandSource).
//
// Complexity:
//   - Time: O(n·edgesPerNode). Space: O(1) extra.
//
// Determinism:
//   - Fixed draw order (node asc, trial asc, target before weight) ⇒ identical
//     graphs for a fixed seed.

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodRandom      = "Random"
	minRandomVertices = 1
	minRandomWeight   = 1
)

// Random returns a Constructor that samples a random multigraph where every
// node casts edgesPerNode edges to uniformly chosen targets.
func Random(n, edgesPerNode, maxWeight int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < minRandomVertices {
			return builderErrorf(methodRandom, ErrTooFewVertices, "n=%d < min=%d", n, minRandomVertices)
		}
		if edgesPerNode < 0 {
			return builderErrorf(methodRandom, ErrTooFewVertices, "edgesPerNode=%d < 0", edgesPerNode)
		}
		if maxWeight < minRandomWeight {
			return builderErrorf(methodRandom, ErrInvalidWeight, "maxWeight=%d < %d", maxWeight, minRandomWeight)
		}
		if cfg.rng == nil && edgesPerNode > 0 {
			return builderErrorf(methodRandom, ErrNeedRandSource, "n=%d edgesPerNode=%d", n, edgesPerNode)
		}

		// 2) Register all nodes deterministically.
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}

		// 3) Draw edges in a stable order.
		rng := cfg.rng
		var target int
		var w float64
		for node := 0; node < n; node++ {
			for k := 0; k < edgesPerNode; k++ {
				target = rng.Intn(n)
				w = float64(minRandomWeight + rng.Intn(maxWeight))
				if target == node {
					continue
				}
				g.AddEdge(node, target, w)
			}
		}

		return nil
	}
}

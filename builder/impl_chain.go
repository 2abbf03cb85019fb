// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_chain.go - implementation of Chain(n): the path P_n.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits (i-1)—i for i=1..n-1 in increasing order, weight cfg.weightFn(i-1, i, cfg.rng).

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds the path 0—1—…—(n-1).
func Chain(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minChainNodes {
			return builderErrorf(methodChain, ErrTooFewVertices, "n=%d < min=%d", n, minChainNodes)
		}
		for i := 1; i < n; i++ {
			g.AddEdge(i-1, i, cfg.weightFn(i-1, i, cfg.rng))
		}

		return nil
	}
}

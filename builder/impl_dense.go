// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_dense.go - implementation of Dense(n): the complete graph K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edge i—j for every i<j, weight cfg.weightFn(i, j, cfg.rng).
//
// Complexity:
//   - Time: O(n²). Space: O(1) extra.

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodDense      = "Dense"
	minDenseVertices = 1
)

// Dense returns a Constructor that builds the complete graph on nodes 0..n-1.
func Dense(n int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minDenseVertices {
			return builderErrorf(methodDense, ErrTooFewVertices, "n=%d < min=%d", n, minDenseVertices)
		}

		for i := 0; i < n; i++ {
			g.AddNode(i)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				g.AddEdge(i, j, cfg.weightFn(i, j, cfg.rng))
			}
		}

		return nil
	}
}

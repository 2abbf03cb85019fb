// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_sparse.go - implementation of Sparse(n, k).
//
// Model:
//   - Node i is joined to the first k nodes j≠i in ascending order
//     (k is clamped to n-1). A pair chosen from both ends is added once.
//
// Contract:
//   - n ≥ 2, k ≥ 1 (else ErrTooFewVertices).
//   - Weight cfg.weightFn(i, j, cfg.rng) with i the choosing node.
//
// Complexity:
//   - Time: O(n·k). Space: O(n·k) for the pair set.

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodSparse      = "Sparse"
	minSparseVertices = 2
	minSparseDegree   = 1
)

// Sparse returns a Constructor where each node links to its first k peers.
func Sparse(n, k int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		if n < minSparseVertices {
			return builderErrorf(methodSparse, ErrTooFewVertices, "n=%d < min=%d", n, minSparseVertices)
		}
		if k < minSparseDegree {
			return builderErrorf(methodSparse, ErrTooFewVertices, "k=%d < min=%d", k, minSparseDegree)
		}
		if k > n-1 {
			k = n - 1
		}

		for i := 0; i < n; i++ {
			g.AddNode(i)
		}

		added := make(map[[2]int]struct{}, n*k)
		for i := 0; i < n; i++ {
			taken := 0
			for j := 0; j < n && taken < k; j++ {
				if j == i {
					continue
				}
				taken++
				key := [2]int{min(i, j), max(i, j)}
				if _, dup := added[key]; dup {
					continue
				}
				added[key] = struct{}{}
				g.AddEdge(i, j, cfg.weightFn(i, j, cfg.rng))
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_edge_list.go - explicit fixtures: EdgeList(edges) and Isolated(n).

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodIsolated      = "Isolated"
	minIsolatedVertices = 1
)

// WeightedEdge is one explicit undirected edge for EdgeList.
type WeightedEdge struct {
	U, V   int
	Weight float64
}

// EdgeList returns a Constructor that inserts edges verbatim, in order.
// Weights are not validated. An empty list is a no-op.
func EdgeList(edges []WeightedEdge) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		for _, e := range edges {
			g.AddEdge(e.U, e.V, e.Weight)
		}

		return nil
	}
}

// Isolated returns a Constructor that registers nodes 0..n-1 without edges.
// Compose it before other constructors to make sure every index is present.
func Isolated(n int) Constructor {
	return func(g *core.Graph[int], _ builderConfig) error {
		if n < minIsolatedVertices {
			return builderErrorf(methodIsolated, ErrTooFewVertices, "n=%d < min=%d", n, minIsolatedVertices)
		}
		for i := 0; i < n; i++ {
			g.AddNode(i)
		}

		return nil
	}
}

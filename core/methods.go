// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: node/edge lifecycle and read-only queries on Graph.
// Concurrency:
//   - AddNode/AddEdge under the write lock.
//   - Every query under the read lock; slices returned are copies.

package core

import (
	"golang.org/x/exp/maps"
)

// AddNode registers u as a zero-degree node. Adding an existing node is a no-op.
// Complexity: O(1).
func (g *Graph[N]) AddNode(u N) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[u] = struct{}{}
}

// AddEdge inserts the undirected edge u—v with weight w.
//
// Both endpoints are registered if absent. The entry v→(u,w) is appended
// to u's adjacency and u→(v,w) to v's. Parallel edges and self-loops are
// stored as given; a self-loop therefore appears twice in u's adjacency.
//
// Complexity: O(1) amortized.
func (g *Graph[N]) AddEdge(u, v N, w float64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.nodes[u] = struct{}{}
	g.nodes[v] = struct{}{}
	g.adj[u] = append(g.adj[u], Adjacent[N]{Node: v, Weight: w})
	g.adj[v] = append(g.adj[v], Adjacent[N]{Node: u, Weight: w})
	g.edges = append(g.edges, Edge[N]{U: u, V: v, Weight: w})
}

// HasNode reports whether u is present in the graph.
// Complexity: O(1).
func (g *Graph[N]) HasNode(u N) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[u]

	return ok
}

// Neighbors returns a copy of u's adjacency sequence in insertion order.
// A present node with no edges yields an empty, non-nil slice.
//
// Errors:
//   - ErrNodeNotFound if u is absent.
//
// Complexity: O(deg u).
func (g *Graph[N]) Neighbors(u N) ([]Adjacent[N], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[u]; !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Adjacent[N], len(g.adj[u]))
	copy(out, g.adj[u])

	return out, nil
}

// Weight returns the weight of the first edge u—v found by a linear scan of
// u's adjacency, or Infinity if there is none (or u is absent).
// It is a diagnostic lookup and is never used on the relaxation path.
//
// Complexity: O(deg u).
func (g *Graph[N]) Weight(u, v N) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for _, a := range g.adj[u] {
		if a.Node == v {
			return a.Weight
		}
	}

	return Infinity
}

// Degree returns the length of u's adjacency sequence (0 if absent).
// Self-loops count twice.
func (g *Graph[N]) Degree(u N) int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.adj[u])
}

// Nodes returns every present node in unspecified order.
// Complexity: O(V).
func (g *Graph[N]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return maps.Keys(g.nodes)
}

// Edges returns a copy of the inserted edges, each once, in insertion order.
// Complexity: O(E).
func (g *Graph[N]) Edges() []Edge[N] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N], len(g.edges))
	copy(out, g.edges)

	return out
}

// NodeCount returns the number of present nodes.
func (g *Graph[N]) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of AddEdge calls, parallel edges included.
func (g *Graph[N]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

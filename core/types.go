// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Adjacent and Edge types, sentinel errors, GraphOption and NewGraph.
// Concurrency:
//   - mu guards nodes, adj and edges; see methods.go for the locking of each query.

package core

import (
	"errors"
	"math"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a node that was never
	// added, either explicitly (AddNode) or as an edge endpoint (AddEdge).
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates that two nodes are not joined by any edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrEmptyPath indicates that a path with no nodes was passed for validation.
	ErrEmptyPath = errors.New("core: path is empty")
)

// Infinity is the distance of an unreachable node and the weight of a missing edge.
var Infinity = math.Inf(1)

// Adjacent is one entry of a node's adjacency sequence: the neighbor reached
// and the weight of the edge that reaches it.
type Adjacent[N comparable] struct {
	// Node is the neighbor on the other end of the edge.
	Node N

	// Weight is the edge weight as passed to AddEdge.
	Weight float64
}

// Edge is one undirected edge as it was inserted.
type Edge[N comparable] struct {
	U, V   N
	Weight float64
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity pre-sizes the node and adjacency maps for n nodes.
// Panics on a negative n.
func WithCapacity(n int) GraphOption {
	if n < 0 {
		panic("core: WithCapacity(n<0)")
	}
	return func(c *graphConfig) { c.capacity = n }
}

// Graph is an undirected, weighted adjacency-list graph over nodes of type N.
//
// Invariant: for every AddEdge(u, v, w) both u→(v,w) and v→(u,w) are present,
// so the adjacency is symmetric. A node is present iff it was passed to
// AddNode or appeared as an endpoint of AddEdge.
type Graph[N comparable] struct {
	mu sync.RWMutex // guards everything below

	nodes map[N]struct{}      // explicit node set
	adj   map[N][]Adjacent[N] // node → adjacency in insertion order
	edges []Edge[N]           // every inserted edge, once, in insertion order
}

// NewGraph creates an empty Graph.
// Complexity: O(1) plus the requested capacity.
func NewGraph[N comparable](opts ...GraphOption) *Graph[N] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N]{
		nodes: make(map[N]struct{}, cfg.capacity),
		adj:   make(map[N][]Adjacent[N], cfg.capacity),
	}
}

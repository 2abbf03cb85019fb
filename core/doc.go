// Package core provides the thread-safe, in-memory undirected Graph used by
// every search in bidipath.
//
// The Graph G = (V,E) is an explicit node set plus an adjacency mapping:
//
//   - Nodes are any comparable type N (in practice small integers or strings);
//     no arithmetic is assumed beyond equality and use as a map key.
//   - Edges are undirected and weighted (float64). AddEdge(u,v,w) appends
//     u→(v,w) to u's adjacency and v→(u,w) to v's, in insertion order.
//   - Zero-degree nodes are first-class: AddNode registers a node without
//     touching the adjacency, and HasNode reports it as present.
//   - No de-duplication: parallel edges and self-loops are stored as given.
//   - Weights are not validated here. Searches decide what to do with them.
//
// Concurrency:
//
//	A single sync.RWMutex guards the node set, adjacency and edge list.
//	Mutations take the write lock; queries take the read lock and return
//	copies, so a graph may be searched from many goroutines at once.
//
// Core Methods:
//
//	NewGraph[N](opts ...GraphOption) *Graph[N]   // O(1)
//	AddNode(u N)                                 // O(1)
//	AddEdge(u, v N, w float64)                   // O(1) amortized
//	HasNode(u N) bool                            // O(1)
//	Neighbors(u N) ([]Adjacent[N], error)        // O(deg u)
//	Weight(u, v N) float64                       // O(deg u), +Inf if absent
//	Degree(u N) int                              // O(1)
//	Nodes() []N                                  // O(V), unordered
//	Edges() []Edge[N]                            // O(E), insertion order
//	NodeCount(), EdgeCount() int                 // O(1)
//	PathWeight(path []N) (float64, error)        // O(Σ deg) validation helper
//
// Example:
//
//	g := core.NewGraph[int]()
//	g.AddEdge(0, 1, 1)
//	g.AddEdge(1, 2, 1)
//	g.AddEdge(0, 2, 5)
//	nbrs, _ := g.Neighbors(0) // [{1 1} {2 5}]
package core

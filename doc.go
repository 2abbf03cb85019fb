// Package bidipath is a shortest-path toolkit for weighted undirected graphs,
// built around bidirectional Dijkstra search.
//
// Everything is organized under focused subpackages:
//
//	core/      - generic thread-safe Graph: nodes, parallel edges, weight lookup, path validation
//	dijkstra/  - Dijkstra, ShortestPath, Bidirectional and ParallelBidirectional
//	builder/   - reproducible graph generators (random, dense, sparse, grid, chain, explicit)
//	bench/     - scenario runner with cross-checks, reports and Prometheus metrics
//	graphviz/  - DOT export with path highlighting
//	cmd/bidipath - CLI: bench, path, generate
//
// Quick example:
//
//	g := core.NewGraph[string]()
//	g.AddEdge("A", "B", 1)
//	g.AddEdge("B", "C", 1)
//	g.AddEdge("A", "C", 5)
//
//	d, path, err := dijkstra.Bidirectional(g, "A", "C")
//	// d == 2, path == [A B C]
//
// Distances are float64 and an unreachable target is reported as +Inf with
// an empty path. Only the bidirectional searches reject endpoints that are
// not in the graph and detect negative weights.
package bidipath

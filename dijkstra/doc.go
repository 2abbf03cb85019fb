// Package dijkstra implements single-source and bidirectional shortest-path
// search on core.Graph.
//
// Three entry points share one relaxation step and one frontier type:
//
//   - Dijkstra / ShortestPath: classic label-setting expansion from a source,
//     optionally stopping as soon as a target is finalized.
//   - Bidirectional: two expansions (forward from source, backward from
//     target) alternating one pop at a time within a single goroutine and
//     meeting in the middle.
//   - ParallelBidirectional: the same two expansions on two goroutines,
//     synchronized at every step.
//
// Complexity:
//
//	– Time:  O((V + E) log V) per search; bidirectional explores fewer nodes
//	         in practice when the endpoints are far apart.
//	– Space: O(V + E): distance/seen/predecessor maps per direction plus a
//	         lazy-decrease-key frontier holding up to E entries.
//
// Determinism:
//
//	The frontier orders entries by (distance, insertion sequence). Equal
//	distances pop in insertion order, so which of several equal-cost paths
//	is returned is fixed for a given graph (ParallelBidirectional excepted).
//
// Errors (sentinel):
//
//	– ErrNilGraph          if the graph pointer is nil.
//	– ErrMissingNode       bidirectional only: source or target not in the graph.
//	– ErrContradictoryPath bidirectional only: a relaxation would lower a
//	                       finalized distance (negative weight or cycle).
//
// Unreachability is never an error: it is reported as (+Inf, nil).
package dijkstra

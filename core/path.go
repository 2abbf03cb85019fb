// SPDX-License-Identifier: MIT
//
// File: path.go
// Role: validation of node sequences returned by the searches.

package core

import "fmt"

// PathWeight checks that every consecutive pair of path is joined by an edge
// and returns the summed weight. Between parallel edges the cheapest one is
// taken, which is the one any shortest-path search would have used.
//
// A single-node path weighs 0 if the node is present.
//
// Errors:
//   - ErrEmptyPath for an empty path.
//   - ErrNodeNotFound if a node of the path is absent.
//   - ErrEdgeNotFound if a hop is not an edge.
//
// Complexity: O(Σ deg(path[i])).
func (g *Graph[N]) PathWeight(path []N) (float64, error) {
	if len(path) == 0 {
		return 0, ErrEmptyPath
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.nodes[path[0]]; !ok {
		return 0, fmt.Errorf("path[0]=%v: %w", path[0], ErrNodeNotFound)
	}

	var total float64
	for i := 1; i < len(path); i++ {
		u, v := path[i-1], path[i]
		best, found := Infinity, false
		for _, a := range g.adj[u] {
			if a.Node == v && (!found || a.Weight < best) {
				best, found = a.Weight, true
			}
		}
		if !found {
			return 0, fmt.Errorf("hop %d %v—%v: %w", i, u, v, ErrEdgeNotFound)
		}
		total += best
	}

	return total, nil
}

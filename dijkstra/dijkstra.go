// File: dijkstra.go
// Role: unidirectional search (Dijkstra, ShortestPath).
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap
//     and ignoring stale entries when they are popped.
//   - Ties between equal distances pop in insertion order (see queue.go).
//   - No up-front weight scan: the unidirectional search trusts its input.
//     Only the bidirectional search detects contradictory relaxations.

package dijkstra

import "github.com/katalvlaran/bidipath/core"

// Dijkstra computes shortest distances from source to every node reachable
// from it.
//
// Returns:
//
//   - dist: finalized distance of every reachable node (source included, at 0).
//     Unreachable nodes have no entry.
//   - prev: predecessor map; prev[v] == u means the shortest path to v ends
//     with the edge u—v. The source has no entry.
//   - err:  ErrNilGraph if g is nil.
//
// A source that is not in the graph is not an error: the result is
// dist == {source: 0} and an empty prev.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[N comparable](g *core.Graph[N], source N, opts ...Option) (map[N]float64, map[N]N, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	r := newRunner(g, source, resolve(opts))
	r.process(nil)

	return r.s.dist, r.s.prev, nil
}

// ShortestPath computes the shortest distance from source to target and the
// path realizing it, stopping as soon as target is finalized.
//
// Returns (+Inf, nil) if target is unreachable, and (0, [source]) when
// source == target, whether or not source is in the graph.
//
// Errors:
//   - ErrNilGraph if g is nil. Nothing else: absent nodes are unreachable.
func ShortestPath[N comparable](g *core.Graph[N], source, target N, opts ...Option) (float64, []N, error) {
	if g == nil {
		return 0, nil, ErrNilGraph
	}

	r := newRunner(g, source, resolve(opts))
	r.process(&target)

	d, reached := r.s.dist[target]
	if !reached {
		return Infinity, nil, nil
	}

	return d, r.s.pathTo(target), nil
}

// runner holds the mutable state for a single unidirectional execution.
type runner[N comparable] struct {
	g   *core.Graph[N] // read-only within the search
	s   *side[N]
	seq uint64
}

func newRunner[N comparable](g *core.Graph[N], source N, cfg Options) *runner[N] {
	if cfg.Stats == nil {
		cfg.Stats = new(Stats)
	}
	r := &runner[N]{g: g}
	r.s = newSide(g, source, &r.seq, cfg.Stats)

	return r
}

// process is the core loop. It runs until the frontier is exhausted or, if
// target is non-nil, until target is finalized. Once target is popped with
// the minimum distance among unfinalized nodes no later relaxation can
// improve it, given non-negative weights.
func (r *runner[N]) process(target *N) {
	for r.s.front.len() > 0 {
		it, fresh := r.s.settle()
		if !fresh {
			continue
		}
		if target != nil && it.node == *target {
			return
		}

		nbrs, err := r.g.Neighbors(it.node)
		if err != nil {
			// Only an absent source gets here; it has nothing to relax.
			continue
		}
		for _, a := range nbrs {
			if _, done := r.s.dist[a.Node]; done {
				continue
			}
			r.s.improve(a.Node, it.node, it.dist+a.Weight)
		}
	}
}

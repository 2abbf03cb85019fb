package dijkstra

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/bidipath/core"
)

// Direction indices. forward grows from the source, backward from the target.
const (
	forward  = 0
	backward = 1
)

// Bidirectional computes the shortest distance and path between source and
// target by growing one search from each endpoint and alternating one pop at
// a time, forward first.
//
// The best meeting distance is updated at two checkpoints:
//
//  1. When a node is finalized in one direction and is already finalized in
//     the other, dist0 + dist1 is a candidate.
//  2. When a neighbor's tentative distance improves in one direction and it
//     has any distance recorded in the other, seen0 + seen1 is a candidate.
//
// The path is snapshotted whenever the best distance improves. The search
// ends when either frontier is exhausted (or earlier with WithEarlyExit).
//
// Returns:
//   - (0, [source]) when source == target.
//   - (+Inf, nil) when the endpoints are not connected.
//
// Errors:
//   - ErrNilGraph if g is nil.
//   - ErrMissingNode if source or target is not in the graph (checked first).
//   - ErrContradictoryPath if a relaxation would lower a distance already
//     finalized in the same direction (negative weights).
//
// No partial result accompanies an error.
func Bidirectional[N comparable](g *core.Graph[N], source, target N, opts ...Option) (float64, []N, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return 0, nil, err
	}
	if source == target {
		return 0, []N{source}, nil
	}

	s := newSearch(g, source, target, resolve(opts))
	dir := backward
	for {
		// Alternate search direction.
		dir = 1 - dir
		more, err := s.step(dir)
		if err != nil {
			return 0, nil, err
		}
		if !more {
			break
		}
	}

	d, path := s.result()

	return d, path, nil
}

func validateEndpoints[N comparable](g *core.Graph[N], source, target N) error {
	if g == nil {
		return ErrNilGraph
	}
	if !g.HasNode(source) {
		return fmt.Errorf("%w: source %v", ErrMissingNode, source)
	}
	if !g.HasNode(target) {
		return fmt.Errorf("%w: target %v", ErrMissingNode, target)
	}

	return nil
}

// search is the state of one bidirectional execution: two sides and the
// best meeting found so far.
type search[N comparable] struct {
	g     *core.Graph[N]
	opts  Options
	sides [2]*side[N]
	seq   uint64 // shared by both frontiers

	met  bool    // at least one meeting recorded
	best float64 // best total distance through a meeting node
	path []N     // snapshot of the path realizing best
}

func newSearch[N comparable](g *core.Graph[N], source, target N, cfg Options) *search[N] {
	if cfg.Stats == nil {
		cfg.Stats = new(Stats)
	}
	s := &search[N]{g: g, opts: cfg, best: Infinity}
	s.sides[forward] = newSide(g, source, &s.seq, cfg.Stats)
	s.sides[backward] = newSide(g, target, &s.seq, cfg.Stats)

	return s
}

// step expands one node in direction d. It reports false once the search is
// over: a frontier is exhausted or the early-exit bound holds.
func (s *search[N]) step(d int) (bool, error) {
	me, other := s.sides[d], s.sides[1-d]
	if me.front.len() == 0 || other.front.len() == 0 {
		return false, nil
	}

	it, fresh := me.settle()
	if !fresh {
		return true, nil
	}
	v := it.node

	if s.opts.EarlyExit && s.met && it.dist+other.front.peek() >= s.best {
		return false, nil
	}

	// Checkpoint 1: v is now final on both sides.
	if od, ok := other.dist[v]; ok {
		if total := it.dist + od; total < s.best {
			s.meet(v, total, d, nil)
		}
	}

	nbrs, err := s.g.Neighbors(v)
	if err != nil {
		return false, fmt.Errorf("dijkstra: neighbors of %v: %w", v, err)
	}
	for _, a := range nbrs {
		w := a.Node
		cand := it.dist + a.Weight

		if fd, done := me.dist[w]; done {
			if cand < fd {
				return false, fmt.Errorf("%w: edge %v—%v would lower finalized %v to %v",
					ErrContradictoryPath, v, w, fd, cand)
			}
			continue
		}
		if !me.improve(w, v, cand) {
			continue
		}

		// Checkpoint 2: w has some distance recorded on the other side.
		if os, ok := other.seen[w]; ok {
			if total := cand + os; !s.met || total < s.best {
				s.meet(w, total, d, &v)
			}
		}
	}

	return true, nil
}

// meet records node as the new best meeting point at distance total and
// snapshots the joined path.
func (s *search[N]) meet(node N, total float64, d int, via *N) {
	s.met = true
	s.best = total
	s.path = join(s.sides[forward].pathTo(node), s.sides[backward].pathTo(node))
	s.opts.Stats.Meetings++

	if s.opts.Logger == nil {
		return
	}
	fields := logrus.Fields{
		"node":      node,
		"distance":  total,
		"direction": d,
		"hops":      len(s.path) - 1,
	}
	if via != nil {
		fields["edge_weight"] = s.g.Weight(*via, node)
	}
	s.opts.Logger.WithFields(fields).Debug("dijkstra: meeting improved")
}

func (s *search[N]) result() (float64, []N) {
	if !s.met || len(s.path) == 0 {
		return Infinity, nil
	}

	return s.best, s.path
}

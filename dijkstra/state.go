package dijkstra

import "github.com/katalvlaran/bidipath/core"

// side is the search state of one direction: the anchor it grows from,
// finalized distances, best tentative distances, predecessors and its
// frontier. It lives for one search call only.
type side[N comparable] struct {
	anchor N
	dist   map[N]float64 // finalized shortest distances from anchor
	seen   map[N]float64 // best distance found so far, finalized or not
	prev   map[N]N       // predecessor toward anchor; anchor has none
	front  *frontier[N]
	stats  *Stats
}

// newSide seeds a direction with its anchor at distance 0.
func newSide[N comparable](g *core.Graph[N], anchor N, seq *uint64, stats *Stats) *side[N] {
	hint := g.NodeCount()
	s := &side[N]{
		anchor: anchor,
		dist:   make(map[N]float64, hint),
		seen:   make(map[N]float64, hint),
		prev:   make(map[N]N, hint),
		front:  newFrontier[N](seq),
		stats:  stats,
	}
	s.seen[anchor] = 0
	s.front.push(anchor, 0)
	s.stats.Pushed++

	return s
}

// settle pops the next frontier entry. It reports false for a stale entry,
// i.e. a node that is already finalized; otherwise the node is finalized at
// the popped distance.
func (s *side[N]) settle() (item[N], bool) {
	it := s.front.pop()
	if _, done := s.dist[it.node]; done {
		s.stats.Stale++
		return it, false
	}
	s.dist[it.node] = it.dist
	s.stats.Expanded++

	return it, true
}

// improve records cand as the tentative distance of w reached via v if w
// was never seen or cand is strictly better. It reports whether it did.
func (s *side[N]) improve(w, v N, cand float64) bool {
	if best, ok := s.seen[w]; ok && cand >= best {
		return false
	}
	s.seen[w] = cand
	s.prev[w] = v
	s.front.push(w, cand)
	s.stats.Relaxed++
	s.stats.Pushed++

	return true
}

// pathTo rebuilds the anchor→node path from predecessor links.
func (s *side[N]) pathTo(node N) []N {
	return walk(s.prev, s.anchor, node)
}

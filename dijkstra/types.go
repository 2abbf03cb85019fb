// File: types.go
// Role: sentinel errors, Stats, and the functional Options shared by every search.

package dijkstra

import (
	"errors"
	"math"

	"github.com/sirupsen/logrus"
)

// Sentinel errors returned by the searches.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to a search.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrMissingNode indicates that the source or the target of a
	// bidirectional search was never added to the graph.
	ErrMissingNode = errors.New("dijkstra: node not in graph")

	// ErrContradictoryPath indicates that relaxing an edge would decrease a
	// distance that was already finalized in the same direction. Under
	// non-negative weights that cannot happen, so a negative edge weight or a
	// negative cycle is the cause.
	ErrContradictoryPath = errors.New("dijkstra: contradictory paths found, negative weights?")
)

// Infinity is the distance reported for an unreachable target.
var Infinity = math.Inf(1)

// Stats collects counters of one search run. Pass a pointer through
// WithStats; the search adds to whatever the struct already holds.
type Stats struct {
	Expanded int // nodes finalized (popped and not stale), both directions
	Pushed   int // frontier insertions, seeds included
	Stale    int // popped entries discarded because already finalized
	Relaxed  int // tentative distance improvements
	Meetings int // improvements of the best meeting distance
}

// Options configures a search.
type Options struct {
	Stats     *Stats             // optional counters sink
	Logger    logrus.FieldLogger // optional debug log of meeting improvements
	EarlyExit bool               // bidirectional: stop once the frontiers prove the best meeting optimal
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithStats makes the search record its counters into s.
// Panics on nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("dijkstra: WithStats(nil)")
	}
	return func(o *Options) { o.Stats = s }
}

// WithLogger makes the bidirectional searches log every improvement of the
// best meeting distance at debug level. Panics on nil.
func WithLogger(l logrus.FieldLogger) Option {
	if l == nil {
		panic("dijkstra: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// WithEarlyExit enables the classic stopping rule for bidirectional search:
// once the key just popped in one direction plus the smallest key of the
// other frontier reaches the best meeting distance, no undiscovered path can
// be shorter and the search stops. Without it the search runs until one
// frontier is exhausted. Ignored by Dijkstra and ShortestPath.
func WithEarlyExit() Option {
	return func(o *Options) { o.EarlyExit = true }
}

// DefaultOptions returns the zero configuration: no stats, no logging,
// termination on frontier exhaustion.
func DefaultOptions() Options {
	return Options{}
}

func resolve(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

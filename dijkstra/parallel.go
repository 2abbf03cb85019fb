// File: parallel.go
// Role: bidirectional search with each direction on its own goroutine.
// Concurrency:
//   - One mutex serializes every step (pop, finalize, checkpoints, relax), which
//     makes each meeting-distance check a synchronization point.
//   - The stop flag ends both workers as soon as either one is done or fails.

package dijkstra

import (
	"context"
	"sync"

	"github.com/tevino/abool"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bidipath/core"
)

// ParallelBidirectional is Bidirectional with the forward and backward
// expansions running concurrently. It validates its input, reports errors
// and terminates exactly like Bidirectional, so the returned distance is the
// same; which of several equal-cost paths is returned depends on scheduling.
//
// Cancelling ctx stops both workers and returns ctx.Err().
func ParallelBidirectional[N comparable](
	ctx context.Context,
	g *core.Graph[N],
	source, target N,
	opts ...Option,
) (float64, []N, error) {
	if err := validateEndpoints(g, source, target); err != nil {
		return 0, nil, err
	}
	if source == target {
		return 0, []N{source}, nil
	}

	s := newSearch(g, source, target, resolve(opts))
	var mu sync.Mutex
	stop := abool.New()

	eg, ctx := errgroup.WithContext(ctx)
	for _, d := range [2]int{forward, backward} {
		d := d
		eg.Go(func() error {
			for !stop.IsSet() {
				if err := ctx.Err(); err != nil {
					return err
				}

				mu.Lock()
				more, err := s.step(d)
				mu.Unlock()

				if err != nil || !more {
					stop.Set()
					return err
				}
			}

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, nil, err
	}

	d, path := s.result()

	return d, path, nil
}

package bench

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/bidipath/core"
	"github.com/katalvlaran/bidipath/dijkstra"
)

// Algorithm names one of the searches.
type Algorithm string

// Known algorithms.
const (
	Dijkstra      Algorithm = "dijkstra"
	Bidirectional Algorithm = "bidirectional"
	Parallel      Algorithm = "parallel"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for an unsupported name.
var ErrUnknownAlgorithm = errors.New("bench: unknown algorithm")

// AllAlgorithms lists every algorithm in report order.
func AllAlgorithms() []Algorithm {
	return []Algorithm{Dijkstra, Bidirectional, Parallel}
}

// ParseAlgorithm validates a name.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(s); a {
	case Dijkstra, Bidirectional, Parallel:
		return a, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

// Search runs the algorithm once.
func (a Algorithm) Search(
	ctx context.Context,
	g *core.Graph[int],
	source, target int,
	opts ...dijkstra.Option,
) (float64, []int, error) {
	switch a {
	case Dijkstra:
		return dijkstra.ShortestPath(g, source, target, opts...)
	case Bidirectional:
		return dijkstra.Bidirectional(g, source, target, opts...)
	case Parallel:
		return dijkstra.ParallelBidirectional(ctx, g, source, target, opts...)
	default:
		return 0, nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}
}

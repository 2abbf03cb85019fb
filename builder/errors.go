// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w` via builderErrorf.
//   • Constructors never panic; validation panics are confined to option
//     constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, k, ...) is smaller
// than the minimum the constructor accepts.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG in the resolved config (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates a weight bound outside the accepted domain,
// e.g. a maximum weight below 1 for Random.
var ErrInvalidWeight = errors.New("builder: invalid weight bound")

// ErrConstructFailed indicates the builder could not apply a constructor,
// e.g. a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps a sentinel with the constructor name and a formatted detail.
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}

// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/bidipath/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors (no panics).
type Constructor func(g *core.Graph[int], cfg builderConfig) error

// BuildGraph creates a new integer-labeled core.Graph, resolves the builder
// configuration from bopts, and applies all constructors in order. Any
// constructor error is wrapped with "BuildGraph: %w" and returned immediately.
//
// Errors:
//   - Wraps constructor errors via %w; branch with errors.Is against
//     ErrTooFewVertices, ErrNeedRandSource, ErrInvalidWeight, ErrConstructFailed.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[int], error) {
	g := core.NewGraph[int]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

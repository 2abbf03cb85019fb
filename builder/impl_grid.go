// SPDX-License-Identifier: MIT
// Package: bidipath/builder
//
// impl_grid.go - implementation of Grid(rows, cols).
//
// Model:
//   - 2D orthogonal grid with 4-neighborhood (right & bottom neighbors per cell).
//   - Node IDs are row-major indices: cell (r,c) is r*cols + c. Use GridID.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Edge weight cfg.weightFn(u, v, cfg.rng) for the two cell IDs.
//
// Complexity:
//   - Time: O(rows*cols). Space: O(1) extra.
//
// Determinism:
//   - Stable edge order: for each (r,c) emit Right then Bottom if present.

package builder

import "github.com/katalvlaran/bidipath/core"

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// GridID returns the node ID of cell (r, c) in a grid with cols columns.
func GridID(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph[int], cfg builderConfig) error {
		// 1) Validate parameters early (fail fast; no partial work).
		if rows < minGridDim || cols < minGridDim {
			return builderErrorf(methodGrid, ErrTooFewVertices,
				"rows=%d, cols=%d (each must be ≥ %d)", rows, cols, minGridDim)
		}

		// 2) Add all nodes in row-major order.
		for id := 0; id < rows*cols; id++ {
			g.AddNode(id)
		}

		// 3) Emit edges to Right and Bottom neighbors.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					v := GridID(r, c+1, cols)
					g.AddEdge(u, v, cfg.weightFn(u, v, cfg.rng))
				}
				if r+1 < rows {
					v := GridID(r+1, c, cols)
					g.AddEdge(u, v, cfg.weightFn(u, v, cfg.rng))
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// impl_grid.go - implementation of CityGrid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols street grid, nodes in row-major order.
//   • Coordinates: (c·spacing + j + dx, r·spacing + j + dy) where j is the
//     effective jitter and dx,dy ∈ [-j, j]. The +j shift keeps coordinates
//     non-negative.
//   • Effective jitter is min(cfg.jitter, spacing/4) so every cell stays a
//     convex quadrilateral and the embedding remains planar.
//   • Edges: for each (r,c) emit Right then Bottom if present.
//   • Diagonals: after all orthogonal edges, each cell independently gets one
//     diagonal with probability cfg.diagonalProb; its orientation is random.
//     One diagonal per cell keeps the embedding planar.
//
// Complexity: O(rows·cols) time and edges.

package builder

import "fmt"

const (
	methodCityGrid = "CityGrid"
	minGridDim     = 1
)

// CityGrid returns a Constructor that appends a rows×cols street grid.
func CityGrid(rows, cols int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		// 1) Validate parameters early.
		if rows < minGridDim || cols < minGridDim || rows*cols < 2 {
			return fmt.Errorf("%s: rows=%d, cols=%d (need at least 2 nodes): %w",
				methodCityGrid, rows, cols, ErrTooFewVertices)
		}

		// 2) Nodes in row-major order.
		j := min(cfg.jitter, cfg.spacing/4)
		base := len(d.coords)
		id := func(r, c int) int { return base + r*cols + c }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				dx, dy := 0, 0
				if j > 0 {
					dx = cfg.intn(2*j+1) - j
					dy = cfg.intn(2*j+1) - j
				}
				d.addNode(coordOf(c*cfg.spacing+j+dx, r*cfg.spacing+j+dy))
			}
		}

		// 3) Orthogonal streets.
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					d.addEdge(id(r, c), id(r, c+1), cfg.weightFn(cfg.rng))
				}
				if r+1 < rows {
					d.addEdge(id(r, c), id(r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		// 4) Diagonal shortcuts.
		for r := 0; r+1 < rows; r++ {
			for c := 0; c+1 < cols; c++ {
				if !cfg.chance(cfg.diagonalProb) {
					continue
				}
				if cfg.intn(2) == 0 {
					d.addEdge(id(r, c), id(r+1, c+1), cfg.weightFn(cfg.rng))
				} else {
					d.addEdge(id(r, c+1), id(r+1, c), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}

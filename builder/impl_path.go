// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// impl_path.go - Path(n) and Spur(at, n): tree-shaped streets whose every
// edge is a bridge. Used to model dead ends and to exercise disconnection.
//
// Layout:
//   • Path: nodes at (i·spacing, 0), edges i→i+1.
//   • Spur: starts at node `at`, extends to the right of it by one spacing
//     per node along a line offset by spacing/2 downwards so it does not
//     overlap existing grid streets.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadwork/core"
)

const (
	methodPath = "Path"
	methodSpur = "Spur"
	minPathLen = 2
)

// Path returns a Constructor that appends an n-node path.
func Path(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minPathLen {
			return fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodPath, n, minPathLen, ErrTooFewVertices)
		}
		prev := -1
		for i := 0; i < n; i++ {
			v := d.addNode(coordOf(i*cfg.spacing, 0))
			if prev >= 0 {
				d.addEdge(prev, v, cfg.weightFn(cfg.rng))
			}
			prev = v
		}
		return nil
	}
}

// Spur returns a Constructor that hangs n new nodes off existing node at.
func Spur(at, n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d (must be ≥ 1): %w", methodSpur, n, ErrTooFewVertices)
		}
		if at < 0 || at >= len(d.coords) {
			return fmt.Errorf("%s: at=%d with %d nodes: %w", methodSpur, at, len(d.coords), ErrNodeOutOfRange)
		}
		origin := d.coords[at]
		prev := at
		for i := 1; i <= n; i++ {
			v := d.addNode(coordOf(origin.X+i*cfg.spacing/2, origin.Y+cfg.spacing/2))
			d.addEdge(prev, v, cfg.weightFn(cfg.rng))
			prev = v
		}
		return nil
	}
}

func coordOf(x, y int) core.Coord { return core.Coord{X: x, Y: y} }

// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// impl_explicit.go - Explicit(coords, edges): hand-written fixtures.
//
// Edge endpoints are indices into coords (0-based, relative to this
// constructor). Weights are taken verbatim; cfg.weightFn is not consulted.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadwork/core"
)

const methodExplicit = "Explicit"

// Explicit returns a Constructor that appends the given nodes and edges.
func Explicit(coords []core.Coord, edges []EdgeSpec) Constructor {
	return func(d *draft, _ builderConfig) error {
		if len(coords) == 0 {
			return fmt.Errorf("%s: no nodes: %w", methodExplicit, ErrTooFewVertices)
		}
		base := len(d.coords)
		for _, c := range coords {
			d.addNode(c)
		}
		for i, e := range edges {
			if e.U < 0 || e.U >= len(coords) || e.V < 0 || e.V >= len(coords) {
				return fmt.Errorf("%s: edge %d (%d,%d) with %d nodes: %w",
					methodExplicit, i, e.U, e.V, len(coords), ErrNodeOutOfRange)
			}
			d.addEdge(base+e.U, base+e.V, e.W)
		}
		return nil
	}
}

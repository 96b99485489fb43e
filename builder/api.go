// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// api.go - public entry-point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order against a draft, then materializes a core.Graph.
//   - Constructors only append to the draft; node count is known after the last
//     constructor, which is what core.NewGraph needs.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return sentinel errors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/roadwork/core"
)

// EdgeSpec is an explicit undirected edge between draft nodes.
type EdgeSpec struct {
	U int
	V int
	W int64
}

// draft accumulates nodes and edges before the core.Graph exists.
type draft struct {
	coords []core.Coord
	edges  []EdgeSpec
}

func (d *draft) addNode(c core.Coord) int {
	d.coords = append(d.coords, c)
	return len(d.coords) - 1
}

func (d *draft) addEdge(u, v int, w int64) {
	d.edges = append(d.edges, EdgeSpec{U: u, V: v, W: w})
}

// Constructor applies a deterministic mutation to the draft using the
// resolved builderConfig.
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves the configuration from bopts, applies all constructors
// in order and returns the resulting graph.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - ErrTooFewVertices if the draft ends up empty.
//   - constructor and core errors, wrapped with "BuildGraph: %w".
//
// Complexity: Σ constructor cost + O(N + M) to materialize.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.NewGraph(len(d.coords))
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrTooFewVertices)
	}
	for v, c := range d.coords {
		if err = g.SetCoord(v, c); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	for _, e := range d.edges {
		if _, err = g.AddEdge(e.U, e.V, e.W); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================

// CityGrid builds a rows×cols street grid with optional jitter and diagonals.
//func CityGrid(rows, cols int) Constructor

// Path appends an n-node polyline, every edge a bridge.
//func Path(n int) Constructor

// Spur attaches an n-edge dead-end street to an existing node.
//func Spur(at, n int) Constructor

// Explicit appends nodes and edges given verbatim.
//func Explicit(coords []core.Coord, edges []EdgeSpec) Constructor

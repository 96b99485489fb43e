// Package dijkstra defines the result and option types shared by the two
// single-source shortest-path routines of roadwork.
//
// Both routines work on a *core.Graph with positive weights and accept an
// optional closure mask: edges in the mask are treated as absent.
//
// Options:
//
//	– Source:     index of the starting node (must be in [0, N)).
//	– Target:     optional early-exit node; the search stops once it is settled.
//	– Closed:     edges to ignore (nil means none).
//	– MaxDistance: optional cap; nodes beyond it are left at core.DistInf.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrSourceRange     if the source index is out of range.
//	– ErrTargetRange     if the target index is out of range.
//	– ErrBadMaxDistance  if MaxDistance < 0.
//	– ErrUnreachable     if Path is asked for a node that was not reached.
package dijkstra

import (
	"errors"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors returned by this package.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceRange indicates that the source node does not exist.
	ErrSourceRange = errors.New("dijkstra: source node out of range")

	// ErrTargetRange indicates that the target node does not exist.
	ErrTargetRange = errors.New("dijkstra: target node out of range")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable indicates that no path exists to the requested node.
	ErrUnreachable = errors.New("dijkstra: node unreachable")
)

// NoTarget disables the early-exit target.
const NoTarget = -1

// NoEdge marks the parent edge of the root and of unreached nodes.
const NoEdge = -1

// Options configures a shortest-path run.
type Options struct {
	Source      int           // starting node
	Target      int           // early-exit node, NoTarget for a full run
	Closed      *core.EdgeBit // edges treated as absent, may be nil
	MaxDistance int64         // exploration cap
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// Source sets the starting node.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithTarget stops the search as soon as v is settled.
func WithTarget(v int) Option {
	return func(o *Options) {
		o.Target = v
	}
}

// WithClosed masks the given edges for the duration of the run.
func WithClosed(closed *core.EdgeBit) Option {
	return func(o *Options) {
		o.Closed = closed
	}
}

// WithMaxDistance caps exploration at max.
// A negative max makes the run fail with ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for a full, unmasked run from source.
//
// Defaults:
//   - Target:      NoTarget.
//   - Closed:      nil.
//   - MaxDistance: core.DistInf - 1 (everything reachable).
func DefaultOptions(source int) Options {
	return Options{
		Source:      source,
		Target:      NoTarget,
		Closed:      nil,
		MaxDistance: core.DistInf - 1,
	}
}

// Result holds distances and the shortest-path tree of one run.
//
// Dist[v] is core.DistInf for unreached nodes. ParentEdge[v] is the edge
// through which v was last improved, NoEdge for the source and unreached nodes.
type Result struct {
	Source     int
	Dist       []int64
	ParentEdge []int
}

// SumDist returns Σ Dist[v] over reached nodes and the count of unreached ones.
//
// Complexity: O(N).
func (r *Result) SumDist() (sum int64, unreached int) {
	for _, d := range r.Dist {
		if d >= core.DistInf {
			unreached++
			continue
		}
		sum += d
	}
	return sum, unreached
}

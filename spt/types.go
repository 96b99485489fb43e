package spt

import (
	"errors"
)

// Sentinel errors.
var (
	ErrNilModel       = errors.New("spt: model is nil")
	ErrBadDays        = errors.New("spt: days must be positive")
	ErrDayRange       = errors.New("spt: day out of range")
	ErrRootOutOfRange = errors.New("spt: root out of range")
	ErrNoRoots        = errors.New("spt: no roots")
	ErrTrialPending   = errors.New("spt: a trial is already open")
)

// DefaultExactRootLimit is the node count up to which every node is a root.
const DefaultExactRootLimit = 48

// Unassigned marks an edge that is closed on no day; TryMove accepts it as
// the source day.
const Unassigned = -1

// noEdge is the parent edge of the root and of unreachable nodes.
const noEdge = -1

// Options configures an Estimator.
type Options struct {
	ExactRootLimit int   // N at or below which every node is a root
	AllRoots       bool  // force every node as a root
	Roots          []int // explicit roots; overrides the other fields
}

// Option mutates Options.
type Option func(*Options)

// WithExactRootLimit overrides DefaultExactRootLimit.
func WithExactRootLimit(n int) Option {
	return func(o *Options) { o.ExactRootLimit = n }
}

// WithAllRoots roots a tree at every node, making day deltas exact.
func WithAllRoots() Option {
	return func(o *Options) { o.AllRoots = true }
}

// WithRoots fixes the root set.
func WithRoots(roots ...int) Option {
	return func(o *Options) { o.Roots = append([]int(nil), roots...) }
}

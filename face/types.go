package face

import (
	"errors"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors.
var (
	ErrNilModel     = errors.New("face: model is nil")
	ErrBadDays      = errors.New("face: days must be positive")
	ErrBadRectLimit = errors.New("face: rect limit must be positive")
)

// DefaultRectLimit bounds dx+dy of a group's bounding rectangle.
const DefaultRectLimit = 300

// noGroup marks an edge claimed by no group.
const noGroup = -1

// Options configures Decompose.
type Options struct {
	RectLimit int
}

// Option mutates Options.
type Option func(*Options)

// WithRectLimit overrides DefaultRectLimit.
func WithRectLimit(limit int) Option {
	return func(o *Options) { o.RectLimit = limit }
}

// Rect is an axis-aligned bounding rectangle.
type Rect struct {
	Lo, Hi core.Coord
}

// Size returns dx+dy.
func (r Rect) Size() int { return (r.Hi.X - r.Lo.X) + (r.Hi.Y - r.Lo.Y) }

// Merge returns the smallest rectangle covering r and o.
func (r Rect) Merge(o Rect) Rect {
	return Rect{
		Lo: core.Coord{X: min(r.Lo.X, o.Lo.X), Y: min(r.Lo.Y, o.Lo.Y)},
		Hi: core.Coord{X: max(r.Hi.X, o.Hi.X), Y: max(r.Hi.Y, o.Hi.Y)},
	}
}

// Face is one bounded cycle of the embedding.
type Face struct {
	ID    int
	Nodes []int // boundary in counter-clockwise order
	Edges []int // distinct boundary edges, descending betweenness then index
	Rect  Rect
}

// Group is a cluster of adjacent faces.
type Group struct {
	ID int

	// Faces in claim order: ascending undecided count at grouping time.
	Faces []int

	// Claims[i] lists the edges Faces[i] decided, descending betweenness.
	// Claims are disjoint and each holds at most D edges.
	Claims [][]int

	// Edges is the union of Claims.
	Edges *core.EdgeBit

	Rect Rect
}

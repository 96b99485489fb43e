package spt

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/network"
)

// Estimator maintains one Tree per (day, root).
type Estimator struct {
	days  int
	roots []int
	trees [][]*Tree // trees[d][i] is rooted at roots[i]

	trial   bool
	touched []int // days journaled by the open trial
}

// New builds days·len(roots) trees over the open graph.
//
// Complexity: O(D·R·(N + M) log N).
func New(m *network.Model, days int, opts ...Option) (*Estimator, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	o := Options{ExactRootLimit: DefaultExactRootLimit}
	for _, opt := range opts {
		opt(&o)
	}
	roots, err := pickRoots(m, o)
	if err != nil {
		return nil, err
	}

	est := &Estimator{days: days, roots: roots, trees: make([][]*Tree, days)}
	for d := range est.trees {
		est.trees[d] = make([]*Tree, len(roots))
		for i, r := range roots {
			if est.trees[d][i], err = NewTree(m, r); err != nil {
				return nil, err
			}
		}
	}
	return est, nil
}

// pickRoots resolves the root set for o.
func pickRoots(m *network.Model, o Options) ([]int, error) {
	n := m.N()
	if len(o.Roots) > 0 {
		for _, r := range o.Roots {
			if r < 0 || r >= n {
				return nil, fmt.Errorf("%w: %d", ErrRootOutOfRange, r)
			}
		}
		return lo.Uniq(o.Roots), nil
	}
	if o.AllRoots || n <= o.ExactRootLimit {
		return lo.Range(n), nil
	}
	return Representatives(m.Graph()), nil
}

// Representatives returns the nodes nearest to the corners, side midpoints
// and centre of g's bounding box, without duplicates.
func Representatives(g *core.Graph) []int {
	low, high := g.Bounds()
	xs := []int{low.X, (low.X + high.X) / 2, high.X}
	ys := []int{low.Y, (low.Y + high.Y) / 2, high.Y}
	out := make([]int, 0, 9)
	for _, y := range ys {
		for _, x := range xs {
			out = append(out, g.Nearest(core.Coord{X: x, Y: y}))
		}
	}
	return lo.Uniq(out)
}

// Roots returns the root nodes.
func (est *Estimator) Roots() []int { return est.roots }

// Days returns D.
func (est *Estimator) Days() int { return est.days }

// Tree returns the tree of day d and root index i.
func (est *Estimator) Tree(d, i int) *Tree { return est.trees[d][i] }

func (est *Estimator) checkDay(d int) error {
	if d < 0 || d >= est.days {
		return fmt.Errorf("%w: %d", ErrDayRange, d)
	}
	return nil
}

// Close closes e on day d in every tree of that day.
func (est *Estimator) Close(d, e int) error {
	if err := est.checkDay(d); err != nil {
		return err
	}
	for _, t := range est.trees[d] {
		t.DelEdge(e)
	}
	return nil
}

// Open reopens e on day d in every tree of that day.
func (est *Estimator) Open(d, e int) error {
	if err := est.checkDay(d); err != nil {
		return err
	}
	for _, t := range est.trees[d] {
		t.AddEdge(e)
	}
	return nil
}

// DayDelta returns Σ over roots of the tree deltas of day d.
func (est *Estimator) DayDelta(d int) int64 {
	var sum int64
	for _, t := range est.trees[d] {
		sum += t.Delta()
	}
	return sum
}

// Total returns Σ_d DayDelta(d).
func (est *Estimator) Total() int64 {
	var sum int64
	for d := range est.trees {
		sum += est.DayDelta(d)
	}
	return sum
}

// TryMove journals the trees of from and to, reopens e on from (skipped when
// from is Unassigned), closes it on to and returns the change of Total. The
// trial stays open until Commit or Rollback.
func (est *Estimator) TryMove(e, from, to int) (int64, error) {
	if est.trial {
		return 0, ErrTrialPending
	}
	if from != Unassigned {
		if err := est.checkDay(from); err != nil {
			return 0, err
		}
	}
	if err := est.checkDay(to); err != nil {
		return 0, err
	}

	est.trial = true
	est.touched = est.touched[:0]
	var before int64
	for _, d := range []int{from, to} {
		if d == Unassigned || lo.Contains(est.touched, d) {
			continue
		}
		est.touched = append(est.touched, d)
		before += est.DayDelta(d)
		for _, t := range est.trees[d] {
			t.Begin()
		}
	}

	if from != Unassigned {
		_ = est.Open(from, e)
	}
	_ = est.Close(to, e)

	var after int64
	for _, d := range est.touched {
		after += est.DayDelta(d)
	}
	return after - before, nil
}

// Commit keeps the open trial.
func (est *Estimator) Commit() { est.finish(false) }

// Rollback undoes the open trial.
func (est *Estimator) Rollback() { est.finish(true) }

func (est *Estimator) finish(undo bool) {
	if !est.trial {
		return
	}
	for _, d := range est.touched {
		for _, t := range est.trees[d] {
			if undo {
				t.Rollback()
			} else {
				t.Commit()
			}
		}
	}
	est.trial = false
}

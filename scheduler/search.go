package scheduler

import (
	"context"
	"math"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/rng"
)

// search runs the local search loop until a stop condition holds. Each
// iteration either migrates an edge off an overloaded day or proposes moving
// one sampled edge to another day and keeps the move per Options.Acceptance.
func (s *Searcher) search(ctx context.Context, start time.Time) {
	if s.days == 1 || s.m.M() == 0 {
		s.res.Stop = StopNoMoves
		return
	}
	pool := s.groupPool()

	for iter := 0; ; iter++ {
		if stop, ok := s.shouldStop(ctx, start, iter); ok {
			s.res.Stop = stop
			return
		}
		s.res.Iterations++

		if s.overloaded() > 0 {
			s.rec.SearchIteration(s.migrateOverload())
			s.noteBest(iter)
			continue
		}

		e := s.sampleEdge(iter, pool)
		to, ok := s.pickTarget(e)
		if !ok {
			s.rec.SearchIteration(false)
			continue
		}
		delta, err := s.est.TryMove(e, s.day[e], to)
		s.mustEst(err)
		if !s.accept(delta, iter, start) {
			s.est.Rollback()
			s.rec.SearchIteration(false)
			continue
		}
		s.est.Commit()
		s.move(e, to)
		s.cur += delta
		s.res.Accepted++
		s.rec.SearchIteration(true)
		s.noteBest(iter)
	}
}

func (s *Searcher) shouldStop(ctx context.Context, start time.Time, iter int) (StopReason, bool) {
	switch {
	case s.best != nil && s.bestCost == 0:
		return StopZeroCost, true
	case ctx.Err() != nil:
		return StopCancelled, true
	case s.opts.TimeLimit > 0 && time.Since(start) >= s.opts.TimeLimit:
		return StopTimeLimit, true
	case s.opts.MaxIterations > 0 && iter >= s.opts.MaxIterations:
		return StopIterations, true
	}
	return "", false
}

// noteBest records the current schedule when it is within capacity and
// strictly better than the best so far.
func (s *Searcher) noteBest(iter int) {
	if s.overloaded() > 0 || (s.best != nil && s.cur >= s.bestCost) {
		return
	}
	s.snapshotBest()
	s.res.Improvements++
	s.rec.BestCost(s.cur)
	if s.opts.OnImprove != nil {
		s.opts.OnImprove(iter, s.cur)
	}
	s.log.Debugw("improved", map[string]any{"iter": iter, "cost": s.cur})
}

// migrateOverload moves a random edge of the first overloaded day to a day
// with room, eligible days first. The move is kept whatever its cost.
func (s *Searcher) migrateOverload() bool {
	f := s.mostOverloaded()
	if f < 0 {
		return false
	}
	e := rng.Pick(s.edgesOn(f), s.r)
	roomy := func(d int, _ int) bool { return d != f && !s.full(d) }
	targets := lo.Filter(s.avail.Days(e), roomy)
	if len(targets) == 0 {
		targets = lo.Filter(lo.Range(s.days), roomy)
	}
	if len(targets) == 0 {
		return false
	}
	to := rng.Pick(targets, s.r)

	delta, err := s.est.TryMove(e, f, to)
	s.mustEst(err)
	s.est.Commit()
	s.move(e, to)
	s.cur += delta
	s.res.Migrations++
	return true
}

// groupPool flattens the face groups into per-group lists of claimed edges,
// dropping empty claims.
func (s *Searcher) groupPool() [][][]int {
	if s.dc == nil {
		return nil
	}
	pool := make([][][]int, 0, len(s.dc.Groups()))
	for _, grp := range s.dc.Groups() {
		claims := lo.Filter(grp.Claims, func(c []int, _ int) bool { return len(c) > 0 })
		if len(claims) > 0 {
			pool = append(pool, claims)
		}
	}
	return pool
}

// sampleEdge picks the edge to move. Early iterations draw from the first,
// highest-betweenness groups only; the window widens linearly over
// RampIterations. With UniformEdgeProb any edge is drawn.
func (s *Searcher) sampleEdge(iter int, pool [][][]int) int {
	if len(pool) == 0 || rng.Chance(s.r, s.opts.UniformEdgeProb) {
		return s.r.Intn(s.m.M())
	}
	w := len(pool)
	if s.opts.RampIterations > 0 {
		w = int(math.Ceil(float64(len(pool)) * float64(iter+1) / float64(s.opts.RampIterations)))
		w = min(max(w, 1), len(pool))
	}
	claims := pool[s.r.Intn(w)]
	return rng.Pick(rng.Pick(claims, s.r), s.r)
}

// pickTarget returns a day for e other than its own and with room. With
// LocalityBias it prefers days already used by edges sharing an endpoint with
// e. Availability only shapes the initial schedule: a day whose reserved tree
// was broken by a forced edge is left to the estimator's disconnection
// penalty.
func (s *Searcher) pickTarget(e int) (int, bool) {
	cur := s.day[e]
	ok := func(d int, _ int) bool { return d != cur && !s.full(d) }

	if rng.Chance(s.r, s.opts.LocalityBias) {
		ed := s.g.Edge(e)
		var near []int
		for _, v := range []int{ed.U, ed.V} {
			for _, h := range s.g.Adj(v) {
				if h.Edge != e {
					near = append(near, s.day[h.Edge])
				}
			}
		}
		near = lo.Filter(lo.Uniq(near), ok)
		if len(near) > 0 {
			return rng.Pick(near, s.r), true
		}
	}

	cands := lo.Filter(lo.Range(s.days), ok)
	if len(cands) == 0 {
		return 0, false
	}
	return rng.Pick(cands, s.r), true
}

// accept decides on a proposed change of the estimator total.
func (s *Searcher) accept(delta int64, iter int, start time.Time) bool {
	if delta < 0 {
		return true
	}
	if s.opts.Acceptance == Greedy {
		return false
	}
	if delta == 0 {
		return true
	}
	t := s.opts.MaxTemp + (s.opts.MinTemp-s.opts.MaxTemp)*s.progress(iter, start)
	return s.r.Float64() < math.Exp(-s.scaled(delta)/t)
}

// progress is the spent fraction of the tightest budget, in [0, 1].
func (s *Searcher) progress(iter int, start time.Time) float64 {
	p := 0.0
	if s.opts.TimeLimit > 0 {
		p = float64(time.Since(start)) / float64(s.opts.TimeLimit)
	}
	if s.opts.MaxIterations > 0 {
		p = max(p, float64(iter)/float64(s.opts.MaxIterations))
	}
	return min(p, 1)
}

// scaled converts an estimator delta, summed over roots, to the per-pair
// scale of network.Model.CalcCost.
func (s *Searcher) scaled(delta int64) float64 {
	n := float64(s.m.N())
	roots := float64(len(s.est.Roots()))
	return float64(delta) * float64(network.CostScale) / (n * (n - 1)) * n / roots
}

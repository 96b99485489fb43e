package scheduler

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/roadwork/bypass"
	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/spt"
)

// initialize builds the first complete schedule.
//
// Steps:
//  1. Seed face groups: within a group every face gets its edges on
//     distinct days, heaviest edges first.
//  2. Place leftover edges on a random eligible day with room.
//  3. Build the estimator over the seeded schedule.
//  4. Repair capacity overflows.
func (s *Searcher) initialize() error {
	mEdges := s.m.M()
	s.day = make([]int, mEdges)
	for e := range s.day {
		s.day[e] = Unassigned
	}
	s.count = make([]int, s.days)

	var err error
	if s.tracker, err = bypass.New(s.m, s.days); err != nil {
		return err
	}

	// 1-2) Seed.
	s.seedGroups()
	s.seedLeftovers()

	// 3) Estimator.
	if s.est, err = spt.New(s.m, s.days, s.opts.Estimator...); err != nil {
		return err
	}
	for e, d := range s.day {
		s.mustEst(s.est.Close(d, e))
	}
	s.cur = s.est.Total()

	// 4) Repair.
	s.repair()

	s.res.InitialCost = s.cur
	if s.overloaded() == 0 {
		s.snapshotBest()
	}
	return nil
}

// seedGroups walks the face groups in creation order. Each round picks, for
// every day not yet used by the group, the heaviest pending eligible edge of
// each face, scores the day by the summed betweenness of those edges and
// closes the winning batch on the winning day. Ties go to the batch creating
// fewer bypass conflicts, then to the lower day.
func (s *Searcher) seedGroups() {
	if s.dc == nil {
		return
	}
	for _, grp := range s.dc.Groups() {
		pending := make([][]int, len(grp.Claims))
		for i, c := range grp.Claims {
			pending[i] = slices.Clone(c)
		}
		used := make([]bool, s.days)

		for {
			bestDay, bestScore, bestConf := -1, int64(0), 0
			var bestPick []int
			for d := 0; d < s.days; d++ {
				if used[d] || s.full(d) {
					continue
				}
				pick, score := s.groupPick(pending, d)
				if len(pick) == 0 {
					continue
				}
				conf := lo.SumBy(pick, func(e int) int { return s.tracker.ConflictsIfAdded(d, e) })
				if bestDay < 0 || score > bestScore || (score == bestScore && conf < bestConf) {
					bestDay, bestScore, bestConf, bestPick = d, score, conf, pick
				}
			}
			if bestDay < 0 {
				break
			}
			used[bestDay] = true
			for _, e := range bestPick {
				s.move(e, bestDay)
			}
			for i := range pending {
				pending[i] = slices.DeleteFunc(pending[i], func(e int) bool { return s.day[e] != Unassigned })
			}
		}
	}
}

// groupPick returns the heaviest pending edge of each face that may close on
// day d, limited by the room left on d, and their summed betweenness.
func (s *Searcher) groupPick(pending [][]int, d int) ([]int, int64) {
	room := s.capacity - s.count[d]
	var pick []int
	var score int64
	for _, edges := range pending {
		if room == 0 {
			break
		}
		for _, e := range edges {
			if s.avail.Eligible(d, e) {
				pick = append(pick, e)
				score += s.m.Betweenness(e)
				room--
				break
			}
		}
	}
	return pick, score
}

// seedLeftovers places every unassigned edge, heaviest first, on a random
// eligible day with room, or on a random eligible day when all are full.
func (s *Searcher) seedLeftovers() {
	var rest []int
	for e, d := range s.day {
		if d == Unassigned {
			rest = append(rest, e)
		}
	}
	slices.SortStableFunc(rest, func(a, b int) int {
		return cmp.Compare(s.m.Betweenness(b), s.m.Betweenness(a))
	})
	for _, e := range rest {
		s.move(e, s.anyDay(e))
	}
}

// anyDay returns a random day for e, preferring eligible days with room,
// then eligible days, then days with room, then any day.
func (s *Searcher) anyDay(e int) int {
	eligible := s.avail.Days(e)
	open := lo.Filter(eligible, func(d int, _ int) bool { return !s.full(d) })
	if len(open) > 0 {
		return rng.Pick(open, s.r)
	}
	if len(eligible) > 0 {
		return rng.Pick(eligible, s.r)
	}
	open = lo.Filter(lo.Range(s.days), func(d int, _ int) bool { return !s.full(d) })
	if len(open) > 0 {
		return rng.Pick(open, s.r)
	}
	return s.r.Intn(s.days)
}

package scheduler

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/spanning"
)

// repair moves edges off overloaded days. Each attempt takes the most
// overloaded day and tries, in order: migration guided by a shuffled
// spanning tree, migration guided by a betweenness-ordered spanning tree,
// and a forced move of its lightest edge. Leftover overflow is handled by
// the search loop.
func (s *Searcher) repair() {
	for attempt := 0; attempt < s.opts.RepairRetries; attempt++ {
		f := s.mostOverloaded()
		if f < 0 {
			return
		}
		moved := s.migrate(f, false)
		if moved == 0 {
			moved = s.migrate(f, true)
		}
		if moved == 0 {
			moved = s.forceOne(f)
		}
		if moved == 0 {
			return
		}
		s.res.Repairs += moved
	}
}

func (s *Searcher) mostOverloaded() int {
	f := -1
	for d, c := range s.count {
		if c > s.capacity && (f < 0 || c > s.count[f]) {
			f = d
		}
	}
	return f
}

// edgesOn returns the edges closed on d, lightest first.
func (s *Searcher) edgesOn(d int) []int {
	var out []int
	for e, de := range s.day {
		if de == d {
			out = append(out, e)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(s.m.Betweenness(a), s.m.Betweenness(b))
	})
	return out
}

// migrate moves edges of day f, lightest first, to other days with room.
// For each target t a spanning tree is grown over the edges open on t
// (shuffled, or heaviest first when byBetweenness); an edge outside that
// tree can close on t without cutting t apart.
func (s *Searcher) migrate(f int, byBetweenness bool) int {
	edges := s.edgesOn(f)
	moved := 0
	for _, t := range rng.Perm(s.days, s.r) {
		if s.count[f] <= s.capacity {
			break
		}
		if t == f || s.full(t) {
			continue
		}

		var order []int
		for e, de := range s.day {
			if de != t {
				order = append(order, e)
			}
		}
		if byBetweenness {
			slices.SortStableFunc(order, func(a, b int) int {
				return cmp.Compare(s.m.Betweenness(b), s.m.Betweenness(a))
			})
		} else {
			rng.Shuffle(order, s.r)
		}
		// A disconnected road graph yields a forest, which is as good.
		tree, _ := spanning.Kruskal(s.g, order)

		for _, e := range edges {
			if s.count[f] <= s.capacity || s.full(t) {
				break
			}
			if s.day[e] != f || tree.Has(e) || !s.avail.Eligible(t, e) {
				continue
			}
			s.assign(e, t)
			moved++
		}
	}
	return moved
}

// forceOne moves the lightest edge of f to the least loaded day with room,
// eligible days first. It reports 0 when every other day is full.
func (s *Searcher) forceOne(f int) int {
	edges := s.edgesOn(f)
	if len(edges) == 0 {
		return 0
	}
	e := edges[0]
	to := -1
	for _, eligibleOnly := range []bool{true, false} {
		for d := 0; d < s.days; d++ {
			if d == f || s.full(d) || (eligibleOnly && !s.avail.Eligible(d, e)) {
				continue
			}
			if to < 0 || s.count[d] < s.count[to] {
				to = d
			}
		}
		if to >= 0 {
			break
		}
	}
	if to < 0 {
		return 0
	}
	s.log.Debugf("forced edge %d from day %d to day %d", e, f+1, to+1)
	s.assign(e, to)
	return 1
}

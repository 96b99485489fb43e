package network

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/dijkstra"
)

// RawCost returns Σ_s (sumDist'(s) − sumDist(s)) with closed removed and the
// number of unreachable ordered pairs. Sources whose tree avoids closed are
// unaffected and skipped.
//
// Complexity: O(S·(N+M)) where S is the number of affected sources.
func (m *Model) RawCost(closed *core.EdgeBit) (raw int64, disconnected int) {
	if closed == nil || closed.Empty() {
		return 0, 0
	}
	for s := 0; s < m.g.N(); s++ {
		if !m.trees[s].Intersects(closed) {
			continue
		}
		// Source and graph are valid by construction.
		res, _ := dijkstra.Relax(m.g, dijkstra.Source(s), dijkstra.WithClosed(closed))
		for _, d := range res.Dist {
			if d >= core.DistInf {
				disconnected++
			}
		}
		raw += sumWithInf(res.Dist) - m.sumDist[s]
	}
	return raw, disconnected
}

// CalcCost returns the normalised disruption of closing every edge in closed.
// A closure that disconnects the graph is reported through
// Cost.Disconnected, never as an error.
func (m *Model) CalcCost(closed *core.EdgeBit) Cost {
	raw, disc := m.RawCost(closed)
	return Cost{Value: m.Normalize(raw), Disconnected: disc}
}

// DaySets splits a 1-based schedule into per-day closure sets (index 0 is day 1).
func (m *Model) DaySets(days int, schedule []int) ([]*core.EdgeBit, error) {
	if days < 1 {
		return nil, fmt.Errorf("%w: days=%d", ErrDayOutOfRange, days)
	}
	if len(schedule) != m.g.M() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrScheduleLength, len(schedule), m.g.M())
	}
	sets := make([]*core.EdgeBit, days)
	for d := range sets {
		sets[d] = core.NewEdgeBit()
	}
	for e, d := range schedule {
		if d < 1 || d > days {
			return nil, fmt.Errorf("%w: edge %d day %d not in [1,%d]", ErrDayOutOfRange, e, d, days)
		}
		sets[d-1].Add(e)
	}
	return sets, nil
}

// CalcScheduleCost evaluates a 1-based schedule: the per-day costs are
// averaged over days and rounded to the nearest integer; disconnected pairs
// are summed over days.
//
// Complexity: D × CalcCost.
func (m *Model) CalcScheduleCost(days int, schedule []int) (Cost, error) {
	sets, err := m.DaySets(days, schedule)
	if err != nil {
		return Cost{}, err
	}

	var total int64
	var disc int
	for _, set := range sets {
		c := m.CalcCost(set)
		total += c.Value
		disc += c.Disconnected
	}
	return Cost{
		Value:        int64(math.Round(float64(total) / float64(days))),
		Disconnected: disc,
	}, nil
}

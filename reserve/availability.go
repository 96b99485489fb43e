package reserve

import (
	"fmt"
	"math"

	"github.com/katalvlaran/roadwork/bypass"
	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/spanning"
)

// Availability records on which days each edge may be closed.
// It is read-only once built.
type Availability struct {
	m     int
	avail []*core.EdgeBit // avail[d] = edges closable on day d
	count []int           // count[e] = |{d : e ∈ avail[d]}|
}

// NewAvailability wraps per-day sets over m edges. The sets are copied.
func NewAvailability(m int, sets []*core.EdgeBit) (*Availability, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no days", ErrShape)
	}
	a := &Availability{
		m:     m,
		avail: make([]*core.EdgeBit, len(sets)),
		count: make([]int, m),
	}
	for d, s := range sets {
		if s == nil {
			return nil, fmt.Errorf("%w: day %d is nil", ErrShape, d)
		}
		a.avail[d] = s.Clone()
		var err error
		a.avail[d].Each(func(e int) {
			if e >= m {
				err = fmt.Errorf("%w: edge %d on day %d, m=%d", ErrShape, e, d, m)
				return
			}
			a.count[e]++
		})
		if err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Full returns an availability where every edge of m may close on every day.
func Full(m *network.Model, days int) (*Availability, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	sets := make([]*core.EdgeBit, days)
	for d := range sets {
		sets[d] = core.NewEdgeBit()
		for e := 0; e < m.M(); e++ {
			sets[d].Add(e)
		}
	}
	return NewAvailability(m.M(), sets)
}

// DayCount returns D.
func (a *Availability) DayCount() int { return len(a.avail) }

// EdgeCount returns M.
func (a *Availability) EdgeCount() int { return a.m }

// Eligible reports whether e may close on day d.
func (a *Availability) Eligible(d, e int) bool { return a.avail[d].Has(e) }

// Day returns the closable edges of day d. Callers must not modify it.
func (a *Availability) Day(d int) *core.EdgeBit { return a.avail[d] }

// Count returns on how many days e may close.
func (a *Availability) Count(e int) int { return a.count[e] }

// Days returns the days on which e may close, ascending.
func (a *Availability) Days(e int) []int {
	out := make([]int, 0, a.count[e])
	for d, s := range a.avail {
		if s.Has(e) {
			out = append(out, d)
		}
	}
	return out
}

// CoverageCount returns how many edges are closable on exactly k days.
func (a *Availability) CoverageCount(k int) int {
	n := 0
	for _, c := range a.count {
		if c == k {
			n++
		}
	}
	return n
}

// DisconnectedDays returns how many days leave a protected set (the edges not
// closable that day) that fails to span g.
func (a *Availability) DisconnectedDays(g *core.Graph) int {
	n := 0
	for _, s := range a.avail {
		keep := core.NewEdgeBit()
		for e := 0; e < a.m; e++ {
			if !s.Has(e) {
				keep.Add(e)
			}
		}
		if !spanning.Spans(g, keep) {
			n++
		}
	}
	return n
}

// ScheduleRoom returns min_d |avail[d]| / ceil(M/D). A value below 1 means
// some day cannot reach an even share of the closures.
func (a *Availability) ScheduleRoom() float64 {
	if a.m == 0 {
		return math.Inf(1)
	}
	days := len(a.avail)
	share := float64((a.m + days - 1) / days)
	room := math.Inf(1)
	for _, s := range a.avail {
		room = math.Min(room, float64(s.Count())/share)
	}
	return room
}

// SingleDayConflicts places every edge closable on exactly one day on that
// day and returns the resulting bypass conflict count. Such edges have no
// choice, so their conflicts cannot be searched away.
func (a *Availability) SingleDayConflicts(src bypass.Source) (int, error) {
	tr, err := bypass.New(src, len(a.avail))
	if err != nil {
		return 0, err
	}
	for e, c := range a.count {
		if c != 1 {
			continue
		}
		for d, s := range a.avail {
			if s.Has(e) {
				if err = tr.Add(d, e); err != nil {
					return 0, err
				}
				break
			}
		}
	}
	return tr.InBypassEdgeCount(), nil
}

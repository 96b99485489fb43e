// Package bypass tracks, per day, which closed edges have their detour
// running through another edge closed the same day.
//
// For a day d with closed set C_d:
//
//	union[d]      = ∪_{e∈C_d} bypass(e)
//	blockers[e]   = C_d ∩ bypass(e)                  (e ∈ C_d)
//	dependents[p] = {e ∈ C_d : p ∈ bypass(e)}        (p ∈ C_d)
//
// An edge p with a non-empty dependents set is "in bypass": closing it on
// that day breaks the detour of at least one other closure. The count of such
// edges is a cheap proxy for bad days, used to break ties during schedule
// seeding and reported as a diagnostic.
package bypass

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors.
var (
	ErrBadDays   = errors.New("bypass: days must be positive")
	ErrDayRange  = errors.New("bypass: day out of range")
	ErrScheduled = errors.New("bypass: edge already closed on a day")
	ErrNotOnDay  = errors.New("bypass: edge not closed on that day")
	ErrNilSource = errors.New("bypass: nil bypass source")
)

// Unassigned is the day of an edge not closed on any day.
const Unassigned = -1

// Source is the read-only view of the model the tracker needs.
type Source interface {
	M() int
	Bypass(e int) *core.EdgeBit
}

// Tracker maintains the bypass conflict indexes for a set of days.
type Tracker struct {
	src        Source
	days       int
	day        []int
	dayEdges   []core.EdgeBit
	union      []core.EdgeBit
	blockers   []core.EdgeBit
	dependents []core.EdgeBit
}

// New returns an empty tracker for days days.
func New(src Source, days int) (*Tracker, error) {
	if src == nil {
		return nil, ErrNilSource
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	m := src.M()
	t := &Tracker{
		src:        src,
		days:       days,
		day:        make([]int, m),
		dayEdges:   make([]core.EdgeBit, days),
		union:      make([]core.EdgeBit, days),
		blockers:   make([]core.EdgeBit, m),
		dependents: make([]core.EdgeBit, m),
	}
	for e := range t.day {
		t.day[e] = Unassigned
	}
	return t, nil
}

// Days returns the number of days.
func (t *Tracker) Days() int { return t.days }

// Add closes e on day d.
//
// Complexity: O(|C_d|) bit probes plus O(M/64) for the union.
func (t *Tracker) Add(d, e int) error {
	if d < 0 || d >= t.days {
		return fmt.Errorf("%w: %d", ErrDayRange, d)
	}
	if t.day[e] != Unassigned {
		return fmt.Errorf("%w: edge %d on day %d", ErrScheduled, e, t.day[e])
	}

	closed := &t.dayEdges[d]
	// e lies in some detour of today: record who depends on it.
	if t.union[d].Has(e) {
		closed.Each(func(p int) {
			if t.src.Bypass(p).Has(e) {
				t.blockers[p].Add(e)
				t.dependents[e].Add(p)
			}
		})
	}

	by := t.src.Bypass(e)
	if closed.Intersects(by) {
		closed.Each(func(p int) {
			if by.Has(p) {
				t.blockers[e].Add(p)
				t.dependents[p].Add(e)
			}
		})
	}

	closed.Add(e)
	t.union[d].Union(by)
	t.day[e] = d
	return nil
}

// Del reopens e on day d. The day's union is rebuilt from the remaining
// closures.
//
// Complexity: O(|C_d|·M/64).
func (t *Tracker) Del(d, e int) error {
	if d < 0 || d >= t.days {
		return fmt.Errorf("%w: %d", ErrDayRange, d)
	}
	if t.day[e] != d {
		return fmt.Errorf("%w: edge %d day %d", ErrNotOnDay, e, d)
	}

	t.dayEdges[d].Remove(e)
	t.day[e] = Unassigned

	t.union[d].Clear()
	t.dayEdges[d].Each(func(p int) { t.union[d].Union(t.src.Bypass(p)) })

	t.blockers[e].Each(func(q int) { t.dependents[q].Remove(e) })
	t.blockers[e].Clear()
	t.dependents[e].Each(func(p int) { t.blockers[p].Remove(e) })
	t.dependents[e].Clear()
	return nil
}

// Move reopens e on its current day and closes it on to.
func (t *Tracker) Move(e, to int) error {
	if from := t.day[e]; from != Unassigned {
		if err := t.Del(from, e); err != nil {
			return err
		}
	}
	return t.Add(to, e)
}

// DayOf returns the day e is closed on, or Unassigned.
func (t *Tracker) DayOf(e int) int { return t.day[e] }

// DayCount returns |C_d|.
func (t *Tracker) DayCount(d int) int { return t.dayEdges[d].Count() }

// DayEdges returns C_d. Callers must not modify it.
func (t *Tracker) DayEdges(d int) *core.EdgeBit { return &t.dayEdges[d] }

// DayUnion returns the union of today's detours. Callers must not modify it.
func (t *Tracker) DayUnion(d int) *core.EdgeBit { return &t.union[d] }

// Blockers returns the closed same-day edges inside bypass(e).
func (t *Tracker) Blockers(e int) *core.EdgeBit { return &t.blockers[e] }

// Dependents returns the closed same-day edges whose bypass contains e.
func (t *Tracker) Dependents(e int) *core.EdgeBit { return &t.dependents[e] }

// InBypassEdgeCount returns how many closed edges lie on the detour of
// another edge closed the same day.
//
// Complexity: O(M).
func (t *Tracker) InBypassEdgeCount() int {
	n := 0
	for e := range t.dependents {
		if !t.dependents[e].Empty() {
			n++
		}
	}
	return n
}

// ConflictsIfAdded returns how many blocker links closing e on day d would
// create, without mutating the tracker.
func (t *Tracker) ConflictsIfAdded(d, e int) int {
	n := 0
	by := t.src.Bypass(e)
	t.dayEdges[d].Each(func(p int) {
		if p == e {
			return
		}
		if by.Has(p) {
			n++
		}
		if t.src.Bypass(p).Has(e) {
			n++
		}
	})
	return n
}

package scheduler

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/katalvlaran/roadwork/bypass"
	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/face"
	"github.com/katalvlaran/roadwork/logger"
	"github.com/katalvlaran/roadwork/metrics"
	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/reserve"
	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/spt"
)

// Searcher assigns every edge to a day. A Searcher runs once.
type Searcher struct {
	m        *network.Model
	g        *core.Graph
	avail    *reserve.Availability
	dc       *face.Decomposition
	days     int
	capacity int

	opts Options
	r    *rand.Rand
	log  logger.Logger
	rec  metrics.Recorder

	state State

	day     []int // day[e] or Unassigned
	count   []int // edges closed per day
	tracker *bypass.Tracker
	est     *spt.Estimator
	cur     int64 // est.Total() of day

	best     []int
	bestCost int64

	res Result
}

// New validates the inputs and returns a Searcher in state Uninitialized.
// dc may be nil, in which case edges are seeded and sampled without groups.
func New(m *network.Model, avail *reserve.Availability, dc *face.Decomposition,
	days, capacity int, opts ...Option) (*Searcher, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if avail == nil {
		return nil, ErrNilAvailability
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	if capacity < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}
	if days*capacity < m.M() {
		return nil, fmt.Errorf("%w: %d×%d < %d", ErrInfeasibleCapacity, days, capacity, m.M())
	}
	if avail.DayCount() != days || avail.EdgeCount() != m.M() {
		return nil, fmt.Errorf("%w: %d days × %d edges, want %d × %d",
			ErrAvailabilityShape, avail.DayCount(), avail.EdgeCount(), days, m.M())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.Rand == nil {
		o.Rand = rng.New(0)
	}
	if o.Logger == nil {
		o.Logger = logger.Nop{}
	}
	if o.Metrics == nil {
		o.Metrics = metrics.Nop{}
	}

	return &Searcher{
		m:        m,
		g:        m.Graph(),
		avail:    avail,
		dc:       dc,
		days:     days,
		capacity: capacity,
		opts:     o,
		r:        o.Rand,
		log:      o.Logger,
		rec:      o.Metrics,
		state:    Uninitialized,
	}, nil
}

// State returns the lifecycle stage.
func (s *Searcher) State() State { return s.state }

// Run initialises, searches until a budget or ctx ends the loop, and returns
// the best schedule found. Cancellation is not an error: the best schedule so
// far is returned with Stop set to StopCancelled.
func (s *Searcher) Run(ctx context.Context) (*Result, error) {
	if s.state != Uninitialized {
		return nil, ErrAlreadyRun
	}
	start := time.Now()

	s.state = Initializing
	if err := s.initialize(); err != nil {
		return nil, err
	}
	s.rec.Phase("initialize", time.Since(start))
	s.log.Debugw("initialized", map[string]any{
		"cost":    s.cur,
		"repairs": s.res.Repairs,
		"roots":   len(s.est.Roots()),
	})

	s.state = Searching
	searchStart := time.Now()
	s.search(ctx, start)
	s.rec.Phase("search", time.Since(searchStart))

	s.finalize()
	s.state = Finalized
	s.res.Elapsed = time.Since(start)
	s.log.Infof("search stopped (%s) after %d iterations: cost %d -> %d",
		s.res.Stop, s.res.Iterations, s.res.InitialCost, s.res.Cost)
	return &s.res, nil
}

// move reassigns e to day to, keeping count, tracker and day in step. The
// estimator is updated separately.
func (s *Searcher) move(e, to int) {
	if from := s.day[e]; from != Unassigned {
		s.count[from]--
	}
	if err := s.tracker.Move(e, to); err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariant, err))
	}
	s.day[e] = to
	s.count[to]++
}

// assign moves e to day to and applies the move to the estimator at once.
func (s *Searcher) assign(e, to int) {
	from := s.day[e]
	if from == to {
		return
	}
	if from != Unassigned {
		s.mustEst(s.est.Open(from, e))
	}
	s.mustEst(s.est.Close(to, e))
	s.move(e, to)
	s.cur = s.est.Total()
}

func (s *Searcher) mustEst(err error) {
	if err != nil {
		panic(fmt.Errorf("%w: estimator: %v", ErrInvariant, err))
	}
}

func (s *Searcher) full(d int) bool { return s.count[d] >= s.capacity }

func (s *Searcher) overloaded() int {
	n := 0
	for _, c := range s.count {
		if c > s.capacity {
			n++
		}
	}
	return n
}

func (s *Searcher) snapshotBest() {
	s.best = slices.Clone(s.day)
	s.bestCost = s.cur
}

// finalize restores the best schedule, force-assigns leftovers and converts
// to 1-based days.
func (s *Searcher) finalize() {
	if s.best == nil {
		s.snapshotBest()
	}
	final := slices.Clone(s.best)
	counts := make([]int, s.days)
	for _, d := range final {
		if d != Unassigned {
			counts[d]++
		}
	}
	for e, d := range final {
		if d != Unassigned {
			continue
		}
		to := s.leastLoaded(e, counts)
		final[e] = to
		counts[to]++
		s.log.Warnf("edge %d unassigned at finalize, forced to day %d", e, to+1)
	}

	tr, err := bypass.New(s.m, s.days)
	if err != nil {
		panic(fmt.Errorf("%w: %v", ErrInvariant, err))
	}
	s.res.Schedule = make([]int, len(final))
	for e, d := range final {
		s.res.Schedule[e] = d + 1
		if err = tr.Add(d, e); err != nil {
			panic(fmt.Errorf("%w: %v", ErrInvariant, err))
		}
	}
	s.res.Conflicts = tr.InBypassEdgeCount()
	s.res.Cost = s.bestCost
	for _, c := range counts {
		if c > s.capacity {
			s.res.Overloaded++
		}
	}
}

// leastLoaded returns the eligible day of e with the fewest edges, or the
// least loaded day overall when e is eligible nowhere.
func (s *Searcher) leastLoaded(e int, counts []int) int {
	best := -1
	for _, d := range s.avail.Days(e) {
		if best < 0 || counts[d] < counts[best] {
			best = d
		}
	}
	if best >= 0 {
		return best
	}
	best = 0
	for d := range counts {
		if counts[d] < counts[best] {
			best = d
		}
	}
	return best
}

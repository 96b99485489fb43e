// Package solver runs the whole pipeline on one instance: graph
// preparation, day reservation, face decomposition, schedule search and the
// final evaluation.
package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/roadwork/config"
	"github.com/katalvlaran/roadwork/face"
	"github.com/katalvlaran/roadwork/instance"
	"github.com/katalvlaran/roadwork/logger"
	"github.com/katalvlaran/roadwork/metrics"
	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/reserve"
	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/scheduler"
)

// ErrNilInstance indicates a nil instance or graph.
var ErrNilInstance = errors.New("solver: instance is nil")

// Solver holds the configuration and sinks shared by runs.
type Solver struct {
	cfg *config.Config
	log logger.Logger
	rec metrics.Recorder
}

// Option configures a Solver.
type Option func(*Solver)

// WithLogger sets the run logger. A *logger.ZerologLogger gets a run_id field
// per run.
func WithLogger(l logger.Logger) Option { return func(s *Solver) { s.log = l } }

func WithMetrics(r metrics.Recorder) Option { return func(s *Solver) { s.rec = r } }

// New returns a Solver; a nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) *Solver {
	if cfg == nil {
		cfg = config.Default()
	}
	s := &Solver{cfg: cfg, log: logger.Nop{}, rec: metrics.Nop{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Report is the outcome of one run.
type Report struct {
	RunID    string
	Schedule []int // 1-based day per edge

	// Cost is the exact evaluation of Schedule.
	Cost network.Cost

	Overloaded       int // days above capacity
	DisconnectedDays int // days whose open roads leave the city split
	Conflicts        int // bypass conflicts

	ForcedEdges int // edges the reservation could not leave closable
	Groups      int // face groups

	Search  *scheduler.Result
	Elapsed time.Duration
}

// Solve schedules inst. A ctx cancelled before the search aborts the run;
// cancelled during the search, the best schedule so far is still evaluated
// and returned.
func (s *Solver) Solve(ctx context.Context, inst *instance.Instance) (*Report, error) {
	if inst == nil || inst.Graph == nil {
		return nil, ErrNilInstance
	}
	start := time.Now()
	runID := uuid.NewString()
	log := s.log
	if zl, ok := log.(*logger.ZerologLogger); ok {
		log = zl.With("run_id", runID)
	}
	log.Infof("solving N=%d M=%d D=%d K=%d seed=%d",
		inst.Graph.N(), inst.Graph.M(), inst.Days, inst.Capacity, s.cfg.Seed)

	// 1) Static tables.
	t := time.Now()
	m, err := network.Prepare(inst.Graph)
	if err != nil {
		return nil, fmt.Errorf("prepare: %w", err)
	}
	s.rec.Phase("prepare", time.Since(t))

	// 2) Day reservation.
	t = time.Now()
	plan, err := reserve.Plan(ctx, m, inst.Days,
		rng.Derive(s.cfg.Seed, rng.StreamReserve), s.cfg.Reserve.Options()...)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}
	s.rec.Phase("reserve", time.Since(t))
	pinned, err := plan.Availability.SingleDayConflicts(m)
	if err != nil {
		return nil, fmt.Errorf("reserve: %w", err)
	}
	log.Debugw("reserved", map[string]any{
		"energy":           plan.Energy,
		"forced":           plan.Forced,
		"single_day_edges": plan.Availability.CoverageCount(1),
		"pinned_conflicts": pinned,
		"schedule_room":    plan.Availability.ScheduleRoom(),
	})

	// 3) Face groups.
	t = time.Now()
	dc, err := face.Decompose(m, inst.Days, s.cfg.Face.Options()...)
	if err != nil {
		return nil, fmt.Errorf("face: %w", err)
	}
	s.rec.Phase("face", time.Since(t))
	log.Debugw("decomposed", map[string]any{
		"faces":     len(dc.Faces()),
		"groups":    len(dc.Groups()),
		"uncovered": dc.Uncovered().Count(),
	})

	// 4) Search.
	opts := append(s.cfg.Search.Options(),
		scheduler.WithRand(rng.Derive(s.cfg.Seed, rng.StreamSearch)),
		scheduler.WithLogger(log),
		scheduler.WithMetrics(s.rec),
	)
	srch, err := scheduler.New(m, plan.Availability, dc, inst.Days, inst.Capacity, opts...)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	res, err := srch.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	// 5) Evaluation.
	t = time.Now()
	cost, err := m.CalcScheduleCost(inst.Days, res.Schedule)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	rep, err := scheduler.Verify(m, res.Schedule, inst.Days, inst.Capacity)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	s.rec.Phase("evaluate", time.Since(t))

	out := &Report{
		RunID:            runID,
		Schedule:         res.Schedule,
		Cost:             cost,
		Overloaded:       len(rep.Overloaded),
		DisconnectedDays: len(rep.Disconnected),
		Conflicts:        res.Conflicts,
		ForcedEdges:      plan.Forced,
		Groups:           len(dc.Groups()),
		Search:           res,
		Elapsed:          time.Since(start),
	}
	s.rec.Schedule(metrics.ScheduleStats{
		Cost:         cost.Value,
		Disconnected: cost.Disconnected,
		Overloaded:   out.Overloaded,
		Conflicts:    out.Conflicts,
	})
	if out.Overloaded > 0 || out.DisconnectedDays > 0 {
		log.Warnf("schedule violates hard rules: %d overloaded, %d disconnected days",
			out.Overloaded, out.DisconnectedDays)
	}
	log.Infof("cost %d (%d disconnected pairs, %d conflicts) in %s",
		cost.Value, cost.Disconnected, out.Conflicts, out.Elapsed.Round(time.Millisecond))
	return out, nil
}

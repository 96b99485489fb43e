package scheduler

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/katalvlaran/roadwork/logger"
	"github.com/katalvlaran/roadwork/metrics"
	"github.com/katalvlaran/roadwork/spt"
)

// Sentinel errors.
var (
	ErrNilModel           = errors.New("scheduler: model is nil")
	ErrNilAvailability    = errors.New("scheduler: availability is nil")
	ErrBadDays            = errors.New("scheduler: days must be positive")
	ErrBadCapacity        = errors.New("scheduler: capacity must be positive")
	ErrInfeasibleCapacity = errors.New("scheduler: days × capacity below edge count")
	ErrAvailabilityShape  = errors.New("scheduler: availability does not match model")
	ErrBadOptions         = errors.New("scheduler: invalid options")
	ErrNoBudget           = errors.New("scheduler: neither time limit nor iteration limit set")
	ErrAlreadyRun         = errors.New("scheduler: searcher already used")
	ErrInvariant          = errors.New("scheduler: invariant violated")
)

// Unassigned is the day of an edge not yet scheduled.
const Unassigned = -1

// State is the lifecycle stage of a Searcher.
type State int

const (
	Uninitialized State = iota
	Initializing
	Searching
	Finalized
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Initializing:
		return "Initializing"
	case Searching:
		return "Searching"
	case Finalized:
		return "Finalized"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Acceptance selects how the search treats a non-improving move.
type Acceptance int

const (
	// Greedy accepts strict improvements only.
	Greedy Acceptance = iota
	// Metropolis also accepts a worsening Δ with probability exp(−Δ/T).
	Metropolis
)

func (a Acceptance) String() string {
	switch a {
	case Greedy:
		return "greedy"
	case Metropolis:
		return "metropolis"
	}
	return fmt.Sprintf("Acceptance(%d)", int(a))
}

// ParseAcceptance maps "greedy" and "metropolis" to their Acceptance.
func ParseAcceptance(s string) (Acceptance, error) {
	switch s {
	case "greedy", "":
		return Greedy, nil
	case "metropolis":
		return Metropolis, nil
	}
	return Greedy, fmt.Errorf("%w: acceptance %q", ErrBadOptions, s)
}

// StopReason tells why the search loop ended.
type StopReason string

const (
	StopZeroCost   StopReason = "zero_cost"
	StopTimeLimit  StopReason = "time_limit"
	StopIterations StopReason = "iterations"
	StopCancelled  StopReason = "cancelled"
	StopNoMoves    StopReason = "no_moves"
)

// Defaults.
const (
	DefaultTimeLimit       = 5 * time.Second
	DefaultLocalityBias    = 0.75
	DefaultRampIterations  = 20000
	DefaultUniformEdgeProb = 0.05
	DefaultRepairRetries   = 64
	DefaultMaxTemp         = 50.0
	DefaultMinTemp         = 0.5
)

// Options configures a Searcher.
type Options struct {
	TimeLimit     time.Duration // 0 disables the wall-clock budget
	MaxIterations int           // 0 disables the iteration budget

	Acceptance Acceptance
	MaxTemp    float64 // Metropolis start temperature, per-pair cost units
	MinTemp    float64 // Metropolis end temperature

	LocalityBias    float64 // chance of targeting a day used by a neighbouring edge
	RampIterations  int     // iterations until edge sampling covers every group
	UniformEdgeProb float64 // chance of sampling any edge instead of a group edge
	RepairRetries   int     // capacity repair passes

	Estimator []spt.Option

	Rand      *rand.Rand
	Logger    logger.Logger
	Metrics   metrics.Recorder
	OnImprove func(iter int, cost int64)
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		TimeLimit:       DefaultTimeLimit,
		Acceptance:      Greedy,
		MaxTemp:         DefaultMaxTemp,
		MinTemp:         DefaultMinTemp,
		LocalityBias:    DefaultLocalityBias,
		RampIterations:  DefaultRampIterations,
		UniformEdgeProb: DefaultUniformEdgeProb,
		RepairRetries:   DefaultRepairRetries,
		Logger:          logger.Nop{},
		Metrics:         metrics.Nop{},
	}
}

// WithTimeLimit sets the wall-clock budget of the search; 0 disables it.
func WithTimeLimit(d time.Duration) Option { return func(o *Options) { o.TimeLimit = d } }

// WithMaxIterations sets the iteration budget of the search; 0 disables it.
func WithMaxIterations(n int) Option { return func(o *Options) { o.MaxIterations = n } }

// WithAcceptance selects how non-improving moves are treated.
func WithAcceptance(a Acceptance) Option { return func(o *Options) { o.Acceptance = a } }

// WithTemperature sets the Metropolis cooling range.
func WithTemperature(max, min float64) Option {
	return func(o *Options) {
		o.MaxTemp = max
		o.MinTemp = min
	}
}

// WithLocalityBias sets the chance, in [0, 1], of moving an edge to a day
// already used by a neighbouring edge.
func WithLocalityBias(p float64) Option { return func(o *Options) { o.LocalityBias = p } }

// WithRamp sets how fast edge sampling widens from the first groups to all
// groups, and how often it ignores groups altogether.
func WithRamp(iterations int, uniformProb float64) Option {
	return func(o *Options) {
		o.RampIterations = iterations
		o.UniformEdgeProb = uniformProb
	}
}

// WithRepairRetries bounds the capacity repair passes after seeding.
func WithRepairRetries(n int) Option { return func(o *Options) { o.RepairRetries = n } }

// WithEstimator passes options to the incremental distance estimator.
func WithEstimator(opts ...spt.Option) Option {
	return func(o *Options) { o.Estimator = append(o.Estimator, opts...) }
}

// WithRand sets the random source. A nil source falls back to rng.New(0).
func WithRand(r *rand.Rand) Option { return func(o *Options) { o.Rand = r } }

// WithLogger sets the logger for progress and repair messages.
func WithLogger(l logger.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithMetrics sets the recorder for iteration counters and phase timings.
func WithMetrics(r metrics.Recorder) Option { return func(o *Options) { o.Metrics = r } }

// WithOnImprove registers a hook called whenever the best cost drops.
func WithOnImprove(fn func(iter int, cost int64)) Option {
	return func(o *Options) { o.OnImprove = fn }
}

func (o Options) validate() error {
	switch {
	case o.TimeLimit < 0:
		return fmt.Errorf("%w: time limit %s", ErrBadOptions, o.TimeLimit)
	case o.MaxIterations < 0:
		return fmt.Errorf("%w: max iterations %d", ErrBadOptions, o.MaxIterations)
	case o.TimeLimit == 0 && o.MaxIterations == 0:
		return ErrNoBudget
	case o.Acceptance != Greedy && o.Acceptance != Metropolis:
		return fmt.Errorf("%w: %s", ErrBadOptions, o.Acceptance)
	case o.Acceptance == Metropolis && (o.MinTemp <= 0 || o.MaxTemp < o.MinTemp):
		return fmt.Errorf("%w: temperature %g..%g", ErrBadOptions, o.MaxTemp, o.MinTemp)
	case o.LocalityBias < 0 || o.LocalityBias > 1:
		return fmt.Errorf("%w: locality bias %g", ErrBadOptions, o.LocalityBias)
	case o.UniformEdgeProb < 0 || o.UniformEdgeProb > 1:
		return fmt.Errorf("%w: uniform edge probability %g", ErrBadOptions, o.UniformEdgeProb)
	case o.RampIterations < 0 || o.RepairRetries < 0:
		return fmt.Errorf("%w: negative ramp or retries", ErrBadOptions)
	}
	return nil
}

// Result is the outcome of Run.
type Result struct {
	// Schedule holds the 1-based day of every edge, in edge order.
	Schedule []int

	// Cost is the estimator total of Schedule: Σ over days and roots of the
	// distance-sum increase.
	Cost int64

	// InitialCost is the estimator total right after initialisation.
	InitialCost int64

	Iterations   int
	Accepted     int
	Improvements int
	Migrations   int // forced capacity migrations during the search
	Repairs      int // edges moved by the initial capacity repair

	// Overloaded counts days above capacity in Schedule.
	Overloaded int

	// Conflicts is the bypass conflict count of Schedule.
	Conflicts int

	Stop    StopReason
	Elapsed time.Duration
}

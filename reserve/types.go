package reserve

import (
	"errors"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors.
var (
	// ErrNilModel indicates a nil *network.Model.
	ErrNilModel = errors.New("reserve: model is nil")

	// ErrBadDays indicates a day count below one.
	ErrBadDays = errors.New("reserve: days must be positive")

	// ErrBadIterations indicates a negative iteration budget.
	ErrBadIterations = errors.New("reserve: iterations must be non-negative")

	// ErrBadTemperature indicates a non-positive or inverted temperature range.
	ErrBadTemperature = errors.New("reserve: temperature range invalid")

	// ErrBadProbability indicates SelectUncovered outside [0,1].
	ErrBadProbability = errors.New("reserve: probability outside [0,1]")

	// ErrShape indicates availability sets that do not match the day count.
	ErrShape = errors.New("reserve: availability shape mismatch")
)

// Default tuning.
const (
	DefaultIterations       = 500
	DefaultMaxTemp          = 2011.0
	DefaultMinTemp          = 298.0
	DefaultSelectUncovered  = 0.95
	DefaultCostUncovered    = 3000
	DefaultCostOnce         = 30
	DefaultCostTwice        = 5
	DefaultCostPerProtected = 1
)

// Options configures Plan.
type Options struct {
	Iterations      int     // annealing steps
	MaxTemp         float64 // temperature at step 0
	MinTemp         float64 // temperature at the last step
	SelectUncovered float64 // probability of targeting an edge protected on every day

	CostUncovered    int64 // energy of an edge closable on no day
	CostOnce         int64 // energy of an edge closable on exactly one day
	CostTwice        int64 // energy of an edge closable on exactly two days
	CostPerProtected int64 // energy per protected edge per day
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		Iterations:       DefaultIterations,
		MaxTemp:          DefaultMaxTemp,
		MinTemp:          DefaultMinTemp,
		SelectUncovered:  DefaultSelectUncovered,
		CostUncovered:    DefaultCostUncovered,
		CostOnce:         DefaultCostOnce,
		CostTwice:        DefaultCostTwice,
		CostPerProtected: DefaultCostPerProtected,
	}
}

// WithIterations sets the annealing budget.
func WithIterations(n int) Option {
	return func(o *Options) { o.Iterations = n }
}

// WithTemperature sets the linear cooling range.
func WithTemperature(max, min float64) Option {
	return func(o *Options) {
		o.MaxTemp = max
		o.MinTemp = min
	}
}

// WithSelectUncovered sets how often the move targets a never-closable edge.
func WithSelectUncovered(p float64) Option {
	return func(o *Options) { o.SelectUncovered = p }
}

// WithCosts overrides the energy weights.
func WithCosts(uncovered, once, twice, perProtected int64) Option {
	return func(o *Options) {
		o.CostUncovered = uncovered
		o.CostOnce = once
		o.CostTwice = twice
		o.CostPerProtected = perProtected
	}
}

func (o Options) validate() error {
	if o.Iterations < 0 {
		return ErrBadIterations
	}
	if o.MinTemp <= 0 || o.MaxTemp < o.MinTemp {
		return ErrBadTemperature
	}
	if o.SelectUncovered < 0 || o.SelectUncovered > 1 {
		return ErrBadProbability
	}
	return nil
}

// Result is the outcome of Plan.
type Result struct {
	// Availability is the inverted best protected state.
	Availability *Availability

	// Protected holds the best protected set of every day.
	Protected []*core.EdgeBit

	// Energy is the annealing energy of Protected.
	Energy int64

	// Iterations is the number of steps performed; it is below the budget
	// only when the context was cancelled.
	Iterations int

	// Accepted counts accepted moves.
	Accepted int

	// Forced counts edges made available on a random day after inversion.
	Forced int
}

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadwork/face"
	"github.com/katalvlaran/roadwork/reserve"
	"github.com/katalvlaran/roadwork/scheduler"
	"github.com/katalvlaran/roadwork/spt"
)

// LoggingConfig selects the log level and output format.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level"`
	// Format is "json" or "console".
	Format string `json:"format"`
}

// SetDefaults applies sane defaults.
func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "json"
	}
}

// Validate checks level and format.
func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Level)); err != nil {
		return fmt.Errorf("%w: logging.level %q", ErrInvalid, c.Level)
	}
	if c.Format != "json" && c.Format != "console" {
		return fmt.Errorf("%w: logging.format %q", ErrInvalid, c.Format)
	}
	return nil
}

// MetricsConfig names the Prometheus text file written after a run; empty
// disables it.
type MetricsConfig struct {
	File string `json:"file"`
}

// ReserveConfig tunes the day reservation annealer.
type ReserveConfig struct {
	Iterations int     `json:"iterations"`
	MaxTemp    float64 `json:"max_temp"`
	MinTemp    float64 `json:"min_temp"`
}

func (c *ReserveConfig) SetDefaults() {
	if c.Iterations == 0 {
		c.Iterations = reserve.DefaultIterations
	}
	if c.MaxTemp == 0 {
		c.MaxTemp = reserve.DefaultMaxTemp
	}
	if c.MinTemp == 0 {
		c.MinTemp = reserve.DefaultMinTemp
	}
}

func (c ReserveConfig) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w: reserve.iterations %d", ErrInvalid, c.Iterations)
	}
	if c.MinTemp <= 0 || c.MaxTemp < c.MinTemp {
		return fmt.Errorf("%w: reserve temperature %g..%g", ErrInvalid, c.MaxTemp, c.MinTemp)
	}
	return nil
}

// Options converts the section into reserve options.
func (c ReserveConfig) Options() []reserve.Option {
	return []reserve.Option{
		reserve.WithIterations(c.Iterations),
		reserve.WithTemperature(c.MaxTemp, c.MinTemp),
	}
}

// FaceConfig bounds face groups.
type FaceConfig struct {
	RectLimit int `json:"rect_limit"`
}

func (c *FaceConfig) SetDefaults() {
	if c.RectLimit == 0 {
		c.RectLimit = face.DefaultRectLimit
	}
}

func (c FaceConfig) Validate() error {
	if c.RectLimit < 0 {
		return fmt.Errorf("%w: face.rect_limit %d", ErrInvalid, c.RectLimit)
	}
	return nil
}

func (c FaceConfig) Options() []face.Option {
	return []face.Option{face.WithRectLimit(c.RectLimit)}
}

// SearchConfig tunes the schedule search. A zero TimeLimit selects the
// default; set MaxIterations for an iteration-bound run.
type SearchConfig struct {
	TimeLimit       time.Duration `json:"time_limit"`
	MaxIterations   int           `json:"max_iterations"`
	Acceptance      string        `json:"acceptance"`
	MaxTemp         float64       `json:"max_temp"`
	MinTemp         float64       `json:"min_temp"`
	LocalityBias    float64       `json:"locality_bias"`
	RampIterations  int           `json:"ramp_iterations"`
	UniformEdgeProb float64       `json:"uniform_edge_prob"`
	RepairRetries   int           `json:"repair_retries"`
	ExactRootLimit  int           `json:"exact_root_limit"`
}

func (c *SearchConfig) SetDefaults() {
	if c.TimeLimit == 0 {
		c.TimeLimit = scheduler.DefaultTimeLimit
	}
	if c.Acceptance == "" {
		c.Acceptance = scheduler.Greedy.String()
	}
	if c.MaxTemp == 0 {
		c.MaxTemp = scheduler.DefaultMaxTemp
	}
	if c.MinTemp == 0 {
		c.MinTemp = scheduler.DefaultMinTemp
	}
	if c.LocalityBias == 0 {
		c.LocalityBias = scheduler.DefaultLocalityBias
	}
	if c.RampIterations == 0 {
		c.RampIterations = scheduler.DefaultRampIterations
	}
	if c.UniformEdgeProb == 0 {
		c.UniformEdgeProb = scheduler.DefaultUniformEdgeProb
	}
	if c.RepairRetries == 0 {
		c.RepairRetries = scheduler.DefaultRepairRetries
	}
	if c.ExactRootLimit == 0 {
		c.ExactRootLimit = spt.DefaultExactRootLimit
	}
}

func (c SearchConfig) Validate() error {
	if _, err := scheduler.ParseAcceptance(c.Acceptance); err != nil {
		return fmt.Errorf("%w: search.acceptance %q", ErrInvalid, c.Acceptance)
	}
	switch {
	case c.TimeLimit < 0:
		return fmt.Errorf("%w: search.time_limit %s", ErrInvalid, c.TimeLimit)
	case c.MaxIterations < 0:
		return fmt.Errorf("%w: search.max_iterations %d", ErrInvalid, c.MaxIterations)
	case c.MinTemp <= 0 || c.MaxTemp < c.MinTemp:
		return fmt.Errorf("%w: search temperature %g..%g", ErrInvalid, c.MaxTemp, c.MinTemp)
	case c.LocalityBias < 0 || c.LocalityBias > 1:
		return fmt.Errorf("%w: search.locality_bias %g", ErrInvalid, c.LocalityBias)
	case c.UniformEdgeProb < 0 || c.UniformEdgeProb > 1:
		return fmt.Errorf("%w: search.uniform_edge_prob %g", ErrInvalid, c.UniformEdgeProb)
	case c.RampIterations < 0 || c.RepairRetries < 0 || c.ExactRootLimit < 0:
		return fmt.Errorf("%w: search counts must be non-negative", ErrInvalid)
	}
	return nil
}

// Options converts the section into scheduler options. Validate must have
// passed.
func (c SearchConfig) Options() []scheduler.Option {
	acc, _ := scheduler.ParseAcceptance(c.Acceptance)
	return []scheduler.Option{
		scheduler.WithTimeLimit(c.TimeLimit),
		scheduler.WithMaxIterations(c.MaxIterations),
		scheduler.WithAcceptance(acc),
		scheduler.WithTemperature(c.MaxTemp, c.MinTemp),
		scheduler.WithLocalityBias(c.LocalityBias),
		scheduler.WithRamp(c.RampIterations, c.UniformEdgeProb),
		scheduler.WithRepairRetries(c.RepairRetries),
		scheduler.WithEstimator(spt.WithExactRootLimit(c.ExactRootLimit)),
	}
}

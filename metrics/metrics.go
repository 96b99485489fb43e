// Package metrics exports solver diagnostics. The search loop and the
// pipeline report through the Recorder interface; Prom backs it with
// Prometheus collectors that the CLI dumps to a node-exporter text file.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ScheduleStats summarises a finished schedule.
type ScheduleStats struct {
	Cost         int64
	Disconnected int
	Overloaded   int
	Conflicts    int
}

// Recorder receives solver events.
type Recorder interface {
	SearchIteration(accepted bool)
	BestCost(cost int64)
	Schedule(stats ScheduleStats)
	Phase(name string, elapsed time.Duration)
}

// Nop implements Recorder with no-op methods.
type Nop struct{}

func (Nop) SearchIteration(bool)        {}
func (Nop) BestCost(int64)              {}
func (Nop) Schedule(ScheduleStats)      {}
func (Nop) Phase(string, time.Duration) {}

// WriteTextfile writes every metric gathered by g to path in the text
// exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}

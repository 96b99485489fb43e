package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prom records solver events in Prometheus collectors.
type Prom struct {
	iterations   prometheus.Counter
	accepted     prometheus.Counter
	bestCost     prometheus.Gauge
	cost         prometheus.Gauge
	disconnected prometheus.Gauge
	overloaded   prometheus.Gauge
	conflicts    prometheus.Gauge
	phase        *prometheus.HistogramVec
}

// NewProm registers the solver collectors on reg. If reg is nil, the default
// registerer is used. Collectors already registered are reused.
func NewProm(reg prometheus.Registerer) (*Prom, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prom{
		iterations: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roadwork_search_iterations_total",
			Help: "Search iterations performed",
		}),
		accepted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "roadwork_search_accepted_total",
			Help: "Search moves accepted",
		}),
		bestCost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadwork_search_best_cost",
			Help: "Best estimated cost seen by the search",
		}),
		cost: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadwork_schedule_cost",
			Help: "Exact disruption cost of the final schedule",
		}),
		disconnected: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadwork_schedule_disconnected_pairs",
			Help: "Ordered node pairs left without a path, summed over days",
		}),
		overloaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadwork_schedule_overloaded_days",
			Help: "Days closing more edges than the capacity",
		}),
		conflicts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "roadwork_schedule_bypass_conflicts",
			Help: "Closed edges lying on the detour of another same-day closure",
		}),
		phase: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "roadwork_phase_seconds",
			Help:    "Wall time per pipeline phase",
			Buckets: prometheus.DefBuckets,
		}, []string{"phase"}),
	}

	var err error
	if p.iterations, err = register(reg, p.iterations); err != nil {
		return nil, err
	}
	if p.accepted, err = register(reg, p.accepted); err != nil {
		return nil, err
	}
	if p.bestCost, err = register(reg, p.bestCost); err != nil {
		return nil, err
	}
	if p.cost, err = register(reg, p.cost); err != nil {
		return nil, err
	}
	if p.disconnected, err = register(reg, p.disconnected); err != nil {
		return nil, err
	}
	if p.overloaded, err = register(reg, p.overloaded); err != nil {
		return nil, err
	}
	if p.conflicts, err = register(reg, p.conflicts); err != nil {
		return nil, err
	}
	if p.phase, err = register(reg, p.phase); err != nil {
		return nil, err
	}
	return p, nil
}

// register registers c, returning the existing collector instead when an
// identical one is already registered.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

func (p *Prom) SearchIteration(accepted bool) {
	p.iterations.Inc()
	if accepted {
		p.accepted.Inc()
	}
}

func (p *Prom) BestCost(cost int64) { p.bestCost.Set(float64(cost)) }

func (p *Prom) Schedule(s ScheduleStats) {
	p.cost.Set(float64(s.Cost))
	p.disconnected.Set(float64(s.Disconnected))
	p.overloaded.Set(float64(s.Overloaded))
	p.conflicts.Set(float64(s.Conflicts))
}

func (p *Prom) Phase(name string, elapsed time.Duration) {
	p.phase.WithLabelValues(name).Observe(elapsed.Seconds())
}

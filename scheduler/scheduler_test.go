package scheduler_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadwork/builder"
	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/face"
	"github.com/katalvlaran/roadwork/metrics"
	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/reserve"
	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/scheduler"
	"github.com/katalvlaran/roadwork/spt"
)

func prepare(t *testing.T, cons builder.Constructor, bopts ...builder.BuilderOption) *network.Model {
	t.Helper()
	g, err := builder.BuildGraph(bopts, cons)
	require.NoError(t, err)
	m, err := network.Prepare(g)
	require.NoError(t, err)
	return m
}

// pipeline runs reserve and face decomposition the way the solver does.
func pipeline(t *testing.T, m *network.Model, days int, seed int64) (*reserve.Result, *face.Decomposition) {
	t.Helper()
	plan, err := reserve.Plan(context.Background(), m, days, rng.Derive(seed, rng.StreamReserve))
	require.NoError(t, err)
	dc, err := face.Decompose(m, days)
	require.NoError(t, err)
	return plan, dc
}

// bruteForce returns the least Σ RawCost over every assignment of the edges
// to days.
func bruteForce(m *network.Model, days int) int64 {
	total := 1
	for e := 0; e < m.M(); e++ {
		total *= days
	}
	best := int64(-1)
	for code := 0; code < total; code++ {
		sets := make([]*core.EdgeBit, days)
		for d := range sets {
			sets[d] = core.NewEdgeBit()
		}
		c := code
		for e := 0; e < m.M(); e++ {
			sets[c%days].Add(e)
			c /= days
		}
		var sum int64
		for _, s := range sets {
			raw, _ := m.RawCost(s)
			sum += raw
		}
		if best < 0 || sum < best {
			best = sum
		}
	}
	return best
}

func TestSearcher_KiteFindsOptimum(t *testing.T) {
	m := prepare(t, builder.Kite())
	const days = 3
	avail, err := reserve.Full(m, days)
	require.NoError(t, err)
	dc, err := face.Decompose(m, days)
	require.NoError(t, err)

	s, err := scheduler.New(m, avail, dc, days, m.M(),
		scheduler.WithTimeLimit(0),
		scheduler.WithMaxIterations(50000),
		scheduler.WithAcceptance(scheduler.Metropolis),
		scheduler.WithTemperature(5000, 10),
		scheduler.WithRand(rng.New(7)),
	)
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, bruteForce(m, days), res.Cost)
	assert.LessOrEqual(t, res.Cost, res.InitialCost)

	cost, err := m.CalcScheduleCost(days, res.Schedule)
	require.NoError(t, err)
	assert.Zero(t, cost.Disconnected)
}

func TestSearcher_SingleDay(t *testing.T) {
	m := prepare(t, builder.Kite())
	avail, err := reserve.Full(m, 1)
	require.NoError(t, err)

	s, err := scheduler.New(m, avail, nil, 1, m.M(), scheduler.WithMaxIterations(10))
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	all := core.NewEdgeBit()
	for e := 0; e < m.M(); e++ {
		all.Add(e)
	}
	raw, _ := m.RawCost(all)
	assert.Equal(t, raw, res.Cost)
	assert.Equal(t, []int{1, 1, 1, 1, 1}, res.Schedule)
	assert.Equal(t, scheduler.StopNoMoves, res.Stop)
	assert.Zero(t, res.Iterations)
}

func TestSearcher_PathMergesCuts(t *testing.T) {
	// Every road of a path is a cut; the search gathers them on one day so
	// the other days stay whole, whatever days the reservation allowed.
	m := prepare(t, builder.Path(4))
	const days = 3
	plan, dc := pipeline(t, m, days, 1)

	s, err := scheduler.New(m, plan.Availability, dc, days, m.M(),
		scheduler.WithTimeLimit(0), scheduler.WithMaxIterations(2000))
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	for _, d := range res.Schedule {
		assert.Equal(t, res.Schedule[0], d)
	}
	rep, err := scheduler.Verify(m, res.Schedule, days, m.M())
	require.NoError(t, err)
	assert.Equal(t, []int{res.Schedule[0]}, rep.Disconnected)
	assert.LessOrEqual(t, res.Cost, res.InitialCost)
	assert.Equal(t, scheduler.StopIterations, res.Stop)
}

func TestSearcher_Grid(t *testing.T) {
	m := prepare(t, builder.CityGrid(5, 5), builder.WithSeed(3), builder.WithUniformWeight(1, 9))
	const days = 4
	capacity := (m.M()+days-1)/days + 2
	plan, dc := pipeline(t, m, days, 9)

	var improved []int64
	rec := &countingRecorder{}
	s, err := scheduler.New(m, plan.Availability, dc, days, capacity,
		scheduler.WithTimeLimit(0),
		scheduler.WithMaxIterations(3000),
		scheduler.WithRand(rng.Derive(9, rng.StreamSearch)),
		scheduler.WithMetrics(rec),
		scheduler.WithOnImprove(func(_ int, cost int64) { improved = append(improved, cost) }),
	)
	require.NoError(t, err)
	assert.Equal(t, scheduler.Uninitialized, s.State())

	res, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, scheduler.Finalized, s.State())
	assert.Contains(t, []scheduler.StopReason{scheduler.StopIterations, scheduler.StopZeroCost}, res.Stop)

	rep, err := scheduler.Verify(m, res.Schedule, days, capacity)
	require.NoError(t, err)
	assert.Empty(t, rep.Overloaded)
	assert.Empty(t, rep.Disconnected)

	// Greedy never worsens; improvements arrive in decreasing order.
	assert.LessOrEqual(t, res.Cost, res.InitialCost)
	for i := 1; i < len(improved); i++ {
		assert.Less(t, improved[i], improved[i-1])
	}
	assert.Equal(t, res.Improvements, len(improved))
	assert.Equal(t, res.Iterations, rec.iterations)
	assert.Equal(t, res.Accepted+res.Migrations, rec.accepted)
	assert.Contains(t, rec.phases, "initialize")
	assert.Contains(t, rec.phases, "search")

	// The reported cost is the estimator total of the returned schedule.
	est, err := spt.New(m, days)
	require.NoError(t, err)
	for e, d := range res.Schedule {
		require.NoError(t, est.Close(d-1, e))
	}
	assert.Equal(t, est.Total(), res.Cost)
}

func TestSearcher_Deterministic(t *testing.T) {
	m := prepare(t, builder.CityGrid(4, 5), builder.WithSeed(2), builder.WithDiagonals(0.3))
	const days, capacity = 3, 20
	plan, dc := pipeline(t, m, days, 5)

	run := func() *scheduler.Result {
		s, err := scheduler.New(m, plan.Availability, dc, days, capacity,
			scheduler.WithTimeLimit(0),
			scheduler.WithMaxIterations(1500),
			scheduler.WithAcceptance(scheduler.Metropolis),
			scheduler.WithRand(rng.New(77)))
		require.NoError(t, err)
		res, err := s.Run(context.Background())
		require.NoError(t, err)
		return res
	}
	a, b := run(), run()
	assert.Equal(t, a.Schedule, b.Schedule)
	assert.Equal(t, a.Cost, b.Cost)
	assert.Equal(t, a.Accepted, b.Accepted)
}

func TestSearcher_Cancelled(t *testing.T) {
	m := prepare(t, builder.CityGrid(4, 4))
	plan, dc := pipeline(t, m, 3, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s, err := scheduler.New(m, plan.Availability, dc, 3, m.M(), scheduler.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	res, err := s.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, scheduler.StopCancelled, res.Stop)
	assert.Zero(t, res.Iterations)
	assert.Len(t, res.Schedule, m.M())
	assert.Equal(t, res.InitialCost, res.Cost)

	_, err = s.Run(context.Background())
	assert.ErrorIs(t, err, scheduler.ErrAlreadyRun)
}

func TestSearcher_RepairsTightCapacity(t *testing.T) {
	m := prepare(t, builder.CityGrid(4, 4), builder.WithSeed(6))
	const days = 4
	capacity := (m.M() + days - 1) / days
	plan, dc := pipeline(t, m, days, 6)

	s, err := scheduler.New(m, plan.Availability, dc, days, capacity,
		scheduler.WithTimeLimit(0), scheduler.WithMaxIterations(2000))
	require.NoError(t, err)
	res, err := s.Run(context.Background())
	require.NoError(t, err)

	rep, err := scheduler.Verify(m, res.Schedule, days, capacity)
	require.NoError(t, err)
	assert.Empty(t, rep.Overloaded)
	assert.Zero(t, res.Overloaded)
}

func TestSearcher_ForcedEdgesDoNotIsolate(t *testing.T) {
	// Jittered cities with diagonals leave some roads never closable; the
	// reservation pins each on a random day, and two of them at a degree-2
	// corner can cut it off until the search moves one away.
	for _, seed := range []int64{3, 6, 7} {
		m := prepare(t, builder.CityGrid(8, 8), builder.WithSeed(seed), builder.WithJitter(15),
			builder.WithDiagonals(0.2), builder.WithUniformWeight(1, 100))
		const days = 3
		capacity := (m.M()+days-1)/days + 1
		plan, dc := pipeline(t, m, days, seed)

		s, err := scheduler.New(m, plan.Availability, dc, days, capacity,
			scheduler.WithTimeLimit(0),
			scheduler.WithMaxIterations(3000),
			scheduler.WithRand(rng.Derive(seed, rng.StreamSearch)))
		require.NoError(t, err)
		res, err := s.Run(context.Background())
		require.NoError(t, err)

		rep, err := scheduler.Verify(m, res.Schedule, days, capacity)
		require.NoError(t, err)
		assert.Empty(t, rep.Overloaded, "seed %d", seed)
		assert.Empty(t, rep.Disconnected, "seed %d: forced %d", seed, plan.Forced)
	}
}

func TestNew_Validation(t *testing.T) {
	m := prepare(t, builder.Kite())
	avail, err := reserve.Full(m, 3)
	require.NoError(t, err)

	_, err = scheduler.New(nil, avail, nil, 3, 2)
	assert.ErrorIs(t, err, scheduler.ErrNilModel)
	_, err = scheduler.New(m, nil, nil, 3, 2)
	assert.ErrorIs(t, err, scheduler.ErrNilAvailability)
	_, err = scheduler.New(m, avail, nil, 0, 2)
	assert.ErrorIs(t, err, scheduler.ErrBadDays)
	_, err = scheduler.New(m, avail, nil, 3, 0)
	assert.ErrorIs(t, err, scheduler.ErrBadCapacity)
	_, err = scheduler.New(m, avail, nil, 2, 2)
	assert.ErrorIs(t, err, scheduler.ErrInfeasibleCapacity)
	_, err = scheduler.New(m, avail, nil, 4, 2)
	assert.ErrorIs(t, err, scheduler.ErrAvailabilityShape)
	_, err = scheduler.New(m, avail, nil, 3, 2, scheduler.WithTimeLimit(0))
	assert.ErrorIs(t, err, scheduler.ErrNoBudget)
	_, err = scheduler.New(m, avail, nil, 3, 2, scheduler.WithLocalityBias(1.5))
	assert.ErrorIs(t, err, scheduler.ErrBadOptions)
	_, err = scheduler.New(m, avail, nil, 3, 2,
		scheduler.WithAcceptance(scheduler.Metropolis), scheduler.WithTemperature(1, 2))
	assert.ErrorIs(t, err, scheduler.ErrBadOptions)
}

func TestVerify(t *testing.T) {
	m := prepare(t, builder.Kite())

	// Day 1 closes every road at node 1.
	rep, err := scheduler.Verify(m, []int{1, 1, 1, 2, 2}, 2, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 2}, rep.Counts)
	assert.Equal(t, []int{1}, rep.Overloaded)
	assert.Equal(t, []int{1}, rep.Disconnected)
	assert.Equal(t, []int{2, 1}, rep.Components)
	assert.False(t, rep.OK())

	rep, err = scheduler.Verify(m, []int{1, 2, 3, 2, 1}, 3, 2)
	require.NoError(t, err)
	assert.True(t, rep.OK())

	_, err = scheduler.Verify(m, []int{1, 2}, 2, 3)
	assert.ErrorIs(t, err, network.ErrScheduleLength)
	_, err = scheduler.Verify(m, []int{1, 2, 3, 1, 1}, 2, 3)
	assert.ErrorIs(t, err, network.ErrDayOutOfRange)
}

func TestStateAndAcceptanceStrings(t *testing.T) {
	assert.Equal(t, "Searching", scheduler.Searching.String())
	assert.Equal(t, "State(9)", scheduler.State(9).String())
	assert.Equal(t, "metropolis", scheduler.Metropolis.String())

	a, err := scheduler.ParseAcceptance("metropolis")
	require.NoError(t, err)
	assert.Equal(t, scheduler.Metropolis, a)
	a, err = scheduler.ParseAcceptance("")
	require.NoError(t, err)
	assert.Equal(t, scheduler.Greedy, a)
	_, err = scheduler.ParseAcceptance("tabu")
	assert.ErrorIs(t, err, scheduler.ErrBadOptions)
}

type countingRecorder struct {
	metrics.Nop
	iterations, accepted int
	phases               []string
}

func (c *countingRecorder) SearchIteration(accepted bool) {
	c.iterations++
	if accepted {
		c.accepted++
	}
}

func (c *countingRecorder) Phase(name string, _ time.Duration) { c.phases = append(c.phases, name) }

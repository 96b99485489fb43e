package reserve

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/network"
	"github.com/katalvlaran/roadwork/rng"
	"github.com/katalvlaran/roadwork/spanning"
)

// Plan anneals the protected sets and returns the resulting availability.
//
// Steps:
//  1. Validate inputs and options.
//  2. Seed each day with a random spanning tree.
//  3. Anneal for Options.Iterations steps, keeping the lowest-energy state.
//  4. Invert the best state and force-cover edges closable on no day.
//
// A cancelled context stops step 3 early; the best state so far is used.
//
// Complexity: O(D·M·α(N)) for seeding, O(I·(M + |bypass|)) for annealing.
func Plan(ctx context.Context, m *network.Model, days int, r *rand.Rand, opts ...Option) (*Result, error) {
	// 1) Validate.
	if m == nil {
		return nil, ErrNilModel
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rng.New(0)
	}

	// 2) Seed.
	p := &planner{m: m, days: days, opts: o, r: r}
	if err := p.seed(); err != nil {
		return nil, err
	}

	// 3) Anneal.
	p.anneal(ctx)

	// 4) Invert.
	sets, forced := p.invert()
	avail, err := NewAvailability(m.M(), sets)
	if err != nil {
		return nil, err
	}
	return &Result{
		Availability: avail,
		Protected:    p.best,
		Energy:       p.bestEnergy,
		Iterations:   p.steps,
		Accepted:     p.accepted,
		Forced:       forced,
	}, nil
}

type planner struct {
	m    *network.Model
	days int
	opts Options
	r    *rand.Rand

	protected []*core.EdgeBit
	open      []int // open[e] = days on which e is not protected
	energy    int64

	best       []*core.EdgeBit
	bestEnergy int64

	steps    int
	accepted int
}

func (p *planner) seed() error {
	g := p.m.Graph()
	p.protected = make([]*core.EdgeBit, p.days)
	p.open = make([]int, p.m.M())
	for e := range p.open {
		p.open[e] = p.days
	}
	for d := 0; d < p.days; d++ {
		tree, err := spanning.RandomTree(g, p.r, nil)
		// A disconnected road graph still yields a spanning forest.
		if err != nil && !errors.Is(err, spanning.ErrDisconnected) {
			return fmt.Errorf("reserve: seed day %d: %w", d, err)
		}
		p.protected[d] = tree
		tree.Each(func(e int) { p.open[e]-- })
	}
	p.energy = p.total()
	p.snapshot()
	return nil
}

// edgeEnergy maps the number of closable days of an edge to its energy.
func (p *planner) edgeEnergy(open int) int64 {
	switch open {
	case 0:
		return p.opts.CostUncovered
	case 1:
		return p.opts.CostOnce
	case 2:
		return p.opts.CostTwice
	}
	return 0
}

func (p *planner) total() int64 {
	var sum int64
	for _, a := range p.open {
		sum += p.edgeEnergy(a)
	}
	for _, s := range p.protected {
		sum += p.opts.CostPerProtected * int64(s.Count())
	}
	return sum
}

func (p *planner) snapshot() {
	p.best = make([]*core.EdgeBit, p.days)
	for d, s := range p.protected {
		p.best[d] = s.Clone()
	}
	p.bestEnergy = p.energy
}

func (p *planner) anneal(ctx context.Context) {
	iters := p.opts.Iterations
	for it := 0; it < iters; it++ {
		if ctx.Err() != nil {
			return
		}
		p.steps++

		temp := p.opts.MaxTemp
		if iters > 1 {
			temp += (p.opts.MinTemp - p.opts.MaxTemp) * float64(it) / float64(iters-1)
		}

		d, e, ok := p.propose()
		if !ok {
			continue
		}
		added := p.m.Bypass(e).Clone()
		added.Subtract(p.protected[d])

		delta := p.moveDelta(e, added)
		// Metropolis: Δ = cur − trans, accepted outright when not worse.
		if delta > 0 && p.r.Float64() >= math.Exp(float64(-delta)/temp) {
			continue
		}

		p.protected[d].Remove(e)
		p.protected[d].Union(added)
		p.open[e]++
		added.Each(func(a int) { p.open[a]-- })
		p.energy += delta
		p.accepted++

		if p.energy < p.bestEnergy {
			p.snapshot()
		}
	}
}

// propose picks a day and a protected, non-bridge edge of that day.
func (p *planner) propose() (day, edge int, ok bool) {
	d := p.r.Intn(p.days)
	e := -1
	if rng.Chance(p.r, p.opts.SelectUncovered) {
		var never []int
		for i, a := range p.open {
			if a == 0 {
				never = append(never, i)
			}
		}
		if len(never) > 0 {
			e = rng.Pick(never, p.r)
		}
	}
	if e < 0 {
		prot := p.protected[d].Slice()
		if len(prot) == 0 {
			return 0, 0, false
		}
		e = rng.Pick(prot, p.r)
	}
	if p.m.IsBridge(e) {
		return 0, 0, false
	}
	return d, e, true
}

// moveDelta returns the energy change of unprotecting e and protecting added.
func (p *planner) moveDelta(e int, added *core.EdgeBit) int64 {
	delta := p.edgeEnergy(p.open[e]+1) - p.edgeEnergy(p.open[e])
	added.Each(func(a int) {
		delta += p.edgeEnergy(p.open[a]-1) - p.edgeEnergy(p.open[a])
	})
	delta += p.opts.CostPerProtected * int64(added.Count()-1)
	return delta
}

// invert turns the best protected sets into closable sets. Edges protected on
// every day become closable on one random day.
func (p *planner) invert() ([]*core.EdgeBit, int) {
	mEdges := p.m.M()
	sets := make([]*core.EdgeBit, p.days)
	for d := range sets {
		sets[d] = core.NewEdgeBit()
		for e := 0; e < mEdges; e++ {
			if !p.best[d].Has(e) {
				sets[d].Add(e)
			}
		}
	}
	forced := 0
	for e := 0; e < mEdges; e++ {
		covered := false
		for _, s := range sets {
			if s.Has(e) {
				covered = true
				break
			}
		}
		if !covered {
			sets[p.r.Intn(p.days)].Add(e)
			forced++
		}
	}
	return sets, forced
}

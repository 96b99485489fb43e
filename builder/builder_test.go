package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadwork/builder"
	"github.com/katalvlaran/roadwork/core"
)

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_Empty(t *testing.T) {
	_, err := builder.BuildGraph(nil)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCityGrid_Shape(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.CityGrid(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 12, g.N())
	// rows*(cols-1) + (rows-1)*cols
	assert.Equal(t, 3*3+2*4, g.M())
	assert.Equal(t, core.Coord{X: 300, Y: 200}, g.Coord(11))
	for _, e := range g.Edges() {
		assert.Equal(t, builder.DefaultEdgeWeight, e.Weight)
	}

	_, err = builder.BuildGraph(nil, builder.CityGrid(1, 1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

func TestCityGrid_DeterministicPerSeed(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithUniformWeight(1, 9),
		builder.WithJitter(30),
		builder.WithDiagonals(0.5),
	}
	a, err := builder.BuildGraph(opts, builder.CityGrid(5, 5))
	require.NoError(t, err)
	opts[0] = builder.WithSeed(7)
	b, err := builder.BuildGraph(opts, builder.CityGrid(5, 5))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for v := 0; v < a.N(); v++ {
		assert.Equal(t, a.Coord(v), b.Coord(v))
	}
	assert.Greater(t, a.M(), 40, "diagonals expected with p=0.5")

	// Effective jitter is capped at spacing/4.
	for v := 0; v < a.N(); v++ {
		c := a.Coord(v)
		col, row := v%5, v/5
		assert.InDelta(t, col*100+25, c.X, 25)
		assert.InDelta(t, row*100+25, c.Y, 25)
	}
	for _, e := range a.Edges() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestPathAndSpur(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Spur(2, 2))
	require.NoError(t, err)
	assert.Equal(t, 5, g.N())
	assert.Equal(t, 4, g.M())
	assert.Equal(t, 2, g.Edge(2).U)

	_, err = builder.BuildGraph(nil, builder.Path(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	_, err = builder.BuildGraph(nil, builder.Path(2), builder.Spur(9, 1))
	assert.ErrorIs(t, err, builder.ErrNodeOutOfRange)
}

func TestExplicitAndKite(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Kite())
	require.NoError(t, err)
	assert.Equal(t, 4, g.N())
	assert.Equal(t, 5, g.M())
	assert.Equal(t, core.Edge{Index: 2, U: 0, V: 3, Weight: 3}, g.Edge(2))

	_, err = builder.BuildGraph(nil, builder.Explicit(
		[]core.Coord{{}, {}},
		[]builder.EdgeSpec{{U: 0, V: 5, W: 1}},
	))
	assert.ErrorIs(t, err, builder.ErrNodeOutOfRange)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithSpacing(0) })
	assert.Panics(t, func() { builder.WithJitter(-1) })
	assert.Panics(t, func() { builder.WithDiagonals(1.5) })
	assert.Panics(t, func() { builder.ConstantWeightFn(0) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 2) })
}

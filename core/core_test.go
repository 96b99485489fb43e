package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadwork/core"
)

func TestNewGraph_Validation(t *testing.T) {
	_, err := core.NewGraph(0)
	require.ErrorIs(t, err, core.ErrBadNodeCount)

	g, err := core.NewGraph(3)
	require.NoError(t, err)
	assert.Equal(t, 3, g.N())
	assert.Equal(t, 0, g.M())
}

func TestAddEdge_Errors(t *testing.T) {
	g, err := core.NewGraph(2)
	require.NoError(t, err)

	_, err = g.AddEdge(0, 2, 1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.AddEdge(-1, 0, 1)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
	_, err = g.AddEdge(1, 1, 1)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
	_, err = g.AddEdge(0, 1, 0)
	assert.ErrorIs(t, err, core.ErrBadWeight)
	assert.ErrorIs(t, g.SetCoord(5, core.Coord{}), core.ErrNodeOutOfRange)
}

func TestAddEdge_AdjacencyAndIndex(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)

	e0, err := g.AddEdge(0, 1, 4)
	require.NoError(t, err)
	e1, err := g.AddEdge(1, 2, 7)
	require.NoError(t, err)
	e2, err := g.AddEdge(0, 1, 9) // parallel edge keeps its own index
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, []int{e0, e1, e2})
	assert.Equal(t, 3, g.M())
	assert.Len(t, g.Adj(1), 3)
	assert.Equal(t, core.Half{To: 1, Edge: 0}, g.Adj(0)[0])
	assert.Equal(t, 2, g.Edge(e1).Other(1))
	assert.Equal(t, 1, g.Edge(e1).Other(2))
	assert.Equal(t, int64(9), g.Edges()[2].Weight)
}

func TestBoundsAndNearest(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	pts := []core.Coord{{X: 0, Y: 0}, {X: 10, Y: -5}, {X: 3, Y: 8}, {X: 7, Y: 2}}
	for i, c := range pts {
		require.NoError(t, g.SetCoord(i, c))
	}

	lo, hi := g.Bounds()
	assert.Equal(t, core.Coord{X: 0, Y: -5}, lo)
	assert.Equal(t, core.Coord{X: 10, Y: 8}, hi)

	assert.Equal(t, 3, g.Nearest(core.Coord{X: 6, Y: 3}))
	assert.Equal(t, 0, g.Nearest(core.Coord{X: -100, Y: 0}))
}

func TestEdgeBit_SetAlgebra(t *testing.T) {
	a := core.NewEdgeBit(1, 3, 5)
	b := core.NewEdgeBit(3, 4)

	assert.True(t, a.Has(3))
	assert.False(t, a.Has(4))
	assert.Equal(t, 3, a.Count())
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(core.NewEdgeBit(0, 2)))

	u := a.Clone()
	u.Union(b)
	assert.Equal(t, []int{1, 3, 4, 5}, u.Slice())
	assert.Equal(t, []int{1, 3, 5}, a.Slice(), "clone must not alias")

	d := a.Clone()
	d.Subtract(b)
	assert.Equal(t, []int{1, 5}, d.Slice())

	i := a.Clone()
	i.Intersect(b)
	assert.Equal(t, []int{3}, i.Slice())

	a.Remove(1)
	a.Remove(99)
	assert.True(t, a.Equal(core.NewEdgeBit(3, 5)))

	a.Clear()
	assert.True(t, a.Empty())

	var zero core.EdgeBit
	assert.True(t, zero.Empty())
	zero.Add(7)
	assert.True(t, zero.Has(7))
}

func TestEdgeBit_EachOrder(t *testing.T) {
	b := core.NewEdgeBit(9, 2, 130, 64)
	var seen []int
	b.Each(func(e int) { seen = append(seen, e) })
	assert.Equal(t, []int{2, 9, 64, 130}, seen)
}

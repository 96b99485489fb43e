// Package dijkstra_test validates both shortest-path routines against each
// other and against gonum's reference implementation.
package dijkstra_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/dijkstra"
)

// triangle: 0-1 (1), 1-2 (2), 0-2 (5).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	for _, e := range [][3]int{{0, 1, 1}, {1, 2, 2}, {0, 2, 5}} {
		_, err = g.AddEdge(e[0], e[1], int64(e[2]))
		require.NoError(t, err)
	}
	return g
}

// randomGrid returns a rows×cols grid with seeded random weights in [1,20].
func randomGrid(t testing.TB, rows, cols int, seed int64) *core.Graph {
	t.Helper()
	r := rand.New(rand.NewSource(seed))
	g, err := core.NewGraph(rows * cols)
	require.NoError(t, err)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			v := y*cols + x
			require.NoError(t, g.SetCoord(v, core.Coord{X: x * 10, Y: y * 10}))
			if x+1 < cols {
				_, err = g.AddEdge(v, v+1, int64(1+r.Intn(20)))
				require.NoError(t, err)
			}
			if y+1 < rows {
				_, err = g.AddEdge(v, v+cols, int64(1+r.Intn(20)))
				require.NoError(t, err)
			}
		}
	}
	return g
}

func TestDijkstra_Validation(t *testing.T) {
	_, err := dijkstra.Dijkstra(nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := triangle(t)
	_, err = dijkstra.Dijkstra(g, dijkstra.Source(3))
	assert.ErrorIs(t, err, dijkstra.ErrSourceRange)
	_, err = dijkstra.Relax(g, dijkstra.Source(-1))
	assert.ErrorIs(t, err, dijkstra.ErrSourceRange)
	_, err = dijkstra.Dijkstra(g, dijkstra.WithTarget(7))
	assert.ErrorIs(t, err, dijkstra.ErrTargetRange)

	_, err = dijkstra.Dijkstra(g, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
	_, err = dijkstra.Relax(g, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

func TestDijkstra_Triangle(t *testing.T) {
	g := triangle(t)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)

	assert.Equal(t, []int64{0, 1, 3}, res.Dist)
	assert.Equal(t, []int{dijkstra.NoEdge, 0, 1}, res.ParentEdge)

	p, err := res.Path(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, p.Slice())

	sum, unreached := res.SumDist()
	assert.Equal(t, int64(4), sum)
	assert.Zero(t, unreached)
}

func TestDijkstra_ClosedMask(t *testing.T) {
	g := triangle(t)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithClosed(core.NewEdgeBit(1)))
	require.NoError(t, err)
	assert.Equal(t, []int64{0, 1, 5}, res.Dist)

	// Closing both edges at node 2 isolates it.
	res, err = dijkstra.Relax(g, dijkstra.Source(0), dijkstra.WithClosed(core.NewEdgeBit(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, core.DistInf, res.Dist[2])
	_, err = res.Path(g, 2)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachable)

	_, unreached := res.SumDist()
	assert.Equal(t, 1, unreached)
}

func TestDijkstra_TargetEarlyExit(t *testing.T) {
	g := randomGrid(t, 6, 6, 3)
	full, err := dijkstra.Dijkstra(g, dijkstra.Source(0))
	require.NoError(t, err)
	part, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithTarget(7))
	require.NoError(t, err)

	assert.Equal(t, full.Dist[7], part.Dist[7])
	p, err := part.Path(g, 7)
	require.NoError(t, err)

	var w int64
	p.Each(func(e int) { w += g.Edge(e).Weight })
	assert.Equal(t, full.Dist[7], w)
}

func TestDijkstra_MaxDistance(t *testing.T) {
	g := triangle(t)
	res, err := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithMaxDistance(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Dist[1])
	assert.Equal(t, core.DistInf, res.Dist[2])
}

// TestRelax_MatchesGonum cross-checks both routines with gonum/graph/path.
func TestRelax_MatchesGonum(t *testing.T) {
	g := randomGrid(t, 7, 9, 42)

	ref := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for v := 0; v < g.N(); v++ {
		ref.AddNode(simple.Node(v))
	}
	for _, e := range g.Edges() {
		ref.SetWeightedEdge(ref.NewWeightedEdge(simple.Node(e.U), simple.Node(e.V), float64(e.Weight)))
	}

	for _, src := range []int{0, 17, 62} {
		want := path.DijkstraFrom(simple.Node(src), ref)

		hp, err := dijkstra.Dijkstra(g, dijkstra.Source(src))
		require.NoError(t, err)
		fifo, err := dijkstra.Relax(g, dijkstra.Source(src))
		require.NoError(t, err)

		for v := 0; v < g.N(); v++ {
			assert.Equal(t, int64(want.WeightTo(int64(v))), hp.Dist[v], "heap src=%d v=%d", src, v)
			assert.Equal(t, hp.Dist[v], fifo.Dist[v], "fifo src=%d v=%d", src, v)
		}
	}
}

func TestResult_TreeAndOrder(t *testing.T) {
	g := randomGrid(t, 5, 5, 9)
	res, err := dijkstra.Relax(g, dijkstra.Source(12))
	require.NoError(t, err)

	tree := res.TreeEdges()
	assert.Equal(t, g.N()-1, tree.Count())

	order := res.Order()
	require.Len(t, order, g.N())
	assert.Equal(t, 12, order[0])
	pos := make([]int, g.N())
	for i, v := range order {
		pos[v] = i
	}
	for v, e := range res.ParentEdge {
		if e == dijkstra.NoEdge {
			continue
		}
		parent := g.Edge(e).Other(v)
		assert.Less(t, pos[parent], pos[v])
		assert.Equal(t, res.Dist[parent]+g.Edge(e).Weight, res.Dist[v])
	}
}

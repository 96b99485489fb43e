package face

import (
	"cmp"
	"math"
	"slices"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/network"
)

// A half-edge id is 2·e for U→V and 2·e+1 for V→U, so h^1 is the twin.

func halfFrom(g *core.Graph, h int) int {
	e := g.Edge(h >> 1)
	if h&1 == 0 {
		return e.U
	}
	return e.V
}

func halfTo(g *core.Graph, h int) int {
	return g.Edge(h >> 1).Other(halfFrom(g, h))
}

func vec(c core.Coord) r2.Vec { return r2.Vec{X: float64(c.X), Y: float64(c.Y)} }

// rotation holds, per node, its outgoing half-edges in counter-clockwise
// order, and for every half-edge its slot in that order.
type rotation struct {
	around [][]int
	slot   []int
}

func buildRotation(g *core.Graph) rotation {
	rot := rotation{
		around: make([][]int, g.N()),
		slot:   make([]int, 2*g.M()),
	}
	for v := 0; v < g.N(); v++ {
		origin := vec(g.Coord(v))
		type ray struct {
			half  int
			angle float64
		}
		rays := make([]ray, 0, len(g.Adj(v)))
		for _, h := range g.Adj(v) {
			id := 2 * h.Edge
			if g.Edge(h.Edge).U != v {
				id++
			}
			d := r2.Sub(vec(g.Coord(h.To)), origin)
			rays = append(rays, ray{half: id, angle: math.Atan2(d.Y, d.X)})
		}
		slices.SortFunc(rays, func(a, b ray) int {
			if c := cmp.Compare(a.angle, b.angle); c != 0 {
				return c
			}
			return cmp.Compare(a.half, b.half)
		})
		rot.around[v] = make([]int, len(rays))
		for i, r := range rays {
			rot.around[v][i] = r.half
			rot.slot[r.half] = i
		}
	}
	return rot
}

// next returns the half-edge following h on the face to its left.
func (rot rotation) next(g *core.Graph, h int) int {
	v := halfTo(g, h)
	ring := rot.around[v]
	i := rot.slot[h^1] - 1
	if i < 0 {
		i = len(ring) - 1
	}
	return ring[i]
}

// extractFaces returns every bounded face of m's embedding.
//
// Complexity: O(M log Δ) for the rotation system plus O(M) for the walks.
func extractFaces(m *network.Model) []Face {
	g := m.Graph()
	rot := buildRotation(g)
	seen := make([]bool, 2*g.M())
	var faces []Face

	for start := range seen {
		if seen[start] {
			continue
		}
		var nodes, edges []int
		var area2 float64
		h := start
		for !seen[h] {
			seen[h] = true
			u := halfFrom(g, h)
			nodes = append(nodes, u)
			edges = append(edges, h>>1)
			area2 += r2.Cross(vec(g.Coord(u)), vec(g.Coord(halfTo(g, h))))
			h = rot.next(g, h)
		}

		edges = lo.Uniq(edges)
		if area2 <= 0 || len(edges) < 3 {
			continue
		}
		slices.SortFunc(edges, func(a, b int) int {
			if c := cmp.Compare(m.Betweenness(b), m.Betweenness(a)); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		faces = append(faces, Face{
			ID:    len(faces),
			Nodes: nodes,
			Edges: edges,
			Rect:  boundsOf(g, nodes),
		})
	}
	return faces
}

func boundsOf(g *core.Graph, nodes []int) Rect {
	c := g.Coord(nodes[0])
	r := Rect{Lo: c, Hi: c}
	for _, v := range nodes[1:] {
		c = g.Coord(v)
		r = r.Merge(Rect{Lo: c, Hi: c})
	}
	return r
}

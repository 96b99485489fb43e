package dijkstra

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/roadwork/core"
)

// Path returns the edges of the tree path from the source to v.
// The path of the source itself is empty.
//
// Complexity: O(path length).
func (r *Result) Path(g *core.Graph, v int) (*core.EdgeBit, error) {
	if v < 0 || v >= len(r.Dist) {
		return nil, fmt.Errorf("%w: %d", ErrTargetRange, v)
	}
	if r.Dist[v] >= core.DistInf {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, v, r.Source)
	}

	out := core.NewEdgeBit()
	for v != r.Source {
		e := r.ParentEdge[v]
		out.Add(e)
		v = g.Edge(e).Other(v)
	}
	return out, nil
}

// TreeEdges returns every parent edge of the shortest-path tree.
//
// Complexity: O(V).
func (r *Result) TreeEdges() *core.EdgeBit {
	out := core.NewEdgeBit()
	for _, e := range r.ParentEdge {
		if e != NoEdge {
			out.Add(e)
		}
	}
	return out
}

// Order returns the reached nodes sorted by non-decreasing distance, source
// first. Every node appears after its tree parent, so a reverse scan visits
// children before parents without recursion.
//
// Complexity: O(V log V).
func (r *Result) Order() []int {
	out := make([]int, 0, len(r.Dist))
	for v, d := range r.Dist {
		if d < core.DistInf {
			out = append(out, v)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(r.Dist[a], r.Dist[b])
	})
	return out
}

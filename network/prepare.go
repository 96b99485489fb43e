package network

import (
	"fmt"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/dijkstra"
)

// Prepare computes every static table of g.
//
// Steps:
//  1. Validate g (non-nil, N >= 2).
//  2. For every source s: FIFO relaxation, sumDist[s], tree edge set.
//  3. In the same pass, aggregate subtree sizes in reverse distance order and
//     add each subtree size to the betweenness of the edge above it.
//  4. For every edge e=(u,v): Dijkstra u→v with e masked. No path ⇒ bridge.
//
// Complexity: O(N·(N+M)) relaxations for steps 2-3 on road graphs, plus
// O(M·(N+M) log N) for step 4. Space O(N·M/64) for the tree bitsets.
func Prepare(g *core.Graph) (*Model, error) {
	// 1) Validate.
	if g == nil {
		return nil, ErrNilGraph
	}
	n, mEdges := g.N(), g.M()
	if n < 2 {
		return nil, fmt.Errorf("%w: n=%d", ErrTooFewNodes, n)
	}

	m := &Model{
		g:           g,
		sumDist:     make([]int64, n),
		trees:       make([]*core.EdgeBit, n),
		betweenness: make([]int64, mEdges),
		bypass:      make([]*core.EdgeBit, mEdges),
		bridge:      make([]bool, mEdges),
	}

	// 2-3) Per-source trees and betweenness.
	size := make([]int64, n)
	for s := 0; s < n; s++ {
		res, err := dijkstra.Relax(g, dijkstra.Source(s))
		if err != nil {
			return nil, fmt.Errorf("network: source %d: %w", s, err)
		}
		m.sumDist[s] = sumWithInf(res.Dist)
		m.totalDist += m.sumDist[s]
		m.trees[s] = res.TreeEdges()

		order := res.Order()
		for _, v := range order {
			size[v] = 1
		}
		// Children precede parents when scanning backwards.
		for i := len(order) - 1; i > 0; i-- {
			v := order[i]
			e := res.ParentEdge[v]
			size[g.Edge(e).Other(v)] += size[v]
			m.betweenness[e] += size[v]
		}
	}

	// 4) Bypass paths.
	for _, e := range g.Edges() {
		res, err := dijkstra.Dijkstra(g,
			dijkstra.Source(e.U),
			dijkstra.WithTarget(e.V),
			dijkstra.WithClosed(core.NewEdgeBit(e.Index)),
		)
		if err != nil {
			return nil, fmt.Errorf("network: bypass of edge %d: %w", e.Index, err)
		}
		if res.Dist[e.V] >= core.DistInf {
			m.bridge[e.Index] = true
			m.bypass[e.Index] = core.NewEdgeBit()
			continue
		}
		m.bypass[e.Index], err = res.Path(g, e.V)
		if err != nil {
			return nil, fmt.Errorf("network: bypass of edge %d: %w", e.Index, err)
		}
	}

	return m, nil
}

// sumWithInf adds every distance, unreachable ones counting as core.DistInf.
func sumWithInf(dist []int64) int64 {
	var s int64
	for _, d := range dist {
		s += d
	}
	return s
}

package spanning

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/rng"
)

// ErrDisconnected indicates that the admissible edges cannot span every node.
var ErrDisconnected = errors.New("spanning: graph is disconnected")

// Kruskal scans edges in the given order and keeps each one that joins two
// components. The result is a spanning tree when the scanned edges connect
// the graph, ErrDisconnected (with the partial forest) otherwise.
//
// Steps:
//  1. Initialize a DSU over N nodes.
//  2. For each edge in order: if its endpoints are in different sets, union
//     them and keep the edge.
//  3. Stop once N-1 edges are kept.
//
// Complexity: O(len(order)·α(N)). Memory: O(N + M/64).
func Kruskal(g *core.Graph, order []int) (*core.EdgeBit, error) {
	n := g.N()
	dsu := NewDSU(n)
	tree := core.NewEdgeBit()
	kept := 0
	for _, e := range order {
		if kept == n-1 {
			break
		}
		ed := g.Edge(e)
		if dsu.Union(ed.U, ed.V) {
			tree.Add(e)
			kept++
		}
	}
	if kept < n-1 {
		return tree, ErrDisconnected
	}
	return tree, nil
}

// RandomTree returns a uniformly shuffled Kruskal tree over the edges not in
// skip (skip may be nil).
//
// Complexity: O(M·α(N)).
func RandomTree(g *core.Graph, r *rand.Rand, skip *core.EdgeBit) (*core.EdgeBit, error) {
	order := make([]int, 0, g.M())
	for e := 0; e < g.M(); e++ {
		if skip != nil && skip.Has(e) {
			continue
		}
		order = append(order, e)
	}
	rng.Shuffle(order, r)
	return Kruskal(g, order)
}

// Components returns the number of connected components of g with the
// closed edges removed (closed may be nil).
//
// Complexity: O(M·α(N)).
func Components(g *core.Graph, closed *core.EdgeBit) int {
	dsu := NewDSU(g.N())
	for _, e := range g.Edges() {
		if closed != nil && closed.Has(e.Index) {
			continue
		}
		dsu.Union(e.U, e.V)
	}
	return dsu.Sets()
}

// Connected reports whether g stays connected with the closed edges removed.
func Connected(g *core.Graph, closed *core.EdgeBit) bool {
	return Components(g, closed) == 1
}

// Spans reports whether the edges in keep alone connect every node.
func Spans(g *core.Graph, keep *core.EdgeBit) bool {
	dsu := NewDSU(g.N())
	keep.Each(func(e int) {
		ed := g.Edge(e)
		dsu.Union(ed.U, ed.V)
	})
	return dsu.Sets() == 1
}

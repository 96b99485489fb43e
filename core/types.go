package core

import (
	"errors"
	"fmt"
)

// DistInf is the distance assigned to nodes that cannot be reached.
const DistInf int64 = 1_000_000_000

// Sentinel errors for graph construction.
var (
	// ErrBadNodeCount indicates a graph with fewer than one node.
	ErrBadNodeCount = errors.New("core: node count must be positive")

	// ErrNodeOutOfRange indicates a node index outside [0, N).
	ErrNodeOutOfRange = errors.New("core: node index out of range")

	// ErrSelfLoop indicates an edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrBadWeight indicates a non-positive edge weight.
	ErrBadWeight = errors.New("core: edge weight must be positive")
)

// Coord is an integer planar coordinate.
type Coord struct {
	X int
	Y int
}

// Edge is an undirected weighted road segment.
type Edge struct {
	Index  int   // stable index 0..M-1
	U      int   // first endpoint
	V      int   // second endpoint
	Weight int64 // travel cost, > 0
}

// Other returns the endpoint opposite to n.
// The result is undefined when n is not an endpoint of e.
func (e Edge) Other(n int) int {
	if e.U == n {
		return e.V
	}
	return e.U
}

// Half is one adjacency entry: the neighbour reached and the edge used.
type Half struct {
	To   int
	Edge int
}

// Graph is an undirected multigraph with coordinates on its nodes.
type Graph struct {
	coords []Coord
	edges  []Edge
	adj    [][]Half
}

// NewGraph returns a graph with n isolated nodes at the origin.
func NewGraph(n int) (*Graph, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: n=%d", ErrBadNodeCount, n)
	}

	return &Graph{
		coords: make([]Coord, n),
		adj:    make([][]Half, n),
	}, nil
}

func (g *Graph) checkNode(v int) error {
	if v < 0 || v >= len(g.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrNodeOutOfRange, v, len(g.adj))
	}
	return nil
}

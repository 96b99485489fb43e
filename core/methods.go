package core

import "fmt"

// AddEdge appends the undirected edge {u,v} with weight w and returns its index.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v int, w int64) (int, error) {
	if err := g.checkNode(u); err != nil {
		return -1, err
	}
	if err := g.checkNode(v); err != nil {
		return -1, err
	}
	if u == v {
		return -1, fmt.Errorf("%w: node %d", ErrSelfLoop, u)
	}
	if w <= 0 {
		return -1, fmt.Errorf("%w: edge %d-%d weight=%d", ErrBadWeight, u, v, w)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{Index: idx, U: u, V: v, Weight: w})
	g.adj[u] = append(g.adj[u], Half{To: v, Edge: idx})
	g.adj[v] = append(g.adj[v], Half{To: u, Edge: idx})

	return idx, nil
}

// SetCoord places node v at c.
func (g *Graph) SetCoord(v int, c Coord) error {
	if err := g.checkNode(v); err != nil {
		return err
	}
	g.coords[v] = c
	return nil
}

// N returns the number of nodes.
func (g *Graph) N() int { return len(g.adj) }

// M returns the number of edges.
func (g *Graph) M() int { return len(g.edges) }

// Edge returns the edge with index i. It panics on an out-of-range index,
// like a slice access would.
func (g *Graph) Edge(i int) Edge { return g.edges[i] }

// Edges returns the edge slice in index order. Callers must not modify it.
func (g *Graph) Edges() []Edge { return g.edges }

// Adj returns the adjacency list of v. Callers must not modify it.
func (g *Graph) Adj(v int) []Half { return g.adj[v] }

// Coord returns the coordinate of v.
func (g *Graph) Coord(v int) Coord { return g.coords[v] }

// Bounds returns the corners of the axis-aligned bounding box of all nodes.
//
// Complexity: O(N).
func (g *Graph) Bounds() (lo, hi Coord) {
	lo, hi = g.coords[0], g.coords[0]
	for _, c := range g.coords[1:] {
		lo.X = min(lo.X, c.X)
		lo.Y = min(lo.Y, c.Y)
		hi.X = max(hi.X, c.X)
		hi.Y = max(hi.Y, c.Y)
	}
	return lo, hi
}

// Nearest returns the node closest to c by squared Euclidean distance.
// Ties resolve to the smaller index.
//
// Complexity: O(N).
func (g *Graph) Nearest(c Coord) int {
	best, bestD := 0, int64(-1)
	for v, p := range g.coords {
		dx, dy := int64(p.X-c.X), int64(p.Y-c.Y)
		d := dx*dx + dy*dy
		if bestD < 0 || d < bestD {
			best, bestD = v, d
		}
	}
	return best
}

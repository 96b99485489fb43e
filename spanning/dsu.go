// Package spanning provides the union-find structure and spanning-tree
// routines that roadwork uses to reason about per-day connectivity: random
// spanning trees for day reservation, ordered Kruskal for capacity repair
// and plain connectivity checks of a closure set.
package spanning

// DSU is a disjoint-set forest over 0..n-1 with path compression and
// union by size.
type DSU struct {
	parent []int
	size   []int
	sets   int
}

// NewDSU returns n singleton sets.
//
// Complexity: O(n).
func NewDSU(n int) *DSU {
	d := &DSU{parent: make([]int, n), size: make([]int, n), sets: n}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}
	return d
}

// Find returns the representative of x. Iterative, with path halving.
//
// Complexity: O(α(n)) amortized.
func (d *DSU) Find(x int) int {
	for d.parent[x] != x {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}
	return x
}

// Union merges the sets of a and b and reports whether they were disjoint.
func (d *DSU) Union(a, b int) bool {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return false
	}
	if d.size[ra] < d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[rb] = ra
	d.size[ra] += d.size[rb]
	d.sets--
	return true
}

// Same reports whether a and b share a set.
func (d *DSU) Same(a, b int) bool { return d.Find(a) == d.Find(b) }

// Size returns the size of the set holding x.
func (d *DSU) Size(x int) int { return d.size[d.Find(x)] }

// Sets returns the number of disjoint sets.
func (d *DSU) Sets() int { return d.sets }

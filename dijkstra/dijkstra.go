// Package dijkstra implements the single-source shortest-path routines used by
// roadwork: a heap-based Dijkstra with optional early exit, and a FIFO
// label-correcting relaxation used for bulk preprocessing.
//
// Complexity (Dijkstra):
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), O(E) worst case in the heap under lazy decrease-key.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadwork/core"
)

// Dijkstra computes shortest distances from Options.Source over g, skipping
// edges listed in Options.Closed.
//
// Steps:
//  1. Build and validate options.
//  2. Initialize dist = DistInf, parent = NoEdge; push the source.
//  3. Pop the nearest unsettled node; stop at Target or MaxDistance.
//  4. Relax every open incident edge, pushing improved neighbours.
//
// Complexity: O((V + E) log V) time, O(V + E) space.
func Dijkstra(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	n := g.N()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			Source:     cfg.Source,
			Dist:       make([]int64, n),
			ParentEdge: make([]int, n),
		},
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.res, nil
}

// buildOptions applies opts over the defaults and validates the result.
func buildOptions(g *core.Graph, opts []Option) (Options, error) {
	cfg := DefaultOptions(0)
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	if g == nil {
		return cfg, ErrNilGraph
	}
	if cfg.Source < 0 || cfg.Source >= g.N() {
		return cfg, fmt.Errorf("%w: %d", ErrSourceRange, cfg.Source)
	}
	if cfg.Target != NoTarget && (cfg.Target < 0 || cfg.Target >= g.N()) {
		return cfg, fmt.Errorf("%w: %d", ErrTargetRange, cfg.Target)
	}
	if cfg.MaxDistance < 0 {
		return cfg, fmt.Errorf("%w: %d", ErrBadMaxDistance, cfg.MaxDistance)
	}

	return cfg, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // read-only input
	options Options     // validated configuration
	res     *Result     // distances and parent edges being built
	visited []bool      // settled flags
	pq      nodePQ      // lazy min-heap
}

// init sets every distance to DistInf and pushes the source at 0.
func (r *runner) init() {
	for v := range r.res.Dist {
		r.res.Dist[v] = core.DistInf
		r.res.ParentEdge[v] = NoEdge
	}
	r.res.Dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process is the main loop: settle the nearest node and relax its edges.
func (r *runner) process() {
	var u int
	var d int64
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u, d = item.id, item.dist

		// Stale entry from lazy decrease-key.
		if r.visited[u] || d > r.res.Dist[u] {
			continue
		}
		if d > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		if u == r.options.Target {
			break
		}

		r.relax(u)
	}
}

// relax tries to improve every open neighbour of the settled node u.
func (r *runner) relax(u int) {
	closed := r.options.Closed
	var h core.Half
	var nd int64
	for _, h = range r.g.Adj(u) {
		if closed != nil && closed.Has(h.Edge) {
			continue
		}
		if r.visited[h.To] {
			continue
		}
		nd = r.res.Dist[u] + r.g.Edge(h.Edge).Weight
		if nd > r.options.MaxDistance || nd >= r.res.Dist[h.To] {
			continue
		}
		r.res.Dist[h.To] = nd
		r.res.ParentEdge[h.To] = h.Edge
		heap.Push(&r.pq, &nodeItem{id: h.To, dist: nd})
	}
}

// nodeItem is a (node, tentative distance) heap entry.
type nodeItem struct {
	id   int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by id for determinism.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x; called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last element; called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

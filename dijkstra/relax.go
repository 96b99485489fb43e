package dijkstra

import "github.com/katalvlaran/roadwork/core"

// Relax computes the same result as Dijkstra with a FIFO label-correcting
// queue instead of a heap. On sparse road graphs with small integer weights
// it touches each node only a few times and avoids heap traffic, which makes
// it the routine of choice for all-sources preprocessing.
//
// Target and MaxDistance are ignored; every reachable node is labelled.
//
// Steps:
//  1. dist = DistInf, dist[src] = 0, queue = [src].
//  2. Pop u; for each open edge (u,v) with dist[u]+w < dist[v], update v and
//     enqueue it unless it is already queued.
//  3. Repeat until the queue is empty.
//
// Complexity: O(V·E) worst case, near O(V + E) on road networks. Space O(V).
func Relax(g *core.Graph, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(g, opts)
	if err != nil {
		return nil, err
	}

	n := g.N()
	res := &Result{
		Source:     cfg.Source,
		Dist:       make([]int64, n),
		ParentEdge: make([]int, n),
	}
	for v := 0; v < n; v++ {
		res.Dist[v] = core.DistInf
		res.ParentEdge[v] = NoEdge
	}
	res.Dist[cfg.Source] = 0

	// Ring buffer of capacity n: a node is enqueued at most once at a time.
	queue := make([]int, n)
	inQueue := make([]bool, n)
	head, size := 0, 1
	queue[0] = cfg.Source
	inQueue[cfg.Source] = true

	closed := cfg.Closed
	var u int
	var h core.Half
	var nd int64
	for size > 0 {
		u = queue[head]
		head = (head + 1) % n
		size--
		inQueue[u] = false

		for _, h = range g.Adj(u) {
			if closed != nil && closed.Has(h.Edge) {
				continue
			}
			nd = res.Dist[u] + g.Edge(h.Edge).Weight
			if nd >= res.Dist[h.To] {
				continue
			}
			res.Dist[h.To] = nd
			res.ParentEdge[h.To] = h.Edge
			if !inQueue[h.To] {
				inQueue[h.To] = true
				queue[(head+size)%n] = h.To
				size++
			}
		}
	}

	return res, nil
}

package spt

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/dijkstra"
	"github.com/katalvlaran/roadwork/network"
)

// Tree is a shortest-path tree of one root that follows edge closures.
type Tree struct {
	g    *core.Graph
	root int

	dist       []int64
	parentEdge []int
	closed     *core.EdgeBit
	total      int64 // Σ dist, core.DistInf per unreachable node
	baseline   int64 // total over the open graph

	// subtree collection scratch
	mark  []uint32
	epoch uint32
	stack []int
	sub   []int
	pq    frontier

	j journal
}

// NewTree builds the tree of root over the open graph of m.
//
// Complexity: O((N + M) log N).
func NewTree(m *network.Model, root int) (*Tree, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if root < 0 || root >= m.N() {
		return nil, fmt.Errorf("%w: %d", ErrRootOutOfRange, root)
	}
	res, err := dijkstra.Dijkstra(m.Graph(), dijkstra.Source(root))
	if err != nil {
		return nil, err
	}

	n := m.N()
	t := &Tree{
		g:          m.Graph(),
		root:       root,
		dist:       res.Dist,
		parentEdge: res.ParentEdge,
		closed:     core.NewEdgeBit(),
		mark:       make([]uint32, n),
	}
	for _, d := range t.dist {
		t.total += d
	}
	t.baseline = t.total
	t.j.init(n)
	return t, nil
}

// Root returns the root node.
func (t *Tree) Root() int { return t.root }

// Dist returns the current distance to v.
func (t *Tree) Dist(v int) int64 { return t.dist[v] }

// ParentEdge returns the tree edge above v, or -1 for the root and
// unreachable nodes.
func (t *Tree) ParentEdge(v int) int { return t.parentEdge[v] }

// Closed reports whether e is closed in this tree.
func (t *Tree) Closed(e int) bool { return t.closed.Has(e) }

// TotalDist returns Σ_v dist(v), unreachable nodes counting core.DistInf.
func (t *Tree) TotalDist() int64 { return t.total }

// Delta returns TotalDist minus its value over the open graph.
func (t *Tree) Delta() int64 { return t.total - t.baseline }

// set assigns a node label, journaling the old one and keeping total.
func (t *Tree) set(v int, d int64, pe int) {
	t.j.saveNode(v, t.dist[v], t.parentEdge[v])
	t.total += d - t.dist[v]
	t.dist[v] = d
	t.parentEdge[v] = pe
}

func (t *Tree) toggle(e int) {
	t.j.saveEdge(e)
	if t.closed.Has(e) {
		t.closed.Remove(e)
	} else {
		t.closed.Add(e)
	}
}

// DelEdge closes e. If e carried part of the tree, the subtree below it is
// recomputed; nodes with no remaining path end at core.DistInf.
//
// Complexity: O(S·Δ + S log S) where S is the subtree size.
func (t *Tree) DelEdge(e int) {
	if t.closed.Has(e) {
		return
	}
	t.toggle(e)

	ed := t.g.Edge(e)
	child := -1
	switch e {
	case t.parentEdge[ed.U]:
		child = ed.U
	case t.parentEdge[ed.V]:
		child = ed.V
	}
	if child < 0 {
		return
	}

	// 1) Collect the subtree under child.
	t.epoch++
	t.mark[child] = t.epoch
	t.stack = append(t.stack[:0], child)
	t.sub = t.sub[:0]
	for len(t.stack) > 0 {
		x := t.stack[len(t.stack)-1]
		t.stack = t.stack[:len(t.stack)-1]
		t.sub = append(t.sub, x)
		for _, h := range t.g.Adj(x) {
			if t.parentEdge[h.To] == h.Edge && t.mark[h.To] != t.epoch {
				t.mark[h.To] = t.epoch
				t.stack = append(t.stack, h.To)
			}
		}
	}

	// 2) Invalidate it.
	for _, x := range t.sub {
		t.set(x, core.DistInf, noEdge)
	}

	// 3) Seed from open edges leaving the subtree.
	t.pq = t.pq[:0]
	for _, x := range t.sub {
		for _, h := range t.g.Adj(x) {
			if t.mark[h.To] == t.epoch || t.closed.Has(h.Edge) || t.dist[h.To] >= core.DistInf {
				continue
			}
			if nd := t.dist[h.To] + t.g.Edge(h.Edge).Weight; nd < t.dist[x] {
				t.set(x, nd, h.Edge)
			}
		}
		if t.dist[x] < core.DistInf {
			heap.Push(&t.pq, item{v: x, d: t.dist[x]})
		}
	}

	// 4) Settle.
	t.propagate()
}

// AddEdge reopens e and propagates any improvement through it.
//
// Complexity: O(A·Δ + A log A) where A is the number of improved nodes.
func (t *Tree) AddEdge(e int) {
	if !t.closed.Has(e) {
		return
	}
	t.toggle(e)

	ed := t.g.Edge(e)
	t.pq = t.pq[:0]
	t.relaxVia(ed.U, ed.V, e, ed.Weight)
	t.relaxVia(ed.V, ed.U, e, ed.Weight)
	t.propagate()
}

func (t *Tree) relaxVia(from, to, e int, w int64) {
	if t.dist[from] >= core.DistInf {
		return
	}
	if nd := t.dist[from] + w; nd < t.dist[to] {
		t.set(to, nd, e)
		heap.Push(&t.pq, item{v: to, d: nd})
	}
}

// propagate runs Dijkstra from the queued nodes over open edges.
func (t *Tree) propagate() {
	for t.pq.Len() > 0 {
		it := heap.Pop(&t.pq).(item)
		if it.d != t.dist[it.v] {
			continue
		}
		for _, h := range t.g.Adj(it.v) {
			if t.closed.Has(h.Edge) {
				continue
			}
			if nd := it.d + t.g.Edge(h.Edge).Weight; nd < t.dist[h.To] {
				t.set(h.To, nd, h.Edge)
				heap.Push(&t.pq, item{v: h.To, d: nd})
			}
		}
	}
}

// Begin starts journaling. A second Begin discards the previous journal.
func (t *Tree) Begin() { t.j.begin(t.total) }

// Commit keeps every change since Begin.
func (t *Tree) Commit() { t.j.stop() }

// Rollback restores the state at Begin. Without an open journal it does
// nothing.
func (t *Tree) Rollback() {
	if !t.j.active {
		return
	}
	for i := len(t.j.nodes) - 1; i >= 0; i-- {
		s := t.j.nodes[i]
		t.dist[s.v] = s.dist
		t.parentEdge[s.v] = s.pe
	}
	for i := len(t.j.edges) - 1; i >= 0; i-- {
		e := t.j.edges[i]
		if t.closed.Has(e) {
			t.closed.Remove(e)
		} else {
			t.closed.Add(e)
		}
	}
	t.total = t.j.total
	t.j.stop()
}

type item struct {
	v int
	d int64
}

// frontier is a min-heap on distance, ties by node id.
type frontier []item

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	if f[i].d != f[j].d {
		return f[i].d < f[j].d
	}
	return f[i].v < f[j].v
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x any) { *f = append(*f, x.(item)) }

func (f *frontier) Pop() any {
	old := *f
	it := old[len(old)-1]
	*f = old[:len(old)-1]
	return it
}

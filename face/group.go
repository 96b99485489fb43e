package face

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/network"
)

// Decomposition is the result of Decompose. It is read-only.
type Decomposition struct {
	faces     []Face
	groups    []Group
	edgeFaces [][]int // edgeFaces[e] = faces with e on their boundary
	groupOf   []int   // groupOf[e] = claiming group or noGroup
	uncovered *core.EdgeBit
}

// Faces returns every bounded face, indexed by Face.ID.
func (dc *Decomposition) Faces() []Face { return dc.faces }

// Groups returns the groups in creation order.
func (dc *Decomposition) Groups() []Group { return dc.groups }

// EdgeFaces returns the faces bordered by e (at most two for a planar
// embedding).
func (dc *Decomposition) EdgeFaces(e int) []int { return dc.edgeFaces[e] }

// Uncovered returns the edges no group claimed. Callers must not modify it.
func (dc *Decomposition) Uncovered() *core.EdgeBit { return dc.uncovered }

// Decompose extracts the faces of m and groups them for a schedule of days
// days.
//
// Complexity: O(M log Δ) for faces, O(G·F·L) for grouping where G is the
// group count, F the face count and L the longest face.
func Decompose(m *network.Model, days int, opts ...Option) (*Decomposition, error) {
	if m == nil {
		return nil, ErrNilModel
	}
	if days < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadDays, days)
	}
	o := Options{RectLimit: DefaultRectLimit}
	for _, opt := range opts {
		opt(&o)
	}
	if o.RectLimit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadRectLimit, o.RectLimit)
	}

	dc := &Decomposition{
		faces:     extractFaces(m),
		edgeFaces: make([][]int, m.M()),
		groupOf:   make([]int, m.M()),
	}
	for _, f := range dc.faces {
		for _, e := range f.Edges {
			dc.edgeFaces[e] = append(dc.edgeFaces[e], f.ID)
		}
	}
	for e := range dc.groupOf {
		dc.groupOf[e] = noGroup
	}

	gr := &grouper{
		m:        m,
		dc:       dc,
		days:     days,
		limit:    o.RectLimit,
		decided:  core.NewEdgeBit(),
		assigned: make([]bool, len(dc.faces)),
	}
	gr.run()

	dc.uncovered = core.NewEdgeBit()
	for e, g := range dc.groupOf {
		if g == noGroup {
			dc.uncovered.Add(e)
		}
	}
	return dc, nil
}

type grouper struct {
	m        *network.Model
	dc       *Decomposition
	days     int
	limit    int
	decided  *core.EdgeBit
	assigned []bool
}

// undecided returns f's edges not yet decided, in f's edge order.
func (gr *grouper) undecided(f int) []int {
	return lo.Filter(gr.dc.faces[f].Edges, func(e int, _ int) bool {
		return !gr.decided.Has(e)
	})
}

// top returns the betweenness of f's most central undecided edge, or -1.
func (gr *grouper) top(f int) int64 {
	for _, e := range gr.dc.faces[f].Edges {
		if !gr.decided.Has(e) {
			return gr.m.Betweenness(e)
		}
	}
	return -1
}

func (gr *grouper) run() {
	for {
		seed, ok := gr.pickSeed()
		if !ok {
			return
		}
		members := []int{seed}
		gr.assigned[seed] = true
		for _, f := range gr.neighbours(seed) {
			if gr.canGroup(append(slices.Clone(members), f)) {
				members = append(members, f)
				gr.assigned[f] = true
			}
		}
		gr.claim(members)
	}
}

func (gr *grouper) pickSeed() (int, bool) {
	best, bestTop, bestSize := -1, int64(-1), 0
	for f := range gr.dc.faces {
		if gr.assigned[f] {
			continue
		}
		n := len(gr.undecided(f))
		if n == 0 || n > gr.days {
			continue
		}
		t, s := gr.top(f), gr.dc.faces[f].Rect.Size()
		if best < 0 || t > bestTop || (t == bestTop && s < bestSize) {
			best, bestTop, bestSize = f, t, s
		}
	}
	return best, best >= 0
}

// neighbours lists the unassigned faces sharing an edge with f that still
// have undecided edges, by descending top betweenness then id.
func (gr *grouper) neighbours(f int) []int {
	var out []int
	for _, e := range gr.dc.faces[f].Edges {
		out = append(out, gr.dc.edgeFaces[e]...)
	}
	out = lo.Filter(lo.Uniq(out), func(o int, _ int) bool {
		return o != f && !gr.assigned[o] && gr.top(o) >= 0
	})
	slices.SortFunc(out, func(a, b int) int {
		if c := cmp.Compare(gr.top(b), gr.top(a)); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return out
}

// claimOrder sorts faces by ascending undecided count, then id.
func (gr *grouper) claimOrder(faces []int) []int {
	out := slices.Clone(faces)
	slices.SortStableFunc(out, func(a, b int) int {
		if c := cmp.Compare(len(gr.undecided(a)), len(gr.undecided(b))); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return out
}

func (gr *grouper) canGroup(faces []int) bool {
	rect := gr.dc.faces[faces[0]].Rect
	for _, f := range faces[1:] {
		rect = rect.Merge(gr.dc.faces[f].Rect)
	}
	if rect.Size() > gr.limit {
		return false
	}
	claimed := core.NewEdgeBit()
	for _, f := range gr.claimOrder(faces) {
		fresh := 0
		for _, e := range gr.undecided(f) {
			if !claimed.Has(e) {
				claimed.Add(e)
				fresh++
			}
		}
		if fresh > gr.days {
			return false
		}
	}
	return true
}

func (gr *grouper) claim(members []int) {
	id := len(gr.dc.groups)
	g := Group{
		ID:    id,
		Faces: gr.claimOrder(members),
		Edges: core.NewEdgeBit(),
		Rect:  gr.dc.faces[members[0]].Rect,
	}
	for _, f := range g.Faces {
		var mine []int
		for _, e := range gr.undecided(f) {
			if !g.Edges.Has(e) {
				g.Edges.Add(e)
				mine = append(mine, e)
				gr.dc.groupOf[e] = id
			}
		}
		g.Claims = append(g.Claims, mine)
		g.Rect = g.Rect.Merge(gr.dc.faces[f].Rect)
	}
	gr.decided.Union(g.Edges)
	gr.dc.groups = append(gr.dc.groups, g)
}

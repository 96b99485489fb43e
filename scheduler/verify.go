package scheduler

import (
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/roadwork/network"
)

// Report describes how a schedule meets the hard rules.
type Report struct {
	Counts       []int // edges per day, index 0 is day 1
	Overloaded   []int // 1-based days above capacity
	Disconnected []int // 1-based days whose open roads leave the city split
	Components   []int // connected components per day
}

// OK reports whether no day is overloaded or disconnected.
func (r Report) OK() bool { return len(r.Overloaded) == 0 && len(r.Disconnected) == 0 }

// Verify checks a 1-based schedule against capacity and per-day
// connectivity. Malformed schedules yield the errors of network.Model.DaySets.
func Verify(m *network.Model, schedule []int, days, capacity int) (Report, error) {
	sets, err := m.DaySets(days, schedule)
	if err != nil {
		return Report{}, err
	}
	g := m.Graph()
	rep := Report{Counts: make([]int, days), Components: make([]int, days)}

	for d, closed := range sets {
		rep.Counts[d] = closed.Count()
		if rep.Counts[d] > capacity {
			rep.Overloaded = append(rep.Overloaded, d+1)
		}

		open := simple.NewUndirectedGraph()
		for v := 0; v < g.N(); v++ {
			open.AddNode(simple.Node(v))
		}
		for _, e := range g.Edges() {
			if closed.Has(e.Index) || open.HasEdgeBetween(int64(e.U), int64(e.V)) {
				continue
			}
			open.SetEdge(open.NewEdge(simple.Node(e.U), simple.Node(e.V)))
		}
		rep.Components[d] = len(topo.ConnectedComponents(open))
		if rep.Components[d] > 1 {
			rep.Disconnected = append(rep.Disconnected, d+1)
		}
	}
	return rep, nil
}

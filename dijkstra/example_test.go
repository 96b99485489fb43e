package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/roadwork/core"
	"github.com/katalvlaran/roadwork/dijkstra"
)

// ExampleDijkstra computes the detour around a closed road.
func ExampleDijkstra() {
	// 0 --1-- 1 --2-- 2, plus a long direct road 0 --5-- 2.
	g, _ := core.NewGraph(3)
	_, _ = g.AddEdge(0, 1, 1)
	_, _ = g.AddEdge(1, 2, 2)
	_, _ = g.AddEdge(0, 2, 5)

	open, _ := dijkstra.Dijkstra(g, dijkstra.Source(0))
	detour, _ := dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithClosed(core.NewEdgeBit(1)))

	fmt.Println("open:", open.Dist[2])
	fmt.Println("edge 1 closed:", detour.Dist[2])
	// Output:
	// open: 3
	// edge 1 closed: 5
}

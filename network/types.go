// Package network builds the static model of a road graph that every
// scheduling component queries: per-source shortest-path trees, distance
// sums, edge betweenness and bypass paths, plus the disruption cost of a
// closure set.
//
// A Model is immutable after Prepare and may be shared by pointer.
//
// Cost normalisation:
//
//	cost(closed) = 1000 · Σ_s (sumDist'(s) − sumDist(s)) / (N·(N−1))
//
// where sumDist' is computed with the closed edges removed and unreachable
// nodes contribute core.DistInf. Integer division truncates.
//
// Errors:
//
//	ErrNilGraph       - Prepare got a nil graph.
//	ErrTooFewNodes    - fewer than two nodes; the per-pair average is undefined.
//	ErrScheduleLength - schedule length differs from M.
//	ErrDayOutOfRange  - schedule value outside [1, D].
package network

import (
	"errors"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors.
var (
	ErrNilGraph       = errors.New("network: graph is nil")
	ErrTooFewNodes    = errors.New("network: at least two nodes required")
	ErrScheduleLength = errors.New("network: schedule length mismatch")
	ErrDayOutOfRange  = errors.New("network: day out of range")
)

// CostScale is the numerator of the per-pair normalisation.
const CostScale int64 = 1000

// Cost is a normalised disruption value and the number of ordered node pairs
// left without any path.
type Cost struct {
	Value        int64
	Disconnected int
}

// Model is the preprocessed, read-only view of a road graph.
type Model struct {
	g *core.Graph

	sumDist     []int64         // sumDist[s] = Σ_t dist(s,t), DistInf for unreachable t
	trees       []*core.EdgeBit // trees[s] = edges of the shortest-path tree rooted at s
	betweenness []int64         // betweenness[e] = Σ_s descendants below e in tree s
	bypass      []*core.EdgeBit // bypass[e] = shortest u→v path without e
	bridge      []bool          // bridge[e] = no bypass exists
	totalDist   int64           // Σ_s sumDist[s]
}

// Graph returns the underlying graph.
func (m *Model) Graph() *core.Graph { return m.g }

// N returns the node count.
func (m *Model) N() int { return m.g.N() }

// M returns the edge count.
func (m *Model) M() int { return m.g.M() }

// SumDist returns Σ_t dist(s,t) of the open graph.
func (m *Model) SumDist(s int) int64 { return m.sumDist[s] }

// TotalDist returns Σ_s SumDist(s).
func (m *Model) TotalDist() int64 { return m.totalDist }

// TreeEdges returns the shortest-path tree of source s. Callers must not modify it.
func (m *Model) TreeEdges(s int) *core.EdgeBit { return m.trees[s] }

// Betweenness returns the betweenness of edge e.
func (m *Model) Betweenness(e int) int64 { return m.betweenness[e] }

// Bypass returns the detour of edge e; empty for a bridge. Callers must not modify it.
func (m *Model) Bypass(e int) *core.EdgeBit { return m.bypass[e] }

// IsBridge reports whether removing e alone disconnects its endpoints.
func (m *Model) IsBridge(e int) bool { return m.bridge[e] }

// Normalize converts a raw distance-sum delta into the per-pair cost scale.
func (m *Model) Normalize(raw int64) int64 {
	n := int64(m.g.N())
	return CostScale * raw / (n * (n - 1))
}

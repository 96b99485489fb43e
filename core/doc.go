// Package core provides the immutable road graph shared by every roadwork
// component, together with EdgeBit, the edge-index set used to describe
// closures, bypass paths and shortest-path trees.
//
// Model:
//
//   - Nodes are dense indices 0..N-1. The external instance format is
//     1-based; conversion happens once in package instance.
//   - Every node carries an integer 2D coordinate (Coord). Coordinates are
//     only consulted by geometric components (face decomposition, root
//     selection of the distance estimator).
//   - Edges are undirected, positively weighted and indexed 0..M-1 in input
//     order. The index is the stable identity used by all other packages.
//   - Adjacency lists store (neighbour, edge index) pairs, so parallel edges
//     are representable and a closure mask can be applied per edge.
//
// A Graph is built once through AddEdge/SetCoord and then treated as
// read-only. It is not guarded by locks: all roadwork algorithms are
// single-threaded and share the graph by pointer.
//
// Distances use int64; DistInf marks an unreachable node everywhere.
//
// Errors:
//
//	ErrBadNodeCount   - N < 1.
//	ErrNodeOutOfRange - node index outside [0, N).
//	ErrSelfLoop       - u == v.
//	ErrBadWeight      - weight <= 0.
package core

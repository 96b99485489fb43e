// Package spt keeps shortest-path trees up to date while edges close and
// reopen, so that moving one edge between days can be costed by touching
// only the nodes whose distance actually changes.
//
// Tree
//
// A Tree holds, for one root, dist[v] and the parent edge of every node over
// the open edges. Closing a tree edge cuts off the subtree below it: the
// subtree is collected with an explicit stack, its distances reset to
// core.DistInf, re-seeded from open edges to nodes outside the subtree, and
// finished with a heap Dijkstra that only ever improves subtree nodes.
// Reopening an edge relaxes its two endpoints through it and propagates
// improvements outward. Closing a non-tree edge changes nothing but the mask.
//
// Every mutation can be journaled: Begin starts a trial, Rollback restores
// the exact prior state (distances, parents, mask and total), Commit keeps it.
//
// Estimator
//
// An Estimator holds one Tree per (day, root). Roots are nine representative
// points (corners, side midpoints and centre of the coordinate bounding box,
// each snapped to its nearest node) or every node on small graphs. The sum of
// tree deltas of a day approximates the raw disruption of that day's
// closures; with every node as a root it equals network.Model.RawCost.
//
// Invariant after every operation, for every open-reachable v ≠ root:
//
//	dist[v] = dist[parent(v)] + w(parentEdge(v))
package spt

// Package face splits a planar road network into its bounded faces (the
// blocks enclosed by streets) and greedily clusters adjacent faces into
// groups whose undecided edges can be spread over the maintenance days
// locally.
//
// Face extraction walks half-edges. Around every node the incident streets
// are ordered by angle; the face to the left of u→v continues with v→w,
// where w is the neighbour of v met just before u in counter-clockwise
// order. Each half-edge belongs to exactly one walk. Walks with positive
// signed area are bounded faces; the outer boundary of every component has
// negative area and is dropped, as are walks with fewer than three distinct
// edges.
//
// Grouping repeats until no face can seed a group:
//
//  1. Seed: the unassigned face with 0 < undecided ≤ D whose most central
//     undecided edge has the highest betweenness, then the smallest
//     rectangle (dx+dy), then the lowest id.
//  2. Grow: try the seed's unassigned neighbours (faces sharing an edge) by
//     descending top betweenness. A neighbour joins when the merged
//     rectangle stays within RectLimit and, walking the group's faces by
//     ascending undecided count, no face claims more than D new edges.
//  3. Claim: every undecided edge of the group becomes decided.
//
// Edges claimed by no group (bridges, dangling streets, faces too large for
// D) are reported by Uncovered.
package face

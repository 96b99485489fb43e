// Package reserve decides, for every maintenance day, which edges must stay
// open that day so that the road network remains connected, and inverts that
// decision into an Availability: the days on which each edge may be closed.
//
// Model
//
// Each day d keeps a protected edge set P_d that always spans the graph. The
// planner starts from D random spanning trees and anneals the sets with a
// single move type: pick a protected edge e on day d and replace it by its
// bypass path,
//
//	P_d' = P_d − {e} ∪ bypass(e)
//
// which keeps P_d' connected because bypass(e) joins the endpoints of e.
// Bridges have no bypass and are never removed.
//
// Energy
//
// For every edge, with a(e) the number of days it is not protected:
//
//	a(e) = 0  → CostUncovered    (never closable)
//	a(e) = 1  → CostOnce
//	a(e) = 2  → CostTwice
//	a(e) ≥ 3  → 0
//
// plus CostPerProtected for every protected edge on every day. Moves are
// accepted with the Metropolis rule under a temperature that decreases
// linearly from MaxTemp to MinTemp; the best state seen is kept.
//
// After annealing, avail[d] = ¬P_d, and every edge still unavailable on all
// days is made available on one random day, so that every edge can be
// scheduled somewhere.
//
// Determinism: the result depends only on the model, the day count, the
// options and the *rand.Rand passed in.
package reserve

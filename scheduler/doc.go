// Package scheduler assigns every road segment a maintenance day.
//
// A Searcher seeds a schedule from the face groups of package face, repairs
// capacity overflows with spanning-tree guided migrations and then runs a
// local search over single-edge moves, priced incrementally by the
// shortest-path trees of package spt. The availability computed by package
// reserve shapes the seed; search moves may target any non-full day, and a
// day left disconnected pays core.DistInf per lost pair until a move heals it.
//
// A Searcher moves through Uninitialized, Initializing, Searching and
// Finalized and runs once. The search stops on the first of: a zero-cost
// schedule, the time limit, the iteration limit, or context cancellation.
//
// Example:
//
//	s, err := scheduler.New(model, avail, decomposition, days, capacity,
//		scheduler.WithTimeLimit(2*time.Second),
//		scheduler.WithRand(rng.Derive(seed, rng.StreamSearch)))
//	if err != nil { ... }
//	res, err := s.Run(ctx)
//
// Verify re-checks any schedule for capacity and per-day connectivity.
package scheduler

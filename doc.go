// Package roadwork schedules road maintenance: every road segment of a city
// gets one of D closure days, at most K closures a day, so that the added
// travel distance over all origin/destination pairs stays small and the city
// stays connected every day.
//
// The pipeline, leaf packages first:
//
//	core/      - graph with coordinates, EdgeBit edge sets
//	dijkstra/  - shortest paths with a closed-edge mask
//	spanning/  - union-find, random and ordered spanning trees
//	network/   - static tables: trees, betweenness, bypasses, exact cost
//	reserve/   - per-day protected spanning sets -> closure availability
//	face/      - planar faces grouped into local clusters
//	spt/       - incremental shortest-path trees for move pricing
//	bypass/    - per-day detour conflict tracking
//	scheduler/ - initial schedule, capacity repair, local search
//	solver/    - everything above for one instance
//
// Outer layers: instance/ (text format), config/ (koanf), logger/ (zerolog),
// metrics/ (Prometheus), builder/ (synthetic city grids) and the
// cmd/roadwork CLI.
//
// Quick ASCII example (the kite used throughout the tests):
//
//	1───2
//	│ ╲ │
//	3───4
//
// Five roads over three days, two closures a day: every day must leave three
// roads open that still reach all four corners.
//
//	go run ./cmd/roadwork generate --rows 8 --cols 8 --days 4 | go run ./cmd/roadwork solve
package roadwork

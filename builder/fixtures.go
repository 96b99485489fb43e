// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// fixtures.go - small named instances reused by tests, examples and docs.

package builder

import "github.com/katalvlaran/roadwork/core"

// Kite returns the 4-node, 5-edge instance
//
//	1-2:1, 1-3:4, 1-4:3, 2-4:2, 3-4:5   (1-based, input order)
//
// laid out on a 10×10 square: 1(0,0) 2(10,0) 3(0,10) 4(10,10).
// Small enough for exhaustive enumeration of all day assignments.
func Kite() Constructor {
	return Explicit(
		[]core.Coord{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}},
		[]EdgeSpec{
			{U: 0, V: 1, W: 1},
			{U: 0, V: 2, W: 4},
			{U: 0, V: 3, W: 3},
			{U: 1, V: 3, W: 2},
			{U: 2, V: 3, W: 5},
		},
	)
}

// SPDX-License-Identifier: MIT
// Package: roadwork/builder
//
// errors.go - sentinel errors. Constructors wrap them with method context
// via %w; callers branch with errors.Is.

package builder

import "errors"

var (
	// ErrTooFewVertices indicates a size parameter below the constructor minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrNodeOutOfRange indicates a reference to a node the draft does not hold.
	ErrNodeOutOfRange = errors.New("builder: node out of range")

	// ErrConstructFailed indicates a structural failure (nil constructor, bad input).
	ErrConstructFailed = errors.New("builder: construction failed")
)

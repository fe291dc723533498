// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// errors.go - sentinel errors for the loop package.
//
// Error policy:
//   - Only package-level sentinels are exposed; callers branch with errors.Is.
//   - Implementations attach method context with %w wrapping.
//   - Engine operations never panic; panics are confined to option
//     constructors, Must* helpers and New on an invalid grid.

package loop

import "errors"

// ErrInvalidEdgeKind indicates a point pair that is neither a radial edge
// (same spoke, different rings) nor a concentric edge (same ring, adjacent spokes).
var ErrInvalidEdgeKind = errors.New("loop: edge is neither radial nor concentric")

// ErrPointOutOfRange indicates a point outside the grid.
var ErrPointOutOfRange = errors.New("loop: point out of range")

// ErrPinnedEdge indicates Pull was called on an edge whose every neighbor
// touches the loop.
var ErrPinnedEdge = errors.New("loop: pull called on a pinned edge")

// ErrEdgeNotInLoop indicates Pull was called with an edge the loop does not contain.
var ErrEdgeNotInLoop = errors.New("loop: edge is not part of the loop")

// ErrUnseeded indicates an operation that needs a loop on a Cycle with none.
var ErrUnseeded = errors.New("loop: cycle has not been seeded")

// ErrEmptyLoop indicates a Path with no edges where a closed loop is required.
var ErrEmptyLoop = errors.New("loop: empty loop")

// ErrBrokenLoop indicates a Path that is not a single closed, self-avoiding cycle.
var ErrBrokenLoop = errors.New("loop: not a closed self-avoiding loop")

// ErrGridMismatch indicates an edge that belongs to a different grid.
var ErrGridMismatch = errors.New("loop: edge belongs to a different grid")

// ErrBadSnapshot indicates a snapshot that cannot be restored.
var ErrBadSnapshot = errors.New("loop: bad snapshot")

// ErrBadCount indicates a negative frame or cell count.
var ErrBadCount = errors.New("loop: count must be non-negative")

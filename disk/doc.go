// Package disk describes the discretized annulus a loop lives on: a disk cut
// into R radial spokes and C concentric rings.
//
// What:
//
//   - Grid holds the division counts (R spokes, C rings). It is an immutable value.
//   - Point addresses one grid vertex by (Spoke, Ring).
//   - The spoke dimension is periodic (mod R); the ring dimension is bounded
//     (0 is the innermost ring, C-1 the outermost). Topologically the grid is a
//     finite cylinder, not a torus.
//
// Why:
//
//   - Every edge rule in package loop (classification, neighbors, boundaries)
//     is arithmetic on these two indices; keeping it in one place keeps the
//     wrap/clamp policy consistent.
//
// Complexity:
//
//   - Wrap, InBounds, IsInner/IsOuter/IsBoundary, Index, Coordinate: O(1).
//   - Ring: O(R).
//
// Errors:
//
//   - ErrBadDivisions: R or C is smaller than 1.
package disk

// Package loop implements the deformation engine for a self-avoiding closed
// loop on a disk.Grid.
//
// The loop is an ordered, oriented sequence of grid edges (Path). A Cycle owns
// one Path and grows it by "pulling" free edges: an edge is replaced by a
// three-edge detour through one of its neighbors, so every pull adds exactly
// two edges while keeping the loop closed and self-avoiding.
//
// Building blocks:
//
//   - Edge: an immutable radial or concentric grid edge. NewEdge rejects
//     oblique pairs with ErrInvalidEdgeKind.
//   - Edge.Neighbors: radial edges move to the adjacent spokes (mod R);
//     concentric edges move to the adjacent rings, and only inward or outward
//     on the innermost and outermost ring.
//   - Edge.IsFree / Edge.Pull: the free-edge predicate and the detour step.
//   - Path: the owned edge sequence, with Validate for the closure and
//     self-avoidance invariants.
//   - Cycle: Seed, FreeSet, Pull, Cover, Clone and Snapshot.
//   - Source: injected randomness (uniform draw and shuffle); *math/rand.Rand
//     satisfies it.
//
// Lifecycle:
//
//	c := loop.New(disk.MustGrid(5, 15), loop.WithSeed(7))
//	c.Seed()              // ring of R concentric edges
//	c.Pull()              // one deformation step (no-op once fully pinned)
//	c.Cover(loop.Unbounded) // reseed and pull until nothing is free
//
// Drivers:
//
//   - Progression: one clone per deformation step of a single cycle.
//   - Series: many independent covers, run in parallel, deterministic per seed.
//
// Concurrency:
//
//	A Cycle is not safe for concurrent mutation. Independent Cycles may be
//	driven from different goroutines as long as each has its own Source or a
//	shared one wrapped by NewLockedSource.
//
// Errors:
//
//   - ErrInvalidEdgeKind: endpoints are neither radial- nor concentric-adjacent.
//   - ErrPointOutOfRange: a point lies outside the grid.
//   - ErrPinnedEdge: Pull on an edge with no non-intersecting neighbor.
//   - ErrEdgeNotInLoop: Pull on an edge the loop does not contain.
//   - ErrUnseeded: Pull on a Cycle that has not been seeded.
//   - ErrBrokenLoop / ErrEmptyLoop: Path.Validate failures.
//   - ErrGridMismatch: an edge built on another grid.
//   - ErrBadSnapshot: Restore could not rebuild a snapshot.
//   - ErrBadCount: negative frame or cell count passed to a driver.
package loop

// Package diskloop deforms self-avoiding closed loops on a discretized disk.
//
// The disk is an annular grid of R radial divisions (spokes, periodic) and C
// concentric divisions (rings, bounded). A loop starts as one full ring and
// grows by pulling free edges sideways into a three-edge detour, until every
// edge is pinned by the loop itself or the grid boundary.
//
// Packages:
//
//	disk/             grid topology: points, wrap-around, bounds, indexing
//	loop/             edges, paths, the Cycle state machine, snapshots, drivers
//	internal/config/  HCL run files
//	cmd/diskloop/     command-line driver printing YAML snapshot streams
//
// Quick start:
//
//	g := disk.MustGrid(5, 15)
//	c := loop.New(g, loop.WithSeed(7))
//	if _, err := c.Cover(loop.Unbounded); err != nil {
//		// handle
//	}
//	_ = loop.WriteYAML(os.Stdout, c.Snapshot())
//
// Every random choice flows through an injected loop.Source, so a fixed seed
// reproduces a run exactly.
package diskloop

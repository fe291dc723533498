// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// drivers.go - multi-instance drivers: Progression (one clone per
// deformation step) and Series (many independent covers).
//
// Determinism:
//   - Progression consumes only the Source of the cycle it is given. Each
//     frame gets its own generator forked from it, so frames can be pulled
//     independently and from different goroutines.
//   - Series gives cell i its own generator seeded with seed+i, so results are
//     identical across runs and independent of scheduling.

package loop

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/diskloop/disk"
)

// Progression seeds c and records frames snapshots of its deformation: frame
// k is a clone holding the loop after k pulls. Once the loop is pinned the
// remaining frames repeat the final loop. c ends one pull past the last frame.
// Every frame draws from its own Source forked from c's, so pulling one frame
// never shifts the random choices of another. Frames share c's logger.
// Returns ErrBadCount if frames is negative.
// Complexity: O(frames·(|loop| + R·C)).
func Progression(c *Cycle, frames int) ([]*Cycle, error) {
	if frames < 0 {
		return nil, fmt.Errorf("Progression(frames=%d): %w", frames, ErrBadCount)
	}

	c.Seed()
	out := make([]*Cycle, 0, frames)
	for k := 0; k < frames; k++ {
		out = append(out, c.Clone(WithSource(forkSource(c.cfg.src))))
		if _, err := c.Pull(); err != nil {
			return nil, fmt.Errorf("Progression: frame %d: %w", k, err)
		}
	}

	return out, nil
}

// Series runs cells independent covers on g, each bounded by iterations
// (Unbounded for none), in parallel. Cell i draws from a generator seeded
// with seed+i, overriding any Source in opts. Results are ordered by cell.
// The first failure or ctx cancellation stops the run and is returned.
// Returns disk.ErrBadDivisions for an invalid grid and ErrBadCount if cells
// is negative.
func Series(ctx context.Context, g disk.Grid, cells, iterations int, seed int64, opts ...Option) ([]*Cycle, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("Series(%v): %w", g, disk.ErrBadDivisions)
	}
	if cells < 0 {
		return nil, fmt.Errorf("Series(cells=%d): %w", cells, ErrBadCount)
	}

	out := make([]*Cycle, cells)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i := 0; i < cells; i++ {
		cellOpts := make([]Option, 0, len(opts)+1)
		cellOpts = append(cellOpts, opts...)
		cellOpts = append(cellOpts, WithSeed(seed+int64(i)))

		eg.Go(func() error {
			c := New(g, cellOpts...)
			if _, err := c.CoverContext(ctx, iterations); err != nil {
				return fmt.Errorf("Series: cell %d: %w", i, err)
			}
			out[i] = c
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// cycle.go - Cycle, the deformable loop state.
//
// States:
//   - unseeded: no loop. New starts here.
//   - seeded: a valid loop. Seed/SeedAt and NewFrom lead here.
//
// Every transition either fully succeeds or leaves the state untouched.

package loop

import (
	"context"
	"fmt"

	"github.com/katalvlaran/diskloop/disk"
)

// Unbounded passed to Cover removes the iteration limit.
const Unbounded = -1

// Cycle owns one loop on a grid and deforms it.
// A Cycle is not safe for concurrent mutation.
type Cycle struct {
	grid  disk.Grid
	path  Path
	steps int
	cfg   config
}

// New returns an unseeded Cycle on g.
// Panics if g was not built by disk.NewGrid (for example the zero Grid).
func New(g disk.Grid, opts ...Option) *Cycle {
	if !g.Valid() {
		panic(fmt.Sprintf("loop: New on grid %v: %v", g, disk.ErrBadDivisions))
	}

	return &Cycle{grid: g, cfg: newConfig(opts...)}
}

// NewFrom returns a Cycle seeded with a copy of initial.
// Returns disk.ErrBadDivisions for an invalid grid, ErrGridMismatch if an
// edge was built on another grid, and the Validate error if initial is not a
// closed self-avoiding loop.
// Complexity: O(|initial|).
func NewFrom(g disk.Grid, initial Path, opts ...Option) (*Cycle, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("NewFrom(%v): %w", g, disk.ErrBadDivisions)
	}
	for i, e := range initial {
		if e.grid != g {
			return nil, fmt.Errorf("NewFrom: edge %d %v on %v, want %v: %w", i, e, e.grid, g, ErrGridMismatch)
		}
	}
	if err := initial.Validate(); err != nil {
		return nil, fmt.Errorf("NewFrom: %w", err)
	}

	c := New(g, opts...)
	c.path = initial.Clone()

	return c, nil
}

// Grid returns the grid this cycle lives on.
func (c *Cycle) Grid() disk.Grid { return c.grid }

// RadialDivisions returns R.
func (c *Cycle) RadialDivisions() int { return c.grid.RadialDivisions() }

// ConcentricDivisions returns C.
func (c *Cycle) ConcentricDivisions() int { return c.grid.ConcentricDivisions() }

// Loop returns the current loop. The result is a borrowed view, stable until
// the next mutating call; callers must not modify it.
func (c *Cycle) Loop() Path { return c.path }

// Seeded reports whether the cycle holds a loop.
func (c *Cycle) Seeded() bool { return len(c.path) > 0 }

// Len returns the number of edges in the loop.
func (c *Cycle) Len() int { return len(c.path) }

// Steps returns the number of pulls applied since the loop was seeded.
func (c *Cycle) Steps() int { return c.steps }

// Seed replaces the loop with the ring through a uniformly drawn point.
func (c *Cycle) Seed() Path {
	p := c.grid.RandomPoint(c.cfg.src)
	c.seedRing(p)

	return c.path
}

// SeedAt replaces the loop with the ring of R concentric edges through p.
// Returns ErrPointOutOfRange if p is off the grid.
// Complexity: O(R).
func (c *Cycle) SeedAt(p disk.Point) (Path, error) {
	if !c.grid.InBounds(p) {
		return nil, fmt.Errorf("SeedAt(%v) on %v: %w", p, c.grid, ErrPointOutOfRange)
	}
	c.seedRing(p)

	return c.path, nil
}

// seedRing installs Ring(g, p). A ring always satisfies Validate.
func (c *Cycle) seedRing(p disk.Point) {
	c.path = Ring(c.grid, p)
	c.steps = 0
	c.cfg.logger.Debug("loop: seeded", "grid", c.grid.String(), "point", p.String(), "len", len(c.path))
}

// FreeSet returns the free edges of the loop in random order. Pinned edges
// are excluded. An unseeded cycle has no free edges.
// Complexity: O(|loop| + R·C).
func (c *Cycle) FreeSet() []Edge {
	if !c.Seeded() {
		return nil
	}

	occ := c.path.occupancy(c.grid)
	var free []Edge
	for _, e := range c.path {
		if e.freeIn(occ) {
			free = append(free, e)
		}
	}
	shuffleEdges(c.cfg.src, free)

	return free
}

// Pull deforms the loop at a random free edge. When no edge is free the loop
// is left unchanged and no error is returned.
func (c *Cycle) Pull() (Path, error) {
	if !c.Seeded() {
		return nil, fmt.Errorf("Pull: %w", ErrUnseeded)
	}

	return c.PullFrom(c.FreeSet())
}

// PullFrom deforms the loop at candidates[0]. An empty candidate list is a
// no-op. Errors from Edge.Pull (ErrPinnedEdge, ErrEdgeNotInLoop) are returned
// with the loop unchanged.
// Complexity: O(|loop|).
func (c *Cycle) PullFrom(candidates []Edge) (Path, error) {
	if !c.Seeded() {
		return nil, fmt.Errorf("PullFrom: %w", ErrUnseeded)
	}
	if len(candidates) == 0 {
		return c.path, nil
	}

	selected := candidates[0]
	next, err := selected.Pull(c.path, c.cfg.src)
	if err != nil {
		return nil, fmt.Errorf("PullFrom: %w", err)
	}
	if c.cfg.checks {
		if err = next.Validate(); err != nil {
			return nil, fmt.Errorf("PullFrom(%v): %w", selected, err)
		}
	}

	c.path = next
	c.steps++
	c.cfg.logger.Debug("loop: pulled", "edge", selected.String(), "len", len(c.path), "steps", c.steps)

	return c.path, nil
}

// Cover reseeds at a random point and pulls until no edge is free or
// maxIterations pulls were made. Unbounded (any negative value) removes the
// limit; 0 returns the freshly seeded ring.
func (c *Cycle) Cover(maxIterations int) (Path, error) {
	return c.CoverContext(context.Background(), maxIterations)
}

// CoverContext is Cover that stops with ctx.Err() when ctx is done. The loop
// reached so far is kept.
// Complexity: O(k·(|loop| + R·C)) for k pulls.
func (c *Cycle) CoverContext(ctx context.Context, maxIterations int) (Path, error) {
	c.Seed()

	for free := c.FreeSet(); len(free) > 0 && underBudget(c.steps, maxIterations); free = c.FreeSet() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("Cover: %w", err)
		}
		if _, err := c.PullFrom(free); err != nil {
			return nil, fmt.Errorf("Cover: %w", err)
		}
	}
	c.cfg.logger.Debug("loop: covered", "grid", c.grid.String(), "len", len(c.path), "steps", c.steps)

	return c.path, nil
}

func underBudget(steps, maxIterations int) bool {
	return maxIterations < 0 || steps < maxIterations
}

// Clone returns an independent Cycle with the same grid, a copy of the loop
// and the same step count. The clone shares the Source and logger unless opts
// override them.
// Complexity: O(|loop|).
func (c *Cycle) Clone(opts ...Option) *Cycle {
	return &Cycle{
		grid:  c.grid,
		path:  c.path.Clone(),
		steps: c.steps,
		cfg:   c.cfg.with(opts...),
	}
}

// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// path.go - Path, the owned, ordered edge sequence of a loop.
//
// Invariants of an engine-produced Path (checked by Validate):
//   - Chained: p[k].End() == p[k+1].Start(), cyclically.
//   - Simple: every vertex starts exactly one edge, so every touched vertex has
//     degree 2 and the sequence is one cycle, not several.
// Together they imply self-avoidance: non-adjacent edges share no endpoint.

package loop

import (
	"fmt"

	"github.com/katalvlaran/diskloop/disk"
)

// Path is an ordered sequence of edges. Values returned by Cycle.Loop are
// borrowed views; use Clone before mutating.
type Path []Edge

// Ring builds the seed loop: the R concentric edges of ring p.Ring, starting
// at spoke p.Spoke and walking forward (mod R) until the ring closes.
// Complexity: O(R).
func Ring(g disk.Grid, p disk.Point) Path {
	r := g.RadialDivisions()
	out := make(Path, r)
	for i := 0; i < r; i++ {
		out[i] = Edge{
			start: disk.Point{Spoke: g.Wrap(p.Spoke + i), Ring: p.Ring},
			end:   disk.Point{Spoke: g.Wrap(p.Spoke + i + 1), Ring: p.Ring},
			grid:  g,
		}
	}

	return out
}

// Len returns the number of edges.
func (p Path) Len() int { return len(p) }

// Clone returns an independent copy of p.
// Complexity: O(|p|).
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// IndexOf returns the position of the first edge equal to e (unordered), or -1.
// Complexity: O(|p|).
func (p Path) IndexOf(e Edge) int {
	for i, x := range p {
		if x.Equals(e) {
			return i
		}
	}

	return -1
}

// Contains reports whether p holds an edge equal to e.
func (p Path) Contains(e Edge) bool { return p.IndexOf(e) >= 0 }

// Touches reports whether any edge of p shares an endpoint with e.
// Complexity: O(|p|).
func (p Path) Touches(e Edge) bool {
	for _, x := range p {
		if x.Intersects(e) {
			return true
		}
	}

	return false
}

// Vertices returns the start point of every edge, in loop order. For a valid
// loop this lists each touched vertex exactly once.
func (p Path) Vertices() []disk.Point {
	out := make([]disk.Point, len(p))
	for i, e := range p {
		out[i] = e.start
	}

	return out
}

// Validate checks that p is a single closed, self-avoiding loop.
// Returns ErrEmptyLoop for an empty path and ErrBrokenLoop, wrapped with the
// first violation found, otherwise.
// Complexity: O(|p|) time, O(|p|) memory.
func (p Path) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("Validate: %w", ErrEmptyLoop)
	}

	seen := make(map[disk.Point]int, len(p))
	for k, e := range p {
		next := p[(k+1)%len(p)]
		if e.end != next.start {
			return fmt.Errorf("Validate: edge %d %v does not meet edge %d %v: %w",
				k, e, (k+1)%len(p), next, ErrBrokenLoop)
		}
		if j, dup := seen[e.start]; dup {
			return fmt.Errorf("Validate: vertex %v starts edges %d and %d: %w",
				e.start, j, k, ErrBrokenLoop)
		}
		seen[e.start] = k
	}

	return nil
}

// splice returns a new Path with p[i] replaced by repl.
func (p Path) splice(i int, repl []Edge) Path {
	out := make(Path, 0, len(p)-1+len(repl))
	out = append(out, p[:i]...)
	out = append(out, repl...)
	out = append(out, p[i+1:]...)

	return out
}

// occupancy marks every vertex touched by p in a dense ring-major set.
func (p Path) occupancy(g disk.Grid) []bool {
	occ := make([]bool, g.Size())
	for _, e := range p {
		occ[g.Index(e.start)] = true
		occ[g.Index(e.end)] = true
	}

	return occ
}

// freeIn is IsFree against a precomputed occupancy set.
func (e Edge) freeIn(occ []bool) bool {
	g := e.grid
	for _, n := range e.Neighbors() {
		if !occ[g.Index(n.start)] && !occ[g.Index(n.end)] {
			return true
		}
	}

	return false
}

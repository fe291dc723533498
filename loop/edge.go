// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// edge.go - the grid Edge value type: construction, classification,
// neighbors and endpoint comparisons.
//
// Contract:
//   - NewEdge is the only validation point; every Edge value is well formed.
//   - Edges are immutable and carry no identity beyond their endpoints.
//   - Orientation (start -> end) is kept so loops stay chained, but Equals
//     and Intersects are order-insensitive.

package loop

import (
	"fmt"

	"github.com/katalvlaran/diskloop/disk"
)

// Edge is a single radial or concentric grid edge.
type Edge struct {
	start disk.Point
	end   disk.Point
	grid  disk.Grid
}

// NewEdge builds the edge start->end on g.
//
// A radial edge shares the spoke and joins two different rings. A concentric
// edge shares the ring and spans two spokes one step apart (mod R).
// Returns ErrPointOutOfRange if either point is off the grid and
// ErrInvalidEdgeKind for any other pair.
// Complexity: O(1).
func NewEdge(g disk.Grid, start, end disk.Point) (Edge, error) {
	if !g.Valid() {
		return Edge{}, fmt.Errorf("NewEdge(%v, %v): %w", start, end, disk.ErrBadDivisions)
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return Edge{}, fmt.Errorf("NewEdge(%v, %v) on %v: %w", start, end, g, ErrPointOutOfRange)
	}
	if !radialPair(start, end) && !concentricPair(g, start, end) {
		return Edge{}, fmt.Errorf("NewEdge(%v, %v): %w", start, end, ErrInvalidEdgeKind)
	}

	return Edge{start: start, end: end, grid: g}, nil
}

// MustEdge is NewEdge that panics on error. Intended for tests and examples.
func MustEdge(g disk.Grid, start, end disk.Point) Edge {
	e, err := NewEdge(g, start, end)
	if err != nil {
		panic(err)
	}

	return e
}

// radialPair: same spoke, different rings. The span may cover several rings.
func radialPair(a, b disk.Point) bool {
	return a.Spoke == b.Spoke && a.Ring != b.Ring
}

// concentricPair: same ring, spokes one step apart mod R.
func concentricPair(g disk.Grid, a, b disk.Point) bool {
	if a.Ring != b.Ring {
		return false
	}

	return g.Wrap(a.Spoke+1) == b.Spoke || g.Wrap(b.Spoke+1) == a.Spoke
}

// Start returns the point this edge starts at.
func (e Edge) Start() disk.Point { return e.start }

// End returns the point this edge ends at.
func (e Edge) End() disk.Point { return e.end }

// Grid returns the grid this edge was built on.
func (e Edge) Grid() disk.Grid { return e.grid }

// IsRadial reports whether the edge lies along a spoke.
func (e Edge) IsRadial() bool {
	return e.start.Spoke == e.end.Spoke && e.start.Ring != e.end.Ring
}

// IsConcentric reports whether the edge lies on a ring.
func (e Edge) IsConcentric() bool {
	return e.start.Ring == e.end.Ring
}

// Reverse returns the same edge oriented end->start.
func (e Edge) Reverse() Edge {
	return Edge{start: e.end, end: e.start, grid: e.grid}
}

// Neighbors returns the edges adjacent to e along its own axis.
//
//   - Radial edge on spoke i: the same rings on spokes i+1 and i-1 (mod R).
//   - Concentric edge on ring j: ring j+1 only when j is the innermost ring,
//     ring j-1 only when j is the outermost ring, otherwise both.
//
// With a single ring (C=1) a concentric edge has no neighbors.
// Neighbors keep e's orientation. Complexity: O(1).
func (e Edge) Neighbors() []Edge {
	g := e.grid
	if e.IsRadial() {
		return []Edge{e.shift(1, 0), e.shift(-1, 0)}
	}

	ring := e.start.Ring
	switch {
	case g.IsInner(ring) && g.IsOuter(ring):
		return nil
	case g.IsInner(ring):
		return []Edge{e.shift(0, 1)}
	case g.IsOuter(ring):
		return []Edge{e.shift(0, -1)}
	default:
		return []Edge{e.shift(0, 1), e.shift(0, -1)}
	}
}

// shift moves both endpoints by ds spokes and dr rings. Callers guarantee the
// result stays on the grid, so no validation is repeated here.
func (e Edge) shift(ds, dr int) Edge {
	return Edge{
		start: e.grid.Step(e.start, ds, dr),
		end:   e.grid.Step(e.end, ds, dr),
		grid:  e.grid,
	}
}

// Intersects reports whether e and other share at least one endpoint.
func (e Edge) Intersects(other Edge) bool {
	return e.start == other.start || e.start == other.end ||
		e.end == other.start || e.end == other.end
}

// Equals reports whether e and other join the same two points, in either order.
func (e Edge) Equals(other Edge) bool {
	return (e.start == other.start && e.end == other.end) ||
		(e.start == other.end && e.end == other.start)
}

// String formats the edge as "(s,r)->(s,r)".
func (e Edge) String() string {
	return e.start.String() + "->" + e.end.String()
}

package disk

import "fmt"

// NewGrid builds a Grid with radial spokes and concentric rings.
// Returns ErrBadDivisions if either count is below 1.
// Complexity: O(1).
func NewGrid(radial, concentric int) (Grid, error) {
	if radial < minDivisions || concentric < minDivisions {
		return Grid{}, fmt.Errorf("NewGrid(%d, %d): %w", radial, concentric, ErrBadDivisions)
	}

	return Grid{spokes: radial, rings: concentric}, nil
}

// MustGrid is NewGrid that panics on invalid divisions. Intended for
// package-level literals, tests and examples.
func MustGrid(radial, concentric int) Grid {
	g, err := NewGrid(radial, concentric)
	if err != nil {
		panic(err)
	}

	return g
}

// RadialDivisions returns R, the number of spokes.
func (g Grid) RadialDivisions() int { return g.spokes }

// ConcentricDivisions returns C, the number of rings.
func (g Grid) ConcentricDivisions() int { return g.rings }

// Size returns the number of grid vertices, R*C.
func (g Grid) Size() int { return g.spokes * g.rings }

// Valid reports whether g was built by NewGrid (both counts at least 1).
func (g Grid) Valid() bool {
	return g.spokes >= minDivisions && g.rings >= minDivisions
}

// Wrap normalizes a spoke index into [0,R). Negative inputs wrap backwards.
// Complexity: O(1).
func (g Grid) Wrap(spoke int) int {
	s := spoke % g.spokes
	if s < 0 {
		s += g.spokes
	}

	return s
}

// InBounds reports whether p is a vertex of g.
// Complexity: O(1).
func (g Grid) InBounds(p Point) bool {
	return p.Spoke >= 0 && p.Spoke < g.spokes && p.Ring >= 0 && p.Ring < g.rings
}

// IsInner reports whether ring is the innermost ring.
func (g Grid) IsInner(ring int) bool { return ring == 0 }

// IsOuter reports whether ring is the outermost ring.
func (g Grid) IsOuter(ring int) bool { return ring == g.rings-1 }

// IsBoundary reports whether ring has no ring further inward or outward.
func (g Grid) IsBoundary(ring int) bool { return g.IsInner(ring) || g.IsOuter(ring) }

// Index maps p to a ring-major index: Ring*R + Spoke.
// Used for dense visited sets. Complexity: O(1).
func (g Grid) Index(p Point) int {
	return p.Ring*g.spokes + p.Spoke
}

// Coordinate converts a ring-major index back to a Point.
// Complexity: O(1).
func (g Grid) Coordinate(idx int) Point {
	return Point{Spoke: idx % g.spokes, Ring: idx / g.spokes}
}

// Step returns p moved by ds spokes (wrapped) and dr rings (not clamped).
// The result may lie outside g when dr crosses a boundary; callers check InBounds.
func (g Grid) Step(p Point, ds, dr int) Point {
	return Point{Spoke: g.Wrap(p.Spoke + ds), Ring: p.Ring + dr}
}

// Ring returns the R points of the given ring in increasing spoke order.
// Complexity: O(R).
func (g Grid) Ring(ring int) []Point {
	pts := make([]Point, g.spokes)
	for s := 0; s < g.spokes; s++ {
		pts[s] = Point{Spoke: s, Ring: ring}
	}

	return pts
}

// RandomPoint draws a point uniformly from the grid.
// Complexity: O(1).
func (g Grid) RandomPoint(rng Intner) Point {
	return Point{
		Spoke: rng.Intn(g.spokes),
		Ring:  rng.Intn(g.rings),
	}
}

// String formats the grid as "R×C".
func (g Grid) String() string {
	return fmt.Sprintf("%d×%d", g.spokes, g.rings)
}

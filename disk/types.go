package disk

import "fmt"

// minDivisions is the smallest legal spoke or ring count.
const minDivisions = 1

// Point addresses a grid vertex.
// Spoke is the angular index in [0,R); Ring is the radial index in [0,C).
type Point struct {
	Spoke int
	Ring  int
}

// String formats the point as "(spoke,ring)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Spoke, p.Ring)
}

// Intner is the narrow random capability Grid needs to draw a point.
// *math/rand.Rand satisfies it.
type Intner interface {
	Intn(n int) int
}

// Grid is the annulus parameter pair (R spokes, C rings). The zero value is
// not a usable grid; build one with NewGrid.
type Grid struct {
	spokes int
	rings  int
}

// File: disk/example_test.go
package disk_test

import (
	"fmt"

	"github.com/katalvlaran/diskloop/disk"
)

// ExampleGrid_Wrap demonstrates the periodic spoke dimension and the bounded
// ring dimension of a 5×3 annulus.
func ExampleGrid_Wrap() {
	g := disk.MustGrid(5, 3)

	fmt.Println("grid:", g)
	fmt.Println("wrap 5:", g.Wrap(5))
	fmt.Println("wrap -1:", g.Wrap(-1))
	fmt.Println("ring 3 in bounds:", g.InBounds(disk.Point{Spoke: 0, Ring: 3}))
	fmt.Println("outer ring:", g.IsOuter(2))

	// Output:
	// grid: 5×3
	// wrap 5: 0
	// wrap -1: 4
	// ring 3 in bounds: false
	// outer ring: true
}

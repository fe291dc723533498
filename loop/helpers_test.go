package loop_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diskloop/disk"
	"github.com/katalvlaran/diskloop/loop"
)

// firstSource always picks index 0 and never permutes, which makes target
// selection and free-set order fully predictable.
type firstSource struct{}

func (firstSource) Intn(int) int { return 0 }

func (firstSource) Shuffle(int, func(i, j int)) {}

// pt is shorthand for a disk.Point literal.
func pt(spoke, ring int) disk.Point { return disk.Point{Spoke: spoke, Ring: ring} }

// edge is shorthand for MustEdge.
func edge(g disk.Grid, s0, r0, s1, r1 int) loop.Edge {
	return loop.MustEdge(g, pt(s0, r0), pt(s1, r1))
}

// requireLoopInvariants checks closure (degree 2 everywhere, one cycle) and
// self-avoidance (non-adjacent edges share no endpoint) by brute force,
// independently of Path.Validate.
func requireLoopInvariants(t *testing.T, p loop.Path) {
	t.Helper()
	require.NoError(t, p.Validate())

	n := len(p)
	degree := make(map[disk.Point]int, n)
	for _, e := range p {
		degree[e.Start()]++
		degree[e.End()]++
	}
	for v, d := range degree {
		require.Equalf(t, 2, d, "vertex %v has degree %d", v, d)
	}
	require.Len(t, degree, n, "a single cycle of n edges touches n vertices")

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if adjacent {
				continue
			}
			require.Falsef(t, p[i].Intersects(p[j]), "edges %d %v and %d %v intersect", i, p[i], j, p[j])
		}
	}
}

// pinnedLoop returns the 6-edge loop on a 4×2 grid obtained by pulling the
// inner ring outward at spoke 0. Only (2,0)->(3,0) is free in it.
func pinnedLoop(g disk.Grid) loop.Path {
	return loop.Path{
		edge(g, 0, 0, 0, 1),
		edge(g, 0, 1, 1, 1),
		edge(g, 1, 1, 1, 0),
		edge(g, 1, 0, 2, 0),
		edge(g, 2, 0, 3, 0),
		edge(g, 3, 0, 0, 0),
	}
}

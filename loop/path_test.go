package loop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/diskloop/disk"
	"github.com/katalvlaran/diskloop/loop"
)

// TestRing_Construction checks that the seed ring has R chained concentric
// edges on the requested ring, starting at the requested spoke.
func TestRing_Construction(t *testing.T) {
	g := disk.MustGrid(5, 4)
	p := loop.Ring(g, pt(3, 2))

	require.Len(t, p, 5)
	assert.Equal(t, pt(3, 2), p[0].Start())
	assert.Equal(t, pt(4, 2), p[0].End())
	assert.Equal(t, pt(0, 2), p[1].End(), "spokes wrap mod R")
	for i, e := range p {
		assert.Truef(t, e.IsConcentric(), "edge %d %v", i, e)
		assert.Equal(t, 2, e.Start().Ring)
	}
	requireLoopInvariants(t, p)
}

// TestValidate covers empty, broken and self-crossing paths.
func TestValidate(t *testing.T) {
	g := disk.MustGrid(4, 3)
	ring := loop.Ring(g, pt(0, 1))

	cases := []struct {
		name string
		p    loop.Path
		err  error
	}{
		{"Empty", loop.Path{}, loop.ErrEmptyLoop},
		{"Nil", nil, loop.ErrEmptyLoop},
		{"OpenChain", ring[:3], loop.ErrBrokenLoop},
		{"Gap", loop.Path{ring[0], ring[2], ring[3], ring[1]}, loop.ErrBrokenLoop},
		{"RevisitsVertices", append(ring.Clone(), ring...), loop.ErrBrokenLoop},
		{"Valid", ring, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestPath_Accessors covers Clone, IndexOf, Contains, Touches and Vertices.
func TestPath_Accessors(t *testing.T) {
	g := disk.MustGrid(4, 3)
	p := loop.Ring(g, pt(0, 1))

	c := p.Clone()
	c[0] = edge(g, 0, 0, 1, 0)
	assert.True(t, p[0].Equals(edge(g, 0, 1, 1, 1)), "clone must be independent")
	assert.Nil(t, loop.Path(nil).Clone())

	assert.Equal(t, 2, p.IndexOf(edge(g, 3, 1, 2, 1)))
	assert.Equal(t, -1, p.IndexOf(edge(g, 0, 0, 1, 0)))
	assert.True(t, p.Contains(edge(g, 1, 1, 0, 1)))
	assert.False(t, p.Contains(edge(g, 1, 1, 1, 2)))

	assert.True(t, p.Touches(edge(g, 1, 1, 1, 2)))
	assert.False(t, p.Touches(edge(g, 1, 2, 2, 2)))

	assert.Equal(t, []disk.Point{pt(0, 1), pt(1, 1), pt(2, 1), pt(3, 1)}, p.Vertices())
	assert.Equal(t, 4, p.Len())
}

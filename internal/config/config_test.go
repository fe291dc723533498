package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParse_AllAttributes decodes every attribute, including an expression
// over the default variables.
func TestParse_AllAttributes(t *testing.T) {
	src := []byte(`
radial_divisions     = 6
concentric_divisions = 9
seed                 = 12
iterations           = default_iterations * 2
frames               = default_frames / 4
cells                = 4
`)
	run, err := Parse(src, "run.hcl")
	require.NoError(t, err)

	require.NotNil(t, run.RadialDivisions)
	assert.Equal(t, 6, *run.RadialDivisions)
	require.NotNil(t, run.ConcentricDivisions)
	assert.Equal(t, 9, *run.ConcentricDivisions)
	require.NotNil(t, run.Seed)
	assert.Equal(t, int64(12), *run.Seed)
	require.NotNil(t, run.Iterations)
	assert.Equal(t, 2*DefaultIterations, *run.Iterations)
	require.NotNil(t, run.Frames)
	assert.Equal(t, DefaultFrames/4, *run.Frames)
	require.NotNil(t, run.Cells)
	assert.Equal(t, 4, *run.Cells)
}

// TestParse_Empty leaves every field unset.
func TestParse_Empty(t *testing.T) {
	run, err := Parse([]byte(""), "empty.hcl")
	require.NoError(t, err)
	assert.Nil(t, run.RadialDivisions)
	assert.Nil(t, run.ConcentricDivisions)
	assert.Nil(t, run.Seed)
	assert.Nil(t, run.Iterations)
	assert.Nil(t, run.Frames)
	assert.Nil(t, run.Cells)
}

// TestParse_Errors covers syntax errors, unknown attributes and bad values.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name    string
		src     string
		invalid bool
	}{
		{"Syntax", `radial_divisions = `, false},
		{"UnknownAttribute", `spokes = 4`, false},
		{"WrongType", `cells = "many"`, false},
		{"ZeroRadial", `radial_divisions = 0`, true},
		{"ZeroConcentric", `concentric_divisions = 0`, true},
		{"NegativeFrames", `frames = -1`, true},
		{"NegativeCells", `cells = -3`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.src), "bad.hcl")
			require.Error(t, err)
			if tc.invalid {
				assert.ErrorIs(t, err, ErrInvalidRun)
			}
		})
	}
}

// TestParse_NegativeIterationsIsUnbounded accepts a negative budget.
func TestParse_NegativeIterationsIsUnbounded(t *testing.T) {
	run, err := Parse([]byte(`iterations = -1`), "run.hcl")
	require.NoError(t, err)
	assert.Equal(t, -1, *run.Iterations)
}

// TestLoad reads a run file from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte("radial_divisions = 8\n"), 0o600))

	run, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, run.RadialDivisions)
	assert.Equal(t, 8, *run.RadialDivisions)

	_, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	assert.Error(t, err)
}

package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Built-in defaults: a 5×15 disk, a 6×6 layout of series cells and a
// 200-pull budget per cell.
const (
	DefaultRadial     = 5
	DefaultConcentric = 15
	DefaultIterations = 200
	DefaultFrames     = 36
	DefaultCells      = 36
)

// ErrInvalidRun indicates a run file with out-of-range values.
var ErrInvalidRun = errors.New("config: invalid run file")

// Run is the decoded form of a run file. Nil fields were not set.
type Run struct {
	RadialDivisions     *int   `hcl:"radial_divisions,optional"`
	ConcentricDivisions *int   `hcl:"concentric_divisions,optional"`
	Seed                *int64 `hcl:"seed,optional"`
	Iterations          *int   `hcl:"iterations,optional"`
	Frames              *int   `hcl:"frames,optional"`
	Cells               *int   `hcl:"cells,optional"`
}

// evalContext exposes the defaults to run-file expressions.
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"default_iterations": cty.NumberIntVal(DefaultIterations),
			"default_frames":     cty.NumberIntVal(DefaultFrames),
			"default_cells":      cty.NumberIntVal(DefaultCells),
		},
	}
}

// Load parses and validates the run file at path.
func Load(path string) (*Run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file %s: %w", path, diags)
	}

	return decode(file, path)
}

// Parse is Load for in-memory source; filename is used in diagnostics only.
func Parse(src []byte, filename string) (*Run, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse run file %s: %w", filename, diags)
	}

	return decode(file, filename)
}

func decode(file *hcl.File, filename string) (*Run, error) {
	var run Run
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &run); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode run file %s: %w", filename, diags)
	}
	if err := run.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return &run, nil
}

// Validate checks the values that are set. Division counts must be at least
// 1; frames and cells must be non-negative. Negative iterations mean unbounded.
func (r *Run) Validate() error {
	if r.RadialDivisions != nil && *r.RadialDivisions < 1 {
		return fmt.Errorf("radial_divisions = %d: %w", *r.RadialDivisions, ErrInvalidRun)
	}
	if r.ConcentricDivisions != nil && *r.ConcentricDivisions < 1 {
		return fmt.Errorf("concentric_divisions = %d: %w", *r.ConcentricDivisions, ErrInvalidRun)
	}
	if r.Frames != nil && *r.Frames < 0 {
		return fmt.Errorf("frames = %d: %w", *r.Frames, ErrInvalidRun)
	}
	if r.Cells != nil && *r.Cells < 0 {
		return fmt.Errorf("cells = %d: %w", *r.Cells, ErrInvalidRun)
	}

	return nil
}

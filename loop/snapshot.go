// SPDX-License-Identifier: MIT
// Package: diskloop/loop
//
// snapshot.go - the read-only boundary consumed by renderers and replay
// tooling: a plain Snapshot value plus a YAML stream codec.
//
// Format (one YAML document per snapshot):
//
//	radial_divisions: 5
//	concentric_divisions: 15
//	steps: 2
//	edges:
//	  - start: [0, 3]
//	    end: [1, 3]
//	  - ...
//
// Points are [spoke, ring]. Edge order and orientation are preserved.

package loop

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/diskloop/disk"
)

// EdgeRecord is the serialized form of an Edge.
type EdgeRecord struct {
	Start [2]int `yaml:"start,flow"`
	End   [2]int `yaml:"end,flow"`
}

// Snapshot is an immutable copy of a Cycle's grid and loop.
type Snapshot struct {
	RadialDivisions     int          `yaml:"radial_divisions"`
	ConcentricDivisions int          `yaml:"concentric_divisions"`
	Steps               int          `yaml:"steps"`
	Edges               []EdgeRecord `yaml:"edges"`
}

// Snapshot captures the current grid and loop.
// Complexity: O(|loop|).
func (c *Cycle) Snapshot() Snapshot {
	s := Snapshot{
		RadialDivisions:     c.grid.RadialDivisions(),
		ConcentricDivisions: c.grid.ConcentricDivisions(),
		Steps:               c.steps,
		Edges:               make([]EdgeRecord, len(c.path)),
	}
	for i, e := range c.path {
		s.Edges[i] = EdgeRecord{
			Start: [2]int{e.start.Spoke, e.start.Ring},
			End:   [2]int{e.end.Spoke, e.end.Ring},
		}
	}

	return s
}

// Restore rebuilds a Cycle from s. A snapshot without edges restores an
// unseeded Cycle. Every failure wraps ErrBadSnapshot together with its cause.
// Complexity: O(|edges|).
func Restore(s Snapshot, opts ...Option) (*Cycle, error) {
	g, err := disk.NewGrid(s.RadialDivisions, s.ConcentricDivisions)
	if err != nil {
		return nil, fmt.Errorf("Restore: %w: %w", ErrBadSnapshot, err)
	}
	if s.Steps < 0 {
		return nil, fmt.Errorf("Restore: steps=%d: %w: %w", s.Steps, ErrBadSnapshot, ErrBadCount)
	}
	if len(s.Edges) == 0 {
		return New(g, opts...), nil
	}

	path := make(Path, len(s.Edges))
	for i, rec := range s.Edges {
		start := disk.Point{Spoke: rec.Start[0], Ring: rec.Start[1]}
		end := disk.Point{Spoke: rec.End[0], Ring: rec.End[1]}
		if path[i], err = NewEdge(g, start, end); err != nil {
			return nil, fmt.Errorf("Restore: edge %d: %w: %w", i, ErrBadSnapshot, err)
		}
	}

	c, err := NewFrom(g, path, opts...)
	if err != nil {
		return nil, fmt.Errorf("Restore: %w: %w", ErrBadSnapshot, err)
	}
	c.steps = s.Steps

	return c, nil
}

// WriteYAML encodes snaps as a multi-document YAML stream.
func WriteYAML(w io.Writer, snaps ...Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for i := range snaps {
		if err := enc.Encode(&snaps[i]); err != nil {
			return fmt.Errorf("WriteYAML: snapshot %d: %w", i, err)
		}
	}

	return enc.Close()
}

// ReadYAML decodes every document of a YAML stream written by WriteYAML.
// The snapshots are not validated; pass them to Restore for that.
func ReadYAML(r io.Reader) ([]Snapshot, error) {
	dec := yaml.NewDecoder(r)
	var out []Snapshot
	for {
		var s Snapshot
		err := dec.Decode(&s)
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("ReadYAML: document %d: %w", len(out), err)
		}
		out = append(out, s)
	}
}

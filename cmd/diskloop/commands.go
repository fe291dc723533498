package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diskloop/disk"
	"github.com/katalvlaran/diskloop/internal/config"
	"github.com/katalvlaran/diskloop/loop"
)

// =============================================================================
// seed
// =============================================================================

func newSeedCmd(flags *rootFlags) *cobra.Command {
	var spoke, ring int
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the seed ring through a point",
		Long: `Prints the ring of concentric edges through --spoke/--ring, or through a
random point when neither is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}

			c := loop.New(s.grid, s.options()...)
			if cmd.Flags().Changed("spoke") || cmd.Flags().Changed("ring") {
				if _, err = c.SeedAt(disk.Point{Spoke: spoke, Ring: ring}); err != nil {
					return err
				}
			} else {
				c.Seed()
			}

			s.logger.Info("seeded", "grid", s.grid.String(), "seed", s.seed, "free", len(c.FreeSet()))
			return loop.WriteYAML(cmd.OutOrStdout(), c.Snapshot())
		},
	}
	cmd.Flags().IntVar(&spoke, "spoke", 0, "spoke of the seed point")
	cmd.Flags().IntVar(&ring, "ring", 0, "ring of the seed point")

	return cmd
}

// =============================================================================
// cover
// =============================================================================

func newCoverCmd(flags *rootFlags) *cobra.Command {
	var iterations int
	cmd := &cobra.Command{
		Use:   "cover",
		Short: "Seed a random ring and pull until nothing is free",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			budget := intSetting(cmd, "iterations", iterations, s.run.Iterations)

			c := loop.New(s.grid, s.options()...)
			if _, err = c.CoverContext(cmd.Context(), budget); err != nil {
				return err
			}

			s.logger.Info("cover finished",
				"grid", s.grid.String(), "seed", s.seed,
				"len", c.Len(), "steps", c.Steps(), "pinned", len(c.FreeSet()) == 0)
			return loop.WriteYAML(cmd.OutOrStdout(), c.Snapshot())
		},
	}
	cmd.Flags().IntVar(&iterations, "iterations", loop.Unbounded, "maximum pulls (negative for no limit)")

	return cmd
}

// =============================================================================
// progression
// =============================================================================

func newProgressionCmd(flags *rootFlags) *cobra.Command {
	var frames int
	cmd := &cobra.Command{
		Use:   "progression",
		Short: "Print one snapshot per deformation step of a single loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			n := intSetting(cmd, "frames", frames, s.run.Frames)

			steps, err := loop.Progression(loop.New(s.grid, s.options()...), n)
			if err != nil {
				return err
			}

			s.logger.Info("progression finished", "grid", s.grid.String(), "seed", s.seed, "frames", len(steps))
			return writeCycles(cmd, steps)
		},
	}
	cmd.Flags().IntVar(&frames, "frames", config.DefaultFrames, "number of snapshots")

	return cmd
}

// =============================================================================
// series
// =============================================================================

func newSeriesCmd(flags *rootFlags) *cobra.Command {
	var cells, iterations int
	cmd := &cobra.Command{
		Use:   "series",
		Short: "Run many independent covers in parallel",
		Long: `Runs --cells independent covers, each bounded by --iterations pulls. Cell i
uses seed+i, so a series is reproducible from its seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			n := intSetting(cmd, "cells", cells, s.run.Cells)
			budget := intSetting(cmd, "iterations", iterations, s.run.Iterations)

			covers, err := loop.Series(cmd.Context(), s.grid, n, budget, s.seed, loop.WithLogger(s.logger))
			if err != nil {
				return err
			}

			s.logger.Info("series finished", "grid", s.grid.String(), "seed", s.seed, "cells", len(covers))
			return writeCycles(cmd, covers)
		},
	}
	cmd.Flags().IntVar(&cells, "cells", config.DefaultCells, "number of independent covers")
	cmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "maximum pulls per cover (negative for no limit)")

	return cmd
}

func writeCycles(cmd *cobra.Command, cycles []*loop.Cycle) error {
	snaps := make([]loop.Snapshot, len(cycles))
	for i, c := range cycles {
		snaps[i] = c.Snapshot()
	}
	if err := loop.WriteYAML(cmd.OutOrStdout(), snaps...); err != nil {
		return fmt.Errorf("write snapshots: %w", err)
	}

	return nil
}

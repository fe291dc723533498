package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diskloop/disk"
	"github.com/katalvlaran/diskloop/internal/config"
	"github.com/katalvlaran/diskloop/loop"
)

// rootFlags holds the persistent flags shared by every subcommand.
type rootFlags struct {
	radial     int
	concentric int
	seed       int64
	configPath string
	verbose    bool
}

// session is the resolved state a subcommand runs with: flags first, then the
// run file, then built-in defaults.
type session struct {
	grid   disk.Grid
	seed   int64
	run    *config.Run
	logger *slog.Logger
}

// options returns the Cycle options for this session.
func (s *session) options() []loop.Option {
	return []loop.Option{loop.WithSeed(s.seed), loop.WithLogger(s.logger)}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:   "diskloop",
		Short: "Deform a self-avoiding loop on a discretized disk",
		Long: `diskloop seeds a ring on an annular grid of radial and concentric divisions
and pulls free edges outward or inward until the loop can no longer move.

Every command prints its loops as a YAML snapshot stream on stdout.`,
		SilenceUsage: true,
	}

	pf := root.PersistentFlags()
	pf.IntVarP(&flags.radial, "radial", "r", config.DefaultRadial, "number of radial divisions (spokes)")
	pf.IntVarP(&flags.concentric, "concentric", "c", config.DefaultConcentric, "number of concentric divisions (rings)")
	pf.Int64Var(&flags.seed, "seed", 0, "random seed (default: derived from the clock)")
	pf.StringVar(&flags.configPath, "config", "", "HCL run file")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log every seed and pull")

	root.AddCommand(
		newSeedCmd(flags),
		newCoverCmd(flags),
		newProgressionCmd(flags),
		newSeriesCmd(flags),
	)

	return root
}

// resolve merges flags, the optional run file and defaults into a session.
// Flags set explicitly on the command line win over run-file values.
func (f *rootFlags) resolve(cmd *cobra.Command) (*session, error) {
	run := &config.Run{}
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		run = loaded
	}

	changed := cmd.Flags().Changed
	radial, concentric := f.radial, f.concentric
	if !changed("radial") && run.RadialDivisions != nil {
		radial = *run.RadialDivisions
	}
	if !changed("concentric") && run.ConcentricDivisions != nil {
		concentric = *run.ConcentricDivisions
	}
	g, err := disk.NewGrid(radial, concentric)
	if err != nil {
		return nil, fmt.Errorf("invalid grid: %w", err)
	}

	seed := f.seed
	switch {
	case changed("seed"):
	case run.Seed != nil:
		seed = *run.Seed
	default:
		seed = time.Now().UnixNano()
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return &session{grid: g, seed: seed, run: run, logger: logger}, nil
}

// intSetting picks the flag value when set, else the run-file value, else
// the flag default.
func intSetting(cmd *cobra.Command, name string, flagValue int, fileValue *int) int {
	if !cmd.Flags().Changed(name) && fileValue != nil {
		return *fileValue
	}

	return flagValue
}

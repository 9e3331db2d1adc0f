package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/votesim/internal/config"
	"github.com/san-kum/votesim/internal/logging"
	"github.com/spf13/cobra"
)

var (
	system     string
	candidates []float64
	variance0  float64
	variance1  float64
	weight1    float64

	size    int
	scale   int
	workers int
	palette string

	configFile string
	preset     string
	output     string
	term       bool
	verbose    bool
	showStats  bool

	pixelX, pixelY int
	sweepFrom      float64
	sweepTo        float64
	sweepSteps     int
	benchSizes     []int
)

// main registers the commands and runs the root command, exiting with
// status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "votesim",
		Short: "two-bloc voting rule simulator",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the winner map",
		RunE:  renderMap,
	}
	addParamFlags(renderCmd)
	renderCmd.Flags().StringVarP(&output, "output", "o", "votesim.png", "png output path (empty to skip)")
	renderCmd.Flags().BoolVar(&term, "term", false, "also draw the map in the terminal")
	renderCmd.Flags().BoolVar(&showStats, "metrics", false, "print redraw metrics")

	systemsCmd := &cobra.Command{
		Use:   "systems",
		Short: "list voting systems",
		RunE:  listSystems,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE:  listPresets,
	}

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "share of the map won by each candidate",
		RunE:  winStats,
	}
	addParamFlags(statsCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "electorate and outcome at one pixel",
		RunE:  pixelProfile,
	}
	addParamFlags(profileCmd)
	profileCmd.Flags().IntVar(&pixelX, "x", -1, "pixel column, bloc 1 centre (default centre)")
	profileCmd.Flags().IntVar(&pixelY, "y", -1, "pixel row, bloc 0 centre (default centre)")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "win shares as bloc 1 weight varies",
		RunE:  weightSweep,
	}
	addParamFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&sweepFrom, "from", 0, "first weight")
	sweepCmd.Flags().Float64Var(&sweepTo, "to", 2, "last weight")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 11, "number of weights")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "time full redraws",
		RunE:  benchRedraw,
	}
	addParamFlags(benchCmd)
	benchCmd.Flags().IntSliceVar(&benchSizes, "sizes", []int{50, 100, 200}, "grid sizes")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive parameter editor",
		RunE:  runTUI,
	}
	addParamFlags(tuiCmd)

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved config as yaml",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	addParamFlags(initCmd)

	rootCmd.AddCommand(renderCmd, systemsCmd, presetsCmd, statsCmd, profileCmd,
		sweepCmd, benchCmd, tuiCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&system, "system", config.DefaultSystem, "plurality, approval, borda or hare")
	f.Float64SliceVar(&candidates, "candidates", config.DefaultCandidates, "candidate positions")
	f.Float64Var(&variance0, "variance0", config.DefaultVariance, "bloc 0 spread (standard deviation)")
	f.Float64Var(&variance1, "variance1", config.DefaultVariance, "bloc 1 spread (standard deviation)")
	f.Float64Var(&weight1, "weight1", config.DefaultWeight, "bloc 1 weight relative to bloc 0")
	f.IntVar(&size, "size", config.DefaultSize, "grid size in pixels")
	f.IntVar(&scale, "scale", config.DefaultScale, "png upscale factor")
	f.IntVar(&workers, "workers", config.DefaultWorkers, "rows evaluated concurrently")
	f.StringVar(&palette, "palette", config.DefaultPalette, "paired or set3")
	f.StringVar(&configFile, "config", "", "config file path (yaml)")
	f.StringVar(&preset, "preset", "", "start from a named preset")
}

// resolveConfig applies the preset, then the config file, then any flag set
// on the command line.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Parameters = *p
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("system") {
		cfg.Parameters.System = system
	}
	if flags.Changed("candidates") {
		cfg.Parameters.Candidates = append([]float64(nil), candidates...)
	}
	if flags.Changed("variance0") {
		cfg.Parameters.Variance0 = variance0
	}
	if flags.Changed("variance1") {
		cfg.Parameters.Variance1 = variance1
	}
	if flags.Changed("weight1") {
		cfg.Parameters.Weight1 = weight1
	}
	if flags.Changed("size") {
		cfg.Render.Size = size
	}
	if flags.Changed("scale") {
		cfg.Render.Scale = scale
	}
	if flags.Changed("workers") {
		cfg.Render.Workers = workers
	}
	if flags.Changed("palette") {
		cfg.Render.Palette = palette
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

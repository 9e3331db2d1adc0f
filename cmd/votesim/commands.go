package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/votesim/internal/analysis"
	"github.com/san-kum/votesim/internal/config"
	"github.com/san-kum/votesim/internal/controller"
	"github.com/san-kum/votesim/internal/grid"
	"github.com/san-kum/votesim/internal/metrics"
	"github.com/san-kum/votesim/internal/render"
	"github.com/san-kum/votesim/internal/tui"
	"github.com/san-kum/votesim/internal/voting"
	"github.com/spf13/cobra"
)

var seriesColors = []asciigraph.AnsiColor{
	asciigraph.Blue, asciigraph.DarkOrange, asciigraph.Green, asciigraph.Red,
	asciigraph.Magenta, asciigraph.Cyan, asciigraph.Brown, asciigraph.DeepPink,
	asciigraph.DimGray, asciigraph.Olive, asciigraph.DarkCyan, asciigraph.Yellow,
}

// multiSink presents each frame to every sink in order.
type multiSink []render.PixelSink

func (m multiSink) Present(width, height int, rgba []byte) error {
	for _, s := range m {
		if err := s.Present(width, height, rgba); err != nil {
			return err
		}
	}
	return nil
}

// newController resolves the config and runs the initial redraw.
func newController(cmd *cobra.Command, sink render.PixelSink, opts ...controller.Option) (*controller.Controller, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	opts = append([]controller.Option{controller.WithRender(cfg.Render)}, opts...)
	ctrl, err := controller.New(sink, opts...)
	if err != nil {
		return nil, nil, err
	}
	if err := ctrl.Update(cmd.Context(), config.UpdateFrom(cfg.Parameters)); err != nil {
		return nil, nil, err
	}
	return ctrl, cfg, nil
}

func renderMap(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var sinks multiSink
	if output != "" {
		sinks = append(sinks, render.NewFileSink(output, cfg.Render.Scale))
	}
	if term {
		sinks = append(sinks, render.NewTerminalSink(os.Stdout))
	}

	rec := metrics.NewRecorder()
	start := time.Now()
	if _, cfg, err = newController(cmd, sinks, controller.WithRecorder(rec)); err != nil {
		return err
	}

	p := cfg.Parameters
	fmt.Printf("%s  %dx%d  candidates %v  σ %.3g/%.3g  w1 %.3g  in %v\n",
		p.System, cfg.Render.Size, cfg.Render.Size, p.Candidates,
		p.Variance0, p.Variance1, p.Weight1, time.Since(start).Round(time.Millisecond))
	if output != "" {
		fmt.Printf("wrote %s\n", output)
	}

	if showStats {
		snap, err := rec.Snapshot()
		if err != nil {
			return err
		}
		keys := make([]string, 0, len(snap))
		for k := range snap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("  %s %g\n", k, snap[k])
		}
	}
	return nil
}

func listSystems(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	for _, name := range voting.Systems {
		fmt.Fprintf(w, "%s\t%s\n", name, voting.Describe(name))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSYSTEM\tCANDIDATES\tσ0\tσ1\tW1")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%s\t%v\t%.2f\t%.2f\t%.2f\n",
			name, p.System, p.Candidates, p.Variance0, p.Variance1, p.Weight1)
	}
	return w.Flush()
}

func winStats(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := newController(cmd, render.NewImageSink())
	if err != nil {
		return err
	}

	g := ctrl.Grid()
	n := len(cfg.Parameters.Candidates)
	counts := analysis.WinCounts(g, n)
	shares := analysis.WinShares(g, n)

	fmt.Printf("%s on a %dx%d grid\n\n", cfg.Parameters.System, g.Width, g.Height)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATE\tPOSITION\tCOLOUR\tPIXELS\tSHARE")
	for i, c := range cfg.Parameters.Candidates {
		fmt.Fprintf(w, "%d\t%.3f\t%s\t%d\t%.1f%%\n",
			i, c, ctrl.Palette().Hex(i), counts[i], shares[i]*100)
	}
	return w.Flush()
}

func pixelProfile(cmd *cobra.Command, args []string) error {
	ctrl, cfg, err := newController(cmd, render.NewImageSink())
	if err != nil {
		return err
	}

	x, y := pixelX, pixelY
	if x < 0 {
		x = cfg.Render.Size / 2
	}
	if y < 0 {
		y = cfg.Render.Size / 2
	}

	e, err := ctrl.Explain(x, y)
	if err != nil {
		return err
	}
	p := e.Profile

	fmt.Println(asciigraph.Plot(p.Weights,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("electorate at (%d, %d), positions %.2f..%.2f",
			x, y, p.Positions[0], p.Positions[len(p.Positions)-1])),
	))
	fmt.Printf("\ntotal weight %.4g  mean position %.4f\n\n", p.Total, p.Mean)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "CANDIDATE\tPOSITION\tFIRST CHOICE")
	for i, c := range cfg.Parameters.Candidates {
		share := 0.0
		if p.Total > 0 {
			share = p.FirstChoices[i] / p.Total
		}
		fmt.Fprintf(w, "%d\t%.3f\t%.1f%%\n", i, c, share*100)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if e.Runoff != nil {
		fmt.Println("\nrunoff rounds:")
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ROUND\tTALLIES\tELIMINATED")
		for i, round := range e.Runoff.Rounds {
			fmt.Fprintf(w, "%d\t%s\t%d\n", i+1, formatTallies(round), e.Runoff.Eliminated[i])
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}

	fmt.Printf("\nwinner: %d (%.3f, %s)\n", e.Winner,
		cfg.Parameters.Candidates[e.Winner], cfg.Parameters.System)
	return nil
}

func formatTallies(t []float64) string {
	s := ""
	for i, v := range t {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%.3g", v)
	}
	return s
}

func weightSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	p := cfg.Parameters

	rule, err := voting.NewRegistry(voting.NewInterner()).Get(p.System)
	if err != nil {
		return err
	}
	gc := grid.Config{
		Size:      cfg.Render.Size,
		Variance0: p.Variance0,
		Variance1: p.Variance1,
		Weight1:   p.Weight1,
		Workers:   cfg.Render.Workers,
	}

	points, err := analysis.WeightSweep(cmd.Context(), rule, p.Candidates, gc, sweepFrom, sweepTo, sweepSteps)
	if err != nil {
		return err
	}

	series := make([][]float64, len(p.Candidates))
	legends := make([]string, len(p.Candidates))
	for i := range series {
		series[i] = make([]float64, len(points))
		for j, pt := range points {
			series[i][j] = pt.Shares[i] * 100
		}
		legends[i] = fmt.Sprintf("%d (%.2f)", i, p.Candidates[i])
	}

	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(80),
		asciigraph.SeriesColors(seriesColors[:len(series)]...),
		asciigraph.SeriesLegends(legends...),
		asciigraph.Caption(fmt.Sprintf("%s win share %% for w1 %.2f..%.2f", p.System, sweepFrom, sweepTo)),
	))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "W1")
	for i := range p.Candidates {
		fmt.Fprintf(w, "\t%d", i)
	}
	fmt.Fprintln(w)
	for _, pt := range points {
		fmt.Fprintf(w, "%.3f", pt.Weight)
		for _, s := range pt.Shares {
			fmt.Fprintf(w, "\t%.1f%%", s*100)
		}
		fmt.Fprintln(w)
	}
	return w.Flush()
}

func benchRedraw(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tSYSTEM\tWORKERS\tELAPSED\tPIXELS/S")
	for _, s := range benchSizes {
		rc := cfg.Render
		rc.Size = s

		ctrl, err := controller.New(render.NewImageSink(), controller.WithRender(rc))
		if err != nil {
			return err
		}
		start := time.Now()
		if err := ctrl.Update(cmd.Context(), config.UpdateFrom(cfg.Parameters)); err != nil {
			return err
		}
		elapsed := time.Since(start)

		fmt.Fprintf(w, "%d\t%s\t%d\t%v\t%.0f\n", s, cfg.Parameters.System, rc.Workers,
			elapsed.Round(time.Microsecond), float64(s*s)/elapsed.Seconds())
	}
	return w.Flush()
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !cmd.Flags().Changed("size") {
		if err := cmd.Flags().Set("size", "48"); err != nil {
			return err
		}
	}

	sink := render.NewTerminalSink(nil)
	ctrl, _, err := newController(cmd, sink)
	if err != nil {
		return err
	}
	return tui.Run(ctrl, sink)
}

func initConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(args[0], cfg); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

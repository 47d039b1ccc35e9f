package main

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/spirosim/internal/analysis"
	"github.com/san-kum/spirosim/internal/audio"
	"github.com/san-kum/spirosim/internal/config"
	"github.com/san-kum/spirosim/internal/export"
	"github.com/san-kum/spirosim/internal/gui"
	"github.com/san-kum/spirosim/internal/metrics"
	"github.com/san-kum/spirosim/internal/sim"
	"github.com/san-kum/spirosim/internal/spiro"
	"github.com/san-kum/spirosim/internal/viz"
)

func runLive(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// The model refits the screen ratio to its canvas.
	s, err := cfg.Build(1)
	if err != nil {
		return err
	}

	model := viz.NewModel(s, viz.Options{
		Name:          name,
		FrameInterval: cfg.FrameDuration(),
		TicksPerFrame: speed,
		Palette:       cfg.Color.Palette,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("live view: %w", err)
	}
	return nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	s, err := cfg.Build(cfg.ScreenRatio())
	if err != nil {
		return err
	}

	log.Info("opening window", "preset", name, "width", cfg.Window.Width, "height", cfg.Window.Height)
	return gui.Run(s, gui.Options{
		Title:         "spirosim: " + name,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		FrameInterval: cfg.FrameDuration(),
		Palette:       cfg.Color.Palette,
	})
}

// simulate builds a spirograph for the window's ratio and runs it headless
// with the standard metrics attached.
func simulate(cmd *cobra.Command) (*sim.Runner, *sim.Result, *config.Config, string, error) {
	cfg, name, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, "", err
	}
	ratio := cfg.ScreenRatio()
	s, err := cfg.Build(ratio)
	if err != nil {
		return nil, nil, nil, "", err
	}

	runner := sim.New(s)
	runner.AddMetric(metrics.NewPathLength())
	runner.AddMetric(metrics.NewExtent(cfg.Curve.CenterX, cfg.Curve.CenterY/ratio))
	runner.AddMetric(metrics.NewCoverage(32))

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	log.Debug("running", "preset", name, "ticks", ticks)
	start := time.Now()
	result, err := runner.Run(ctx, ticks)
	if err != nil {
		return nil, nil, nil, "", fmt.Errorf("simulation failed: %w", err)
	}
	log.Debug("run finished", "elapsed", time.Since(start))
	return runner, result, cfg, name, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runHeadless(cmd *cobra.Command, args []string) error {
	runner, result, cfg, name, err := simulate(cmd)
	if err != nil {
		return err
	}
	s := runner.Spirograph()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "curve\t%s\n", name)
	fmt.Fprintf(w, "ticks\t%d\n", result.Ticks)
	fmt.Fprintf(w, "trail\t%d/%d\n", s.Trail().Len(), s.Trail().Capacity())
	for _, key := range []string{"path_length", "extent", "coverage"} {
		fmt.Fprintf(w, "%s\t%.4f\n", key, result.Metrics[key])
	}
	writeClosure(w, cfg.CurveParams(cfg.ScreenRatio()))
	return w.Flush()
}

func writeClosure(w *tabwriter.Writer, p spiro.CurveParams) {
	c, err := analysis.Closure(p, 1000)
	switch {
	case err != nil:
		fmt.Fprintf(w, "closure\t%v\n", err)
	case !c.Closed:
		fmt.Fprintf(w, "closure\topen (irrational radius ratio)\n")
	default:
		fmt.Fprintf(w, "lobes\t%d\n", c.Lobes)
		fmt.Fprintf(w, "revolutions\t%d\n", c.Revolutions)
		fmt.Fprintf(w, "period\t%.0f ticks\n", c.Ticks)
	}
}

func runPlot(cmd *cobra.Command, args []string) error {
	_, result, _, name, err := simulate(cmd)
	if err != nil {
		return err
	}

	for _, series := range []struct {
		caption string
		data    []float64
	}{
		{name + ": x(t)", result.X()},
		{name + ": y(t)", result.Y()},
	} {
		graph := asciigraph.Plot(series.data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(series.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if topBins < 1 {
		return fmt.Errorf("--bins must be positive, got %d", topBins)
	}
	_, result, cfg, name, err := simulate(cmd)
	if err != nil {
		return err
	}
	p := cfg.CurveParams(cfg.ScreenRatio())

	fmt.Printf("Frequency analysis for %s (%d ticks)\n\n", name, result.Ticks)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BIN\tCYCLES/TICK\tMAGNITUDE")
	for _, b := range analysis.DominantBins(analysis.Spectrum(result.X()), topBins) {
		fmt.Fprintf(w, "%d\t%.5f\t%.3f\n", b.Index, b.Frequency, b.Magnitude)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "carrier\t%.5f cycles/tick\n", p.DeltaPhi/(2*math.Pi))
	fmt.Fprintf(w, "pen\t%.5f cycles/tick\n", p.DeltaPsi()/(2*math.Pi))
	writeClosure(w, p)
	if err := w.Flush(); err != nil {
		return err
	}

	if portrait {
		fmt.Println()
		fmt.Print(analysis.Portrait(result.Points, 72, 24))
	}
	return nil
}

func runScope(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	scope, err := audio.NewScope(cfg.CurveParams(1), frequency, volume)
	if err != nil {
		return err
	}
	scope.Cutoff = cutoff

	if err := scope.Start(); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	defer scope.Stop()

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()
	if playFor > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, playFor)
		defer cancel()
	}
	fmt.Println("playing; press Ctrl+C to stop")
	<-ctx.Done()
	return nil
}

func runExportSVG(cmd *cobra.Command, args []string) error {
	runner, result, cfg, _, err := simulate(cmd)
	if err != nil {
		return err
	}

	var svg string
	if asPath {
		svg = export.PathToSVG(result.Points, cfg.Window.Width, cfg.Window.Height, "#00ff88")
	} else {
		svg = export.TrailToSVG(runner.Spirograph().Trail().Vertices(), cfg.Window.Width, cfg.Window.Height, dotRadius)
	}
	return writeText(svg + "\n")
}

func runExportPNG(cmd *cobra.Command, args []string) error {
	runner, _, cfg, name, err := simulate(cmd)
	if err != nil {
		return err
	}
	if outPath == "" {
		return fmt.Errorf("export-png needs --out")
	}
	label := ""
	if caption {
		label = name
	}
	verts := runner.Spirograph().Trail().Vertices()
	if err := export.SavePNG(outPath, verts, cfg.Window.Width, cfg.Window.Height, dotRadius, label); err != nil {
		return fmt.Errorf("export png: %w", err)
	}
	log.Info("wrote image", "path", outPath, "vertices", len(verts))
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	runner, _, _, _, err := simulate(cmd)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := export.WriteCSV(&buf, runner.Spirograph().Trail().Vertices()); err != nil {
		return err
	}
	return deliver(buf.String())
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	runner, result, _, name, err := simulate(cmd)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	data := export.NewExportData(name, runner.Spirograph(), result.Metrics)
	if err := export.WriteJSON(&buf, data); err != nil {
		return err
	}
	return deliver(buf.String())
}

// deliver sends text to the clipboard when requested, else to the output.
func deliver(text string) error {
	if toClipboard {
		if err := export.ToClipboard(text); err != nil {
			return fmt.Errorf("clipboard: %w", err)
		}
		log.Info("copied to clipboard", "bytes", len(text))
		return nil
	}
	return writeText(text)
}

func writeText(text string) error {
	f, closeFn, err := output()
	if err != nil {
		return err
	}
	if _, err := f.WriteString(text); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tKIND\tBASE\tROLLING\tPEN\tLOBES")
	for _, name := range config.ListPresets() {
		cfg := config.GetPreset(name)
		kind := "hypo"
		if cfg.Curve.Epicycloid {
			kind = "epi"
		}
		lobes := "-"
		if c, err := analysis.Closure(cfg.CurveParams(1), 1000); err == nil && c.Closed {
			lobes = fmt.Sprintf("%d", c.Lobes)
		}
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%s\n",
			name, kind, cfg.Curve.BaseRadius, cfg.Curve.RollingRadius, cfg.Curve.PenRadius, lobes)
	}
	return w.Flush()
}

func listPalettes(cmd *cobra.Command, args []string) error {
	fmt.Println(strings.Join(spiro.PaletteNames(), "\n"))
	return nil
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/spirosim/internal/config"
)

type curveFlags struct {
	base, rolling, pen float64
	epi                bool
	dphi               float64
	capacity           int
	palette            string
}

var (
	curve       curveFlags
	ticks       int
	speed       int
	outPath     string
	topBins     int
	portrait    bool
	frequency   float64
	volume      float64
	cutoff      float64
	dotRadius   float64
	asPath      bool
	caption     bool
	toClipboard bool
	playFor     time.Duration
)

func addCurveFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64Var(&curve.base, "base", config.DefaultBaseRadius, "base circle radius")
	f.Float64Var(&curve.rolling, "rolling", config.DefaultRollingRadius, "rolling circle radius")
	f.Float64Var(&curve.pen, "pen", config.DefaultPenRadius, "pen distance from the rolling centre")
	f.BoolVar(&curve.epi, "epi", false, "roll outside the base circle (epicycloid)")
	f.Float64Var(&curve.dphi, "dphi", config.DefaultDeltaPhi, "carrier angle step per tick (rad)")
	f.IntVar(&curve.capacity, "capacity", config.DefaultCapacity, "trail length")
	f.StringVar(&curve.palette, "palette", "", "colour palette")
}

func addTickFlag(cmd *cobra.Command) {
	cmd.Flags().IntVar(&ticks, "ticks", 1000, "curve steps to run")
}

func addOutFlag(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
}

// resolveConfig layers the preset, then the config file, then any flag the
// user set explicitly. It also returns a display name for the curve.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	cfg := config.DefaultConfig()
	name := "custom"

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, "", fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg, name = p, preset
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, "", fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Curve.BaseRadius = curve.base
	}
	if flags.Changed("rolling") {
		cfg.Curve.RollingRadius = curve.rolling
	}
	if flags.Changed("pen") {
		cfg.Curve.PenRadius = curve.pen
	}
	if flags.Changed("epi") {
		cfg.Curve.Epicycloid = curve.epi
	}
	if flags.Changed("dphi") {
		cfg.Curve.DeltaPhi = curve.dphi
	}
	if flags.Changed("capacity") {
		cfg.Capacity = curve.capacity
	}
	if flags.Changed("palette") {
		cfg.Color.Palette = curve.palette
	}

	return cfg, name, nil
}

// output opens outPath, or stdout when it is empty.
func output() (*os.File, func() error, error) {
	if outPath == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(outPath)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

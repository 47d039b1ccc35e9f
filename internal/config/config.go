package config

import (
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/spirosim/internal/spiro"
)

const (
	DefaultBaseRadius    = 0.4
	DefaultRollingRadius = 0.35
	DefaultPenRadius     = 0.1
	DefaultDeltaPhi      = 0.05
	DefaultCapacity      = 500
	DefaultFrameInterval = 0.02
	DefaultWidth         = 800
	DefaultHeight        = 600
	DefaultPalette       = "fade"
)

type Config struct {
	Curve         CurveConfig  `yaml:"curve"`
	Capacity      int          `yaml:"capacity"`
	FrameInterval float64      `yaml:"frame_interval"`
	Window        WindowConfig `yaml:"window"`
	Color         ColorConfig  `yaml:"color"`
}

type CurveConfig struct {
	BaseRadius    float64 `yaml:"base_radius"`
	RollingRadius float64 `yaml:"rolling_radius"`
	PenRadius     float64 `yaml:"pen_radius"`
	CenterX       float64 `yaml:"center_x"`
	CenterY       float64 `yaml:"center_y"`
	Epicycloid    bool    `yaml:"epicycloid"`
	Phi0          float64 `yaml:"phi0"`
	Psi0          float64 `yaml:"psi0"`
	DeltaPhi      float64 `yaml:"delta_phi"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ColorConfig selects the trail colour mode. Palette wins over Stops,
// Stops wins over Static.
type ColorConfig struct {
	Palette string    `yaml:"palette,omitempty"`
	Static  string    `yaml:"static,omitempty"`
	Stops   []string  `yaml:"stops,omitempty"`
	Ratios  []float64 `yaml:"ratios,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Curve: CurveConfig{
			BaseRadius:    DefaultBaseRadius,
			RollingRadius: DefaultRollingRadius,
			PenRadius:     DefaultPenRadius,
			DeltaPhi:      DefaultDeltaPhi,
		},
		Capacity:      DefaultCapacity,
		FrameInterval: DefaultFrameInterval,
		Window: WindowConfig{
			Width:  DefaultWidth,
			Height: DefaultHeight,
		},
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base: keys absent from the file
// keep base's values. A color section in the file replaces base's colour
// settings whole, since palette, stops and static are alternatives.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	cfg.Color.Stops = append([]string(nil), base.Color.Stops...)
	cfg.Color.Ratios = append([]float64(nil), base.Color.Ratios...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	var file struct {
		Color *ColorConfig `yaml:"color"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if file.Color != nil {
		cfg.Color = *file.Color
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ScreenRatio is the window height/width used to keep the curve isotropic.
func (c *Config) ScreenRatio() float64 {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return 1.0
	}
	return float64(c.Window.Height) / float64(c.Window.Width)
}

func (c *Config) FrameDuration() time.Duration {
	interval := c.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return time.Duration(math.Round(interval * float64(time.Second)))
}

// CurveParams converts the curve section for a viewport of the given ratio.
func (c *Config) CurveParams(screenRatio float64) spiro.CurveParams {
	return spiro.CurveParams{
		BaseRadius:    c.Curve.BaseRadius,
		RollingRadius: c.Curve.RollingRadius,
		PenRadius:     c.Curve.PenRadius,
		CenterX:       c.Curve.CenterX,
		CenterY:       c.Curve.CenterY,
		Epicycloid:    c.Curve.Epicycloid,
		Phi0:          c.Curve.Phi0,
		Psi0:          c.Curve.Psi0,
		DeltaPhi:      c.Curve.DeltaPhi,
		ScreenRatio:   screenRatio,
	}
}

func (c *Config) SpiroConfig(screenRatio float64) spiro.Config {
	return spiro.Config{
		Curve:    c.CurveParams(screenRatio),
		Capacity: c.Capacity,
	}
}

// ColorMode resolves the colour section into a trail colour mode.
func (c *Config) ColorMode() (spiro.ColorMode, error) {
	switch {
	case c.Color.Palette != "":
		return spiro.Palette(c.Color.Palette)
	case len(c.Color.Stops) > 0:
		stops := make([]colorful.Color, len(c.Color.Stops))
		for i, s := range c.Color.Stops {
			col, err := parseHex("color.stops", s)
			if err != nil {
				return nil, err
			}
			stops[i] = col
		}
		g := spiro.Gradient{Stops: stops, Ratios: c.Color.Ratios}
		if err := g.Validate(); err != nil {
			return nil, err
		}
		return g, nil
	case c.Color.Static != "":
		col, err := parseHex("color.static", c.Color.Static)
		if err != nil {
			return nil, err
		}
		return spiro.StaticColor{Color: col}, nil
	default:
		return spiro.Palette(DefaultPalette)
	}
}

// Build constructs a started Spirograph with the configured colour mode.
func (c *Config) Build(screenRatio float64) (*spiro.Spirograph, error) {
	s, err := spiro.New(c.SpiroConfig(screenRatio))
	if err != nil {
		return nil, err
	}
	mode, err := c.ColorMode()
	if err != nil {
		return nil, err
	}
	if err := s.SetColorMode(mode); err != nil {
		return nil, err
	}
	s.Start()
	return s, nil
}

func parseHex(param, s string) (colorful.Color, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, &spiro.ParamError{Param: param, Value: s, Err: spiro.ErrInvalidParameter}
	}
	return col, nil
}

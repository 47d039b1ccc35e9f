package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Curve:    CurveConfig{BaseRadius: 0.4, RollingRadius: 0.35, PenRadius: 0.1, DeltaPhi: 0.05},
		Capacity: 500, FrameInterval: 0.02,
		Color: ColorConfig{Palette: "fade"},
	},
	"deltoid": {
		Curve:    CurveConfig{BaseRadius: 0.6, RollingRadius: 0.2, PenRadius: 0.2, DeltaPhi: 0.03},
		Capacity: 300, FrameInterval: 0.02,
		Color: ColorConfig{Palette: "fire"},
	},
	"astroid": {
		Curve:    CurveConfig{BaseRadius: 0.6, RollingRadius: 0.15, PenRadius: 0.15, DeltaPhi: 0.03},
		Capacity: 300, FrameInterval: 0.02,
		Color: ColorConfig{Palette: "ocean"},
	},
	"rose": {
		Curve:    CurveConfig{BaseRadius: 0.5, RollingRadius: 0.3, PenRadius: 0.4, DeltaPhi: 0.04},
		Capacity: 800, FrameInterval: 0.02,
		Color: ColorConfig{Palette: "rainbow"},
	},
	"cardioid": {
		Curve:    CurveConfig{BaseRadius: 0.3, RollingRadius: 0.3, PenRadius: 0.3, Epicycloid: true, DeltaPhi: 0.04},
		Capacity: 200, FrameInterval: 0.02,
		Color: ColorConfig{Stops: []string{"#ff0000", "#000000"}, Ratios: []float64{1}},
	},
	"nephroid": {
		Curve:    CurveConfig{BaseRadius: 0.4, RollingRadius: 0.2, PenRadius: 0.2, Epicycloid: true, DeltaPhi: 0.04},
		Capacity: 200, FrameInterval: 0.02,
		Color: ColorConfig{Palette: "neon"},
	},
	"spiral": {
		Curve:    CurveConfig{BaseRadius: 0.35, RollingRadius: 0.1, PenRadius: 0.25, Epicycloid: true, DeltaPhi: 0.02},
		Capacity: 1000, FrameInterval: 0.02,
		Color: ColorConfig{Static: "#008000"},
	},
}

// GetPreset returns a copy of the named preset with window defaults filled in.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Color.Stops = append([]string(nil), p.Color.Stops...)
	cfg.Color.Ratios = append([]float64(nil), p.Color.Ratios...)
	if cfg.Window.Width == 0 || cfg.Window.Height == 0 {
		cfg.Window = WindowConfig{Width: DefaultWidth, Height: DefaultHeight}
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

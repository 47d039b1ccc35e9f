package spiro

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"
)

// Palettes are the built-in colour modes, selectable by name.
var Palettes = map[string]ColorMode{
	"fade":  Fade(RGB(1, 1, 1)),
	"green": StaticColor{Color: RGB(0, 0.5, 0)},
	"fire": Gradient{
		Stops:  []colorful.Color{RGB(1, 1, 0.6), RGB(1, 0.55, 0), RGB(0.7, 0, 0), RGB(0, 0, 0)},
		Ratios: []float64{1, 2, 3},
	},
	"ocean": Gradient{
		Stops:  []colorful.Color{RGB(0.6, 1, 1), RGB(0, 0.66, 0.8), RGB(0, 0.1, 0.2)},
		Ratios: []float64{1, 2},
	},
	"rainbow": Gradient{
		Stops: []colorful.Color{
			RGB(1, 0, 0), RGB(1, 0.5, 0), RGB(1, 1, 0), RGB(0, 1, 0),
			RGB(0, 0.5, 1), RGB(0.3, 0, 0.6), RGB(0.1, 0, 0.15),
		},
		Ratios: []float64{1, 1, 1, 1, 1, 1},
	},
	"neon": Gradient{
		Stops:  []colorful.Color{RGB(1, 0, 1), RGB(0, 1, 1), RGB(0.05, 0.05, 0.2)},
		Ratios: []float64{1, 1},
	},
}

// Palette looks up a built-in colour mode.
func Palette(name string) (ColorMode, error) {
	mode, ok := Palettes[name]
	if !ok {
		return nil, invalid("palette", name)
	}
	return mode, nil
}

// PaletteNames lists the built-in palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(Palettes))
	for name := range Palettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package spiro

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode builds the age-to-colour table of a trail.
// Implemented by StaticColor and Gradient.
type ColorMode interface {
	table(n int) ([]colorful.Color, error)
}

// RGB builds a linear RGB colour from components in [0, 1].
func RGB(r, g, b float64) colorful.Color {
	return colorful.Color{R: r, G: g, B: b}
}

// StaticColor paints every age with one colour.
type StaticColor struct {
	Color colorful.Color
}

func (s StaticColor) table(n int) ([]colorful.Color, error) {
	t := make([]colorful.Color, n)
	for i := range t {
		t[i] = s.Color
	}
	return t, nil
}

// Gradient is a piecewise-linear ramp over normalized age. Ratios[k] is the
// relative width of the segment between Stops[k] and Stops[k+1].
type Gradient struct {
	Stops  []colorful.Color
	Ratios []float64
}

// Validate checks stop/ratio consistency and ratio signs.
func (g Gradient) Validate() error {
	if len(g.Stops) == 0 {
		return invalid("stops", 0)
	}
	if len(g.Ratios) != len(g.Stops)-1 {
		return invalid("ratios", len(g.Ratios))
	}
	for _, r := range g.Ratios {
		if !(r > 0) || math.IsInf(r, 0) {
			return invalid("ratio", r)
		}
	}
	return nil
}

func (g Gradient) table(n int) ([]colorful.Color, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if len(g.Ratios) == 0 {
		return StaticColor{Color: g.Stops[0]}.table(n)
	}

	// Scale by the largest ratio first so the sum cannot overflow.
	peak := 0.0
	for _, r := range g.Ratios {
		peak = math.Max(peak, r)
	}
	sum := 0.0
	for _, r := range g.Ratios {
		sum += r / peak
	}
	norm := make([]float64, len(g.Ratios))
	for i, r := range g.Ratios {
		norm[i] = r / peak / sum
	}

	t := make([]colorful.Color, n)
	for age := range t {
		t[age] = g.at(float64(age)/float64(n), norm)
	}
	return t, nil
}

// at locates the segment containing pos and interpolates inside it.
func (g Gradient) at(pos float64, norm []float64) colorful.Color {
	acc := 0.0
	last := len(norm) - 1
	for k, w := range norm {
		if pos < acc+w || k == last {
			local := 1.0
			if w > 0 {
				local = (pos - acc) / w
			}
			if local > 1 {
				local = 1
			}
			return g.Stops[k].BlendRgb(g.Stops[k+1], local)
		}
		acc += w
	}
	return g.Stops[len(g.Stops)-1]
}

// Fade is the two-stop ramp from c to black.
func Fade(c colorful.Color) Gradient {
	return Gradient{
		Stops:  []colorful.Color{c, RGB(0, 0, 0)},
		Ratios: []float64{1},
	}
}

package spiro

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func near(a, b colorful.Color, tol float64) bool {
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol && math.Abs(a.B-b.B) <= tol
}

func TestStaticColorFill(t *testing.T) {
	tr, _ := NewTrail(64)
	c := RGB(0.2, 0.4, 0.6)
	if err := tr.SetColorMode(StaticColor{Color: c}); err != nil {
		t.Fatalf("set color mode: %v", err)
	}
	for age := 0; age < tr.Capacity(); age++ {
		if tr.ColorAt(age) != c {
			t.Fatalf("age %d: expected %v, got %v", age, c, tr.ColorAt(age))
		}
	}
}

func TestGradientTwoStops(t *testing.T) {
	tr, _ := NewTrail(10)
	red, black := RGB(1, 0, 0), RGB(0, 0, 0)
	if err := tr.SetColorMode(Gradient{Stops: []colorful.Color{red, black}, Ratios: []float64{1.0}}); err != nil {
		t.Fatalf("set color mode: %v", err)
	}

	if tr.ColorAt(0) != red {
		t.Errorf("expected age 0 to be red, got %v", tr.ColorAt(0))
	}
	if want := RGB(0.1, 0, 0); !near(tr.ColorAt(9), want, 1e-9) {
		t.Errorf("expected age 9 ~%v, got %v", want, tr.ColorAt(9))
	}
	for age := 1; age < 10; age++ {
		if tr.ColorAt(age).R >= tr.ColorAt(age-1).R {
			t.Fatalf("expected red to fade with age at %d", age)
		}
	}
}

func TestGradientSegments(t *testing.T) {
	tr, _ := NewTrail(8)
	a, b, c := RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)
	if err := tr.SetColorMode(Gradient{Stops: []colorful.Color{a, b, c}, Ratios: []float64{1, 3}}); err != nil {
		t.Fatalf("set color mode: %v", err)
	}

	tests := []struct {
		age  int
		want colorful.Color
	}{
		{0, a},
		{1, RGB(0.5, 0.5, 0)},
		{2, b},
		{5, RGB(0, 0.5, 0.5)},
	}
	for _, tt := range tests {
		if got := tr.ColorAt(tt.age); !near(got, tt.want, 1e-9) {
			t.Errorf("age %d: expected %v, got %v", tt.age, tt.want, got)
		}
	}
	if last := tr.ColorAt(7); !near(last, RGB(0, 1.0/6, 5.0/6), 1e-9) {
		t.Errorf("age 7: unexpected %v", last)
	}
}

func TestGradientSingleStop(t *testing.T) {
	tr, _ := NewTrail(5)
	c := RGB(0.3, 0.3, 0.9)
	if err := tr.SetColorMode(Gradient{Stops: []colorful.Color{c}}); err != nil {
		t.Fatalf("set color mode: %v", err)
	}
	for age := 0; age < 5; age++ {
		if tr.ColorAt(age) != c {
			t.Errorf("age %d: expected static %v, got %v", age, c, tr.ColorAt(age))
		}
	}
}

func TestGradientHugeRatios(t *testing.T) {
	g := Gradient{
		Stops:  []colorful.Color{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)},
		Ratios: []float64{1e308, 1e308},
	}
	tr, _ := NewTrail(10)
	if err := tr.SetColorMode(g); err != nil {
		t.Fatal(err)
	}
	for age := 0; age < tr.Capacity(); age++ {
		c := tr.ColorAt(age)
		if math.IsNaN(c.R) || math.IsNaN(c.G) || math.IsNaN(c.B) {
			t.Fatalf("age %d: NaN colour %v", age, c)
		}
	}
	if !near(tr.ColorAt(0), RGB(1, 0, 0), 1e-9) {
		t.Errorf("age 0: expected first stop, got %v", tr.ColorAt(0))
	}
	if !near(tr.ColorAt(5), RGB(0, 1, 0), 1e-9) {
		t.Errorf("age 5: expected middle stop, got %v", tr.ColorAt(5))
	}
}

func TestGradientInvalidKeepsTable(t *testing.T) {
	stops := []colorful.Color{RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)}
	tests := []struct {
		name string
		mode ColorMode
	}{
		{"negative ratio", Gradient{Stops: stops, Ratios: []float64{1.0, -0.5}}},
		{"zero ratio", Gradient{Stops: stops, Ratios: []float64{0, 1}}},
		{"nan ratio", Gradient{Stops: stops, Ratios: []float64{math.NaN(), 1}}},
		{"too few ratios", Gradient{Stops: stops, Ratios: []float64{1}}},
		{"too many ratios", Gradient{Stops: stops[:2], Ratios: []float64{1, 1}}},
		{"no stops", Gradient{}},
		{"nil mode", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := NewTrail(16)
			if err := tr.SetColorMode(StaticColor{Color: RGB(0, 0.5, 0)}); err != nil {
				t.Fatal(err)
			}

			err := tr.SetColorMode(tt.mode)
			if !errors.Is(err, ErrInvalidParameter) {
				t.Fatalf("expected ErrInvalidParameter, got %v", err)
			}
			for age := 0; age < tr.Capacity(); age++ {
				if tr.ColorAt(age) != RGB(0, 0.5, 0) {
					t.Fatalf("age %d: table modified by failed call", age)
				}
			}
		})
	}
}

func TestColorModeAppliesOnNextPush(t *testing.T) {
	tr, _ := NewTrail(4)
	tr.Push(Point{})
	tr.Push(Point{})

	blue := RGB(0, 0, 1)
	if err := tr.SetColorMode(StaticColor{Color: blue}); err != nil {
		t.Fatal(err)
	}
	tr.Push(Point{})

	for i, v := range tr.Vertices() {
		if v.Color() != blue {
			t.Errorf("vertex %d: expected blue after push, got %v", i, v.Color())
		}
	}
}

func TestPalettes(t *testing.T) {
	names := PaletteNames()
	if len(names) != len(Palettes) {
		t.Fatalf("expected %d names, got %d", len(Palettes), len(names))
	}
	for _, name := range names {
		mode, err := Palette(name)
		if err != nil {
			t.Fatalf("palette %s: %v", name, err)
		}
		for _, capacity := range []int{1, 7, MaxCapacity} {
			tr, _ := NewTrail(capacity)
			if err := tr.SetColorMode(mode); err != nil {
				t.Errorf("palette %s at capacity %d: %v", name, capacity, err)
			}
		}
	}

	if _, err := Palette("nonexistent"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("expected ErrInvalidParameter for unknown palette, got %v", err)
	}
}

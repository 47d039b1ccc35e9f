package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/spirosim/internal/spiro"
)

func TestPathLength(t *testing.T) {
	m := NewPathLength()
	if m.Name() != "path_length" {
		t.Errorf("unexpected name %s", m.Name())
	}

	for _, p := range []spiro.Point{{X: 0, Y: 0}, {X: 3, Y: 4}, {X: 3, Y: 0}} {
		m.Observe(p)
	}
	if m.Value() != 9 {
		t.Errorf("expected length 9, got %f", m.Value())
	}

	m.Reset()
	m.Observe(spiro.Point{X: 10, Y: 10})
	if m.Value() != 0 {
		t.Errorf("expected 0 after reset and single point, got %f", m.Value())
	}
}

func TestPathLengthCircle(t *testing.T) {
	// Pen at the rolling centre of a radius-0.5 orbit traces a circle.
	s, err := spiro.New(spiro.Config{
		Curve:    spiro.CurveParams{BaseRadius: 0.7, RollingRadius: 0.2, DeltaPhi: 2 * math.Pi / 1000, ScreenRatio: 1},
		Capacity: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	m := NewPathLength()
	for i := 0; i <= 1000; i++ {
		m.Observe(s.Tick())
	}
	if math.Abs(m.Value()-math.Pi) > 1e-3 {
		t.Errorf("expected circumference ~%f, got %f", math.Pi, m.Value())
	}
}

func TestExtent(t *testing.T) {
	e := NewExtent(0, 0)
	e.Observe(spiro.Point{X: 0.3, Y: 0.4})
	e.Observe(spiro.Point{X: 0.1, Y: 0})
	if math.Abs(e.Value()-0.5) > 1e-12 {
		t.Errorf("expected extent 0.5, got %f", e.Value())
	}
	e.Reset()
	if e.Value() != 0 {
		t.Error("reset did not clear extent")
	}
}

func TestCoverage(t *testing.T) {
	c := NewCoverage(4)
	c.Observe(spiro.Point{X: -0.9, Y: -0.9})
	c.Observe(spiro.Point{X: -0.8, Y: -0.8})
	c.Observe(spiro.Point{X: 0.9, Y: 0.9})
	c.Observe(spiro.Point{X: 5, Y: 5})

	if want := 2.0 / 16; c.Value() != want {
		t.Errorf("expected coverage %f, got %f", want, c.Value())
	}
	c.Reset()
	if c.Value() != 0 {
		t.Error("reset did not clear coverage")
	}
}

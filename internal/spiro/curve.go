package spiro

import "math"

const twoPi = 2 * math.Pi

// Point is a traced pen position in normalized display space.
type Point struct {
	X, Y float64
}

// CurveParams defines the rolling-circle geometry and stepping.
type CurveParams struct {
	BaseRadius    float64
	RollingRadius float64
	PenRadius     float64
	CenterX       float64
	CenterY       float64
	// Epicycloid selects a rolling circle outside the base circle;
	// false rolls it inside (hypocycloid).
	Epicycloid bool
	Phi0       float64
	Psi0       float64
	DeltaPhi   float64
	// ScreenRatio is the viewport height/width. The y axis is divided by it
	// so the curve stays isotropic on non-square viewports.
	ScreenRatio float64
}

// DefaultCurveParams returns the classic hypocycloid used across presets.
func DefaultCurveParams() CurveParams {
	return CurveParams{
		BaseRadius:    0.4,
		RollingRadius: 0.35,
		PenRadius:     0.1,
		DeltaPhi:      0.05,
		ScreenRatio:   1.0,
	}
}

// Validate reports the first parameter outside its valid range.
func (p CurveParams) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"base_radius", p.BaseRadius},
		{"rolling_radius", p.RollingRadius},
		{"pen_radius", p.PenRadius},
		{"center_x", p.CenterX},
		{"center_y", p.CenterY},
		{"phi0", p.Phi0},
		{"psi0", p.Psi0},
		{"delta_phi", p.DeltaPhi},
		{"screen_ratio", p.ScreenRatio},
	}
	for _, c := range checks {
		if math.IsNaN(c.v) || math.IsInf(c.v, 0) {
			return invalid(c.name, c.v)
		}
	}
	if p.BaseRadius <= 0 {
		return invalid("base_radius", p.BaseRadius)
	}
	if p.RollingRadius <= 0 {
		return invalid("rolling_radius", p.RollingRadius)
	}
	if p.ScreenRatio <= 0 {
		return invalid("screen_ratio", p.ScreenRatio)
	}
	return nil
}

// DeltaPsi derives the pen angle step from the rolling geometry.
func (p CurveParams) DeltaPsi() float64 {
	if p.Epicycloid {
		return p.DeltaPhi * (1 + p.BaseRadius/p.RollingRadius)
	}
	return p.DeltaPhi * (1 - p.BaseRadius/p.RollingRadius)
}

// Curve advances a rolling-circle pen one step per call.
type Curve struct {
	params   CurveParams
	phi, psi float64
	deltaPsi float64
}

// NewCurve validates p and returns a curve positioned at its reset angles.
func NewCurve(p CurveParams) (*Curve, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	c := &Curve{params: p, deltaPsi: p.DeltaPsi()}
	c.Reset()
	return c, nil
}

// Reset restores the initial angles.
func (c *Curve) Reset() {
	c.phi = c.params.Phi0
	c.psi = c.params.Psi0
}

// Advance returns the point for the current angles, then steps them.
func (c *Curve) Advance() Point {
	p := c.At(c.phi, c.psi)

	c.phi = wrapAngle(c.phi + c.params.DeltaPhi)
	c.psi = wrapAngle(c.psi + c.deltaPsi)

	return p
}

// At evaluates the curve for arbitrary angles without touching state.
func (c *Curve) At(phi, psi float64) Point {
	arm := c.params.BaseRadius - c.params.RollingRadius
	if c.params.Epicycloid {
		arm = c.params.BaseRadius + c.params.RollingRadius
	}
	pen := c.params.PenRadius
	return Point{
		X: c.params.CenterX + arm*math.Cos(phi) + pen*math.Cos(psi),
		Y: (c.params.CenterY + arm*math.Sin(phi) + pen*math.Sin(psi)) / c.params.ScreenRatio,
	}
}

// SetParams swaps the geometry in place, keeping the current angles.
// On error the curve is left untouched.
func (c *Curve) SetParams(p CurveParams) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.params = p
	c.deltaPsi = p.DeltaPsi()
	return nil
}

func (c *Curve) Params() CurveParams        { return c.params }
func (c *Curve) Angles() (phi, psi float64) { return c.phi, c.psi }
func (c *Curve) DeltaPsi() float64          { return c.deltaPsi }

// wrapAngle keeps a within [-2π, 2π]. A single 2π correction covers any
// step up to 2π; larger steps fall back to a true modulo.
func wrapAngle(a float64) float64 {
	if a > twoPi {
		a -= twoPi
	} else if a < -twoPi {
		a += twoPi
	}
	if a > twoPi || a < -twoPi {
		a = math.Mod(a, twoPi)
	}
	return a
}

package spiro

// Config sizes a Spirograph.
type Config struct {
	Curve    CurveParams
	Capacity int
}

// DefaultConfig returns the classic hypocycloid with a 500-point trail.
func DefaultConfig() Config {
	return Config{
		Curve:    DefaultCurveParams(),
		Capacity: 500,
	}
}

// Spirograph drives a Curve and feeds its points into a Trail.
// The two are always reset together.
type Spirograph struct {
	curve *Curve
	trail *Trail
	ticks int
}

// New builds the curve and trail for cfg.
func New(cfg Config) (*Spirograph, error) {
	curve, err := NewCurve(cfg.Curve)
	if err != nil {
		return nil, err
	}
	trail, err := NewTrail(cfg.Capacity)
	if err != nil {
		return nil, err
	}
	return &Spirograph{curve: curve, trail: trail}, nil
}

// Start re-arms the curve at its initial angles and empties the trail.
func (s *Spirograph) Start() {
	s.curve.Reset()
	s.trail.Clear()
	s.ticks = 0
}

// Reset is an alias for Start.
func (s *Spirograph) Reset() { s.Start() }

// Tick advances the curve one step and records the point.
func (s *Spirograph) Tick() Point {
	p := s.curve.Advance()
	s.trail.Push(p)
	s.ticks++
	return p
}

// Snapshot returns the packed vertex records and how many are valid.
func (s *Spirograph) Snapshot() ([]float32, int) {
	return s.trail.Snapshot()
}

// SetColorMode rebuilds the trail's age colours.
func (s *Spirograph) SetColorMode(mode ColorMode) error {
	return s.trail.SetColorMode(mode)
}

// SetCurveParams swaps the geometry and restarts so the old trail is not
// paired with the new curve. On error nothing changes.
func (s *Spirograph) SetCurveParams(p CurveParams) error {
	if err := s.curve.SetParams(p); err != nil {
		return err
	}
	s.Start()
	return nil
}

func (s *Spirograph) Curve() *Curve { return s.curve }
func (s *Spirograph) Trail() *Trail { return s.trail }

// Ticks counts Tick calls since the last Start.
func (s *Spirograph) Ticks() int { return s.ticks }

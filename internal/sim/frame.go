package sim

import "time"

// FrameGate admits at most one tick per interval of wall time.
type FrameGate struct {
	interval time.Duration
	last     time.Time
	started  bool
	now      func() time.Time
}

func NewFrameGate(interval time.Duration) *FrameGate {
	return &FrameGate{interval: interval, now: time.Now}
}

// Ready reports whether a full interval has passed since the last admitted
// tick, and if so records now as the new reference. The first call always
// admits.
func (g *FrameGate) Ready() bool {
	now := g.now()
	if !g.started || now.Sub(g.last) >= g.interval {
		g.last = now
		g.started = true
		return true
	}
	return false
}

func (g *FrameGate) Interval() time.Duration { return g.interval }

func (g *FrameGate) Reset() { g.started = false }

package metrics

import (
	"math"

	"github.com/san-kum/spirosim/internal/spiro"
)

// Extent tracks the largest distance of any point from a centre.
type Extent struct {
	name   string
	cx, cy float64
	max    float64
}

func NewExtent(cx, cy float64) *Extent {
	return &Extent{name: "extent", cx: cx, cy: cy}
}

func (e *Extent) Name() string { return e.name }

func (e *Extent) Observe(p spiro.Point) {
	if d := math.Hypot(p.X-e.cx, p.Y-e.cy); d > e.max {
		e.max = d
	}
}

func (e *Extent) Value() float64 { return e.max }

func (e *Extent) Reset() { e.max = 0 }

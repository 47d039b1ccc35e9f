package metrics

import (
	"math"

	"github.com/san-kum/spirosim/internal/spiro"
)

// PathLength accumulates the polyline length of the traced points.
type PathLength struct {
	name  string
	last  spiro.Point
	total float64
	seen  bool
}

func NewPathLength() *PathLength {
	return &PathLength{name: "path_length"}
}

func (m *PathLength) Name() string { return m.name }

func (m *PathLength) Observe(p spiro.Point) {
	if m.seen {
		m.total += math.Hypot(p.X-m.last.X, p.Y-m.last.Y)
	}
	m.last = p
	m.seen = true
}

func (m *PathLength) Value() float64 { return m.total }

func (m *PathLength) Reset() {
	m.total = 0
	m.seen = false
}

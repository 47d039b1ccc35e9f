package sim

import (
	"fmt"

	"github.com/san-kum/spirosim/internal/spiro"
)

type Metric interface {
	Name() string
	Observe(p spiro.Point)
	Value() float64
	Reset()
}

type Observer interface {
	OnStep(p spiro.Point, tick int)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(p spiro.Point, tick int)

func (f ObserverFunc) OnStep(p spiro.Point, tick int) { f(p, tick) }

type Result struct {
	Points  []spiro.Point
	Ticks   int
	Metrics map[string]float64
}

// X returns the x trace of the run.
func (r *Result) X() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.X
	}
	return out
}

// Y returns the y trace of the run.
func (r *Result) Y() []float64 {
	out := make([]float64, len(r.Points))
	for i, p := range r.Points {
		out[i] = p.Y
	}
	return out
}

type RunError struct {
	Tick    int
	Message string
}

func (e RunError) Error() string {
	return fmt.Sprintf("sim error at tick %d: %s", e.Tick, e.Message)
}

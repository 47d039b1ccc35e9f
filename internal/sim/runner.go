package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/san-kum/spirosim/internal/spiro"
)

// Runner ticks a Spirograph headlessly, feeding metrics and observers.
type Runner struct {
	spiro     *spiro.Spirograph
	metrics   []Metric
	observers []Observer
}

func New(s *spiro.Spirograph) *Runner {
	return &Runner{
		spiro:     s,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Spirograph() *spiro.Spirograph { return r.spiro }

// Run restarts the spirograph and advances it steps times.
func (r *Runner) Run(ctx context.Context, steps int) (*Result, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps must be positive, got %d", steps)
	}

	result := &Result{
		Points:  make([]spiro.Point, 0, steps),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}
	r.spiro.Start()

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		p := r.spiro.Tick()
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return result, RunError{Tick: i, Message: "point is NaN"}
		}

		for _, m := range r.metrics {
			m.Observe(p)
		}
		for _, obs := range r.observers {
			obs.OnStep(p, i)
		}

		result.Points = append(result.Points, p)
		result.Ticks++
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback ticks until the callback returns false or ctx ends.
// The spirograph is not restarted, so a live view can resume where it was.
func (r *Runner) RunWithCallback(ctx context.Context, callback func(p spiro.Point, tick int) bool) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		p := r.spiro.Tick()
		for _, obs := range r.observers {
			obs.OnStep(p, r.spiro.Ticks())
		}
		if !callback(p, r.spiro.Ticks()) {
			return nil
		}
	}
}

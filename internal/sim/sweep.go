package sim

import (
	"context"
	"sync"

	"github.com/san-kum/spirosim/internal/spiro"
)

// Sweep runs one headless simulation per configuration concurrently.
// newMetrics is called once per run so metric state is never shared.
type Sweep struct {
	configs    []spiro.Config
	newMetrics func() []Metric
}

func NewSweep(configs []spiro.Config, newMetrics func() []Metric) *Sweep {
	return &Sweep{configs: configs, newMetrics: newMetrics}
}

func (s *Sweep) Run(ctx context.Context, steps int) ([]*Result, error) {
	results := make([]*Result, len(s.configs))
	errs := make([]error, len(s.configs))

	var wg sync.WaitGroup
	for i := range s.configs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			sp, err := spiro.New(s.configs[idx])
			if err != nil {
				errs[idx] = err
				return
			}
			r := New(sp)
			if s.newMetrics != nil {
				for _, m := range s.newMetrics() {
					r.AddMetric(m)
				}
			}
			results[idx], errs[idx] = r.Run(ctx, steps)
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

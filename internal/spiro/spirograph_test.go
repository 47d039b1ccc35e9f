package spiro

import (
	"errors"
	"math"
	"testing"
)

func TestSpirographTick(t *testing.T) {
	s, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	s.Start()

	if _, count := s.Snapshot(); count != 0 {
		t.Fatalf("expected empty snapshot before first tick, got %d", count)
	}

	p := s.Tick()
	if math.Abs(p.X-0.15) > 1e-12 || math.Abs(p.Y) > 1e-12 {
		t.Errorf("unexpected first point %+v", p)
	}

	verts, count := s.Snapshot()
	if count != 1 {
		t.Fatalf("expected 1 record, got %d", count)
	}
	if verts[0] != float32(p.X) || verts[1] != float32(p.Y) {
		t.Errorf("snapshot position (%v, %v) does not match tick %+v", verts[0], verts[1], p)
	}
	if s.Ticks() != 1 {
		t.Errorf("expected 1 tick, got %d", s.Ticks())
	}
}

func TestSpirographStartResetsBoth(t *testing.T) {
	s, _ := New(DefaultConfig())
	first := s.Tick()
	for i := 0; i < 20; i++ {
		s.Tick()
	}

	s.Reset()
	if _, count := s.Snapshot(); count != 0 {
		t.Errorf("expected empty trail after reset, got %d", count)
	}
	if s.Ticks() != 0 {
		t.Errorf("expected tick counter reset, got %d", s.Ticks())
	}
	if again := s.Tick(); again != first {
		t.Errorf("expected %+v after reset, got %+v", first, again)
	}
}

func TestSpirographCapacityBound(t *testing.T) {
	s, _ := New(DefaultConfig())
	s.Start()
	for i := 0; i < 505; i++ {
		s.Tick()
		if _, count := s.Snapshot(); count > 500 {
			t.Fatalf("tick %d: snapshot count %d above capacity", i, count)
		}
	}
	if _, count := s.Snapshot(); count != 500 {
		t.Errorf("expected 500 records, got %d", count)
	}
}

func TestSpirographInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"zero rolling radius", Config{Curve: CurveParams{BaseRadius: 1, ScreenRatio: 1}, Capacity: 10}, ErrInvalidParameter},
		{"zero capacity", Config{Curve: DefaultCurveParams(), Capacity: 0}, ErrInvalidParameter},
		{"capacity above ceiling", Config{Curve: DefaultCurveParams(), Capacity: MaxCapacity * 2}, ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.cfg)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			var pe *ParamError
			if !errors.As(err, &pe) || pe.Param == "" {
				t.Errorf("expected ParamError naming the parameter, got %v", err)
			}
		})
	}
}

func TestSpirographSetCurveParams(t *testing.T) {
	s, _ := New(DefaultConfig())
	for i := 0; i < 10; i++ {
		s.Tick()
	}

	bad := DefaultCurveParams()
	bad.BaseRadius = -1
	if err := s.SetCurveParams(bad); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, count := s.Snapshot(); count != 10 {
		t.Errorf("failed setter cleared the trail (count %d)", count)
	}

	epi := DefaultCurveParams()
	epi.Epicycloid = true
	if err := s.SetCurveParams(epi); err != nil {
		t.Fatalf("set curve params: %v", err)
	}
	if _, count := s.Snapshot(); count != 0 {
		t.Errorf("expected trail cleared by setter, got %d", count)
	}
	if !s.Curve().Params().Epicycloid {
		t.Error("setter did not apply")
	}
}

func TestParamErrorMessage(t *testing.T) {
	err := invalid("rolling_radius", 0.0)
	want := "spiro: invalid parameter: rolling_radius = 0"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

package spiro

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewTrailCapacity(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     error
	}{
		{"one", 1, nil},
		{"default", 500, nil},
		{"ceiling", MaxCapacity, nil},
		{"zero", 0, ErrInvalidParameter},
		{"negative", -3, ErrInvalidParameter},
		{"above ceiling", MaxCapacity + 1, ErrCapacityExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTrail(tt.capacity)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if tr.Capacity() != tt.capacity {
					t.Errorf("expected capacity %d, got %d", tt.capacity, tr.Capacity())
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestTrailEmptySnapshot(t *testing.T) {
	tr, _ := NewTrail(10)
	verts, count := tr.Snapshot()
	if count != 0 || len(verts) != 0 {
		t.Errorf("expected empty snapshot, got %d records", count)
	}
	if tr.Cursor() != 0 {
		t.Errorf("expected cursor 0, got %d", tr.Cursor())
	}
}

func TestTrailPushRetagsByAge(t *testing.T) {
	tr, _ := NewTrail(3)
	red, green, blue := RGB(1, 0, 0), RGB(0, 1, 0), RGB(0, 0, 1)
	if err := tr.SetColorMode(Gradient{
		Stops:  []colorful.Color{red, green, blue},
		Ratios: []float64{1, 1},
	}); err != nil {
		t.Fatalf("set color mode: %v", err)
	}
	age0, age1, age2 := tr.ColorAt(0), tr.ColorAt(1), tr.ColorAt(2)

	tr.Push(Point{X: 1, Y: 1})
	tr.Push(Point{X: 2, Y: 2})

	verts, count := tr.Snapshot()
	if count != 2 || len(verts) != 2*VertexSize {
		t.Fatalf("expected 2 records, got %d (%d floats)", count, len(verts))
	}
	assertRecord(t, verts, 1, 2, 2, age0)
	assertRecord(t, verts, 0, 1, 1, age1)

	tr.Push(Point{X: 3, Y: 3})
	tr.Push(Point{X: 4, Y: 4})

	verts, count = tr.Snapshot()
	if count != 3 {
		t.Fatalf("expected 3 records, got %d", count)
	}
	assertRecord(t, verts, 0, 4, 4, age0)
	assertRecord(t, verts, 2, 3, 3, age1)
	assertRecord(t, verts, 1, 2, 2, age2)

	got := tr.Vertices()
	want := []float32{4, 3, 2}
	for i, v := range got {
		if v.X != want[i] {
			t.Errorf("vertex %d: expected x %v, got %v", i, want[i], v.X)
		}
	}
}

func TestTrailRingInvariant(t *testing.T) {
	const capacity = 7
	tr, _ := NewTrail(capacity)

	prev := 0
	for i := 0; i < 50; i++ {
		tr.Push(Point{X: float64(i)})
		if tr.Len() < prev {
			t.Fatalf("push %d: live count decreased %d -> %d", i, prev, tr.Len())
		}
		if tr.Len() > capacity {
			t.Fatalf("push %d: live count %d above capacity", i, tr.Len())
		}
		if i >= capacity-1 && tr.Len() != capacity {
			t.Fatalf("push %d: expected full ring, got %d", i, tr.Len())
		}
		if tr.Cursor() < 0 || tr.Cursor() >= capacity {
			t.Fatalf("push %d: cursor %d out of range", i, tr.Cursor())
		}
		prev = tr.Len()
	}
}

func TestTrailOverflow(t *testing.T) {
	tr, _ := NewTrail(500)
	for i := 0; i < 505; i++ {
		tr.Push(Point{X: float64(i)})
	}

	if tr.Len() != 500 {
		t.Errorf("expected live count 500, got %d", tr.Len())
	}
	if _, count := tr.Snapshot(); count != 500 {
		t.Errorf("expected snapshot count 500, got %d", count)
	}

	verts := tr.Vertices()
	if verts[0].X != 504 || verts[499].X != 5 {
		t.Errorf("expected newest 504 and oldest 5, got %v and %v", verts[0].X, verts[499].X)
	}
}

func TestTrailClear(t *testing.T) {
	tr, _ := NewTrail(4)
	for i := 0; i < 6; i++ {
		tr.Push(Point{X: float64(i)})
	}
	tr.Clear()

	if tr.Len() != 0 || tr.Cursor() != 0 {
		t.Errorf("expected empty trail at cursor 0, got len %d cursor %d", tr.Len(), tr.Cursor())
	}
	if tr.Capacity() != 4 {
		t.Errorf("clear changed capacity to %d", tr.Capacity())
	}
}

func TestTrailSnapshotIdempotent(t *testing.T) {
	tr, _ := NewTrail(5)
	tr.Push(Point{X: 0.5, Y: -0.5})
	tr.Push(Point{X: 0.25, Y: 0.75})

	a, n1 := tr.Snapshot()
	first := append([]float32(nil), a...)
	b, n2 := tr.Snapshot()

	if n1 != n2 || len(first) != len(b) {
		t.Fatal("snapshot changed between calls")
	}
	for i := range first {
		if first[i] != b[i] {
			t.Fatalf("snapshot value %d changed", i)
		}
	}
	if tr.Len() != 2 || tr.Cursor() != 2 {
		t.Error("snapshot mutated trail state")
	}
}

func assertRecord(t *testing.T, verts []float32, slot int, x, y float32, c colorful.Color) {
	t.Helper()
	rec := verts[slot*VertexSize : slot*VertexSize+VertexSize]
	if rec[0] != x || rec[1] != y {
		t.Errorf("slot %d: expected position (%v, %v), got (%v, %v)", slot, x, y, rec[0], rec[1])
	}
	if math.Abs(float64(rec[2])-c.R) > 1e-6 || math.Abs(float64(rec[3])-c.G) > 1e-6 || math.Abs(float64(rec[4])-c.B) > 1e-6 {
		t.Errorf("slot %d: expected colour %v, got (%v, %v, %v)", slot, c, rec[2], rec[3], rec[4])
	}
}

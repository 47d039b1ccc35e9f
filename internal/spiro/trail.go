package spiro

import "github.com/lucasb-eyer/go-colorful"

const (
	// VertexSize is the number of float32 values per vertex record:
	// x, y for position and r, g, b for colour.
	VertexSize = 5

	// MaxCapacity is the hard ceiling on trail length.
	MaxCapacity = 1000
)

// Vertex is one trail record.
type Vertex struct {
	X, Y    float32
	R, G, B float32
}

// Color widens the record's colour to a colorful.Color.
func (v Vertex) Color() colorful.Color {
	return colorful.Color{R: float64(v.R), G: float64(v.G), B: float64(v.B)}
}

// Trail is a fixed-capacity ring of vertex records coloured by age.
//
// The record at cursor receives the next point; live counts how many
// leading records of storage hold valid points.
type Trail struct {
	verts  []float32
	table  []colorful.Color
	live   int
	cursor int
}

// NewTrail allocates a ring of exactly capacity records.
func NewTrail(capacity int) (*Trail, error) {
	if capacity < 1 {
		return nil, invalid("capacity", capacity)
	}
	if capacity > MaxCapacity {
		return nil, &ParamError{Param: "capacity", Value: capacity, Err: ErrCapacityExceeded}
	}
	t := &Trail{
		verts: make([]float32, capacity*VertexSize),
	}
	if err := t.SetColorMode(Fade(RGB(1, 1, 1))); err != nil {
		return nil, err
	}
	return t, nil
}

// Clear empties the trail without releasing storage.
func (t *Trail) Clear() {
	t.live = 0
	t.cursor = 0
}

// Push stores p as the newest point and retags every live record with the
// colour of its age.
func (t *Trail) Push(p Point) {
	n := len(t.table)

	base := t.cursor * VertexSize
	t.verts[base] = float32(p.X)
	t.verts[base+1] = float32(p.Y)

	live := t.live
	if live < n {
		live++
	}

	slot := t.cursor
	for age := 0; age < live; age++ {
		c := t.table[age]
		off := slot*VertexSize + 2
		t.verts[off] = float32(c.R)
		t.verts[off+1] = float32(c.G)
		t.verts[off+2] = float32(c.B)

		slot--
		if slot < 0 {
			slot = n - 1
		}
	}

	t.cursor++
	if t.cursor >= n {
		t.cursor = 0
	}
	t.live = live
}

// Snapshot returns the live records in storage order and their count.
// The slice aliases trail storage: it is valid until the next Push or Clear
// and must not be modified.
func (t *Trail) Snapshot() ([]float32, int) {
	return t.verts[:t.live*VertexSize], t.live
}

// Vertices copies the live records newest first.
func (t *Trail) Vertices() []Vertex {
	out := make([]Vertex, t.live)
	n := len(t.table)
	slot := t.cursor - 1
	for age := range out {
		if slot < 0 {
			slot = n - 1
		}
		v := t.verts[slot*VertexSize : slot*VertexSize+VertexSize]
		out[age] = Vertex{X: v[0], Y: v[1], R: v[2], G: v[3], B: v[4]}
		slot--
	}
	return out
}

// SetColorMode rebuilds the age table. The current table is kept on error.
// Live records pick up the new colours on the next Push.
func (t *Trail) SetColorMode(mode ColorMode) error {
	if mode == nil {
		return invalid("color_mode", nil)
	}
	table, err := mode.table(len(t.verts) / VertexSize)
	if err != nil {
		return err
	}
	t.table = table
	return nil
}

// ColorAt returns the colour bound to age.
func (t *Trail) ColorAt(age int) colorful.Color { return t.table[age] }

func (t *Trail) Capacity() int { return len(t.table) }
func (t *Trail) Len() int      { return t.live }
func (t *Trail) Cursor() int   { return t.cursor }

package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/spirosim/internal/spiro"
)

type VertexData struct {
	Age int     `json:"age"`
	X   float32 `json:"x"`
	Y   float32 `json:"y"`
	R   float32 `json:"r"`
	G   float32 `json:"g"`
	B   float32 `json:"b"`
}

type ParamsData struct {
	BaseRadius    float64 `json:"base_radius"`
	RollingRadius float64 `json:"rolling_radius"`
	PenRadius     float64 `json:"pen_radius"`
	CenterX       float64 `json:"center_x"`
	CenterY       float64 `json:"center_y"`
	Epicycloid    bool    `json:"epicycloid"`
	DeltaPhi      float64 `json:"delta_phi"`
	ScreenRatio   float64 `json:"screen_ratio"`
}

type ExportData struct {
	Name     string             `json:"name"`
	Params   ParamsData         `json:"params"`
	Ticks    int                `json:"ticks"`
	Capacity int                `json:"capacity"`
	Count    int                `json:"count"`
	Vertices []VertexData       `json:"vertices"`
	Metrics  map[string]float64 `json:"metrics,omitempty"`
}

// NewExportData captures the trail of s newest first.
func NewExportData(name string, s *spiro.Spirograph, metrics map[string]float64) ExportData {
	p := s.Curve().Params()
	verts := s.Trail().Vertices()
	data := ExportData{
		Name: name,
		Params: ParamsData{
			BaseRadius:    p.BaseRadius,
			RollingRadius: p.RollingRadius,
			PenRadius:     p.PenRadius,
			CenterX:       p.CenterX,
			CenterY:       p.CenterY,
			Epicycloid:    p.Epicycloid,
			DeltaPhi:      p.DeltaPhi,
			ScreenRatio:   p.ScreenRatio,
		},
		Ticks:    s.Ticks(),
		Capacity: s.Trail().Capacity(),
		Count:    len(verts),
		Vertices: vertexData(verts),
		Metrics:  metrics,
	}
	return data
}

func vertexData(verts []spiro.Vertex) []VertexData {
	out := make([]VertexData, len(verts))
	for i, v := range verts {
		out[i] = VertexData{Age: i, X: v.X, Y: v.Y, R: v.R, G: v.G, B: v.B}
	}
	return out
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

var csvHeader = []string{"age", "x", "y", "r", "g", "b"}

// WriteCSV writes one row per vertex, newest first.
func WriteCSV(w io.Writer, verts []spiro.Vertex) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	f := func(v float32) string { return strconv.FormatFloat(float64(v), 'f', -1, 32) }
	for age, v := range verts {
		row := []string{strconv.Itoa(age), f(v.X), f(v.Y), f(v.R), f(v.G), f(v.B)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/spirosim/internal/spiro"
)

// toPixel maps normalized display space [-1, 1]² onto a width x height
// image, y up.
func toPixel(x, y float32, width, height int) (float64, float64) {
	px := (float64(x) + 1) / 2 * float64(width)
	py := (1 - float64(y)) / 2 * float64(height)
	return px, py
}

// TrailToSVG draws each vertex as a dot in its own colour. verts are
// newest first; dots are emitted oldest first so newer ones paint on top.
func TrailToSVG(verts []spiro.Vertex, width, height int, dotRadius float64) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#000000"/>
<g>
`, width, height, width, height))

	for i := len(verts) - 1; i >= 0; i-- {
		v := verts[i]
		cx, cy := toPixel(v.X, v.Y, width, height)
		fill := v.Color().Clamped().Hex()
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, dotRadius, fill))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PathToSVG draws points as one polyline fitted to the image bounds.
func PathToSVG(points []spiro.Point, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}

	// Find bounds
	minX, maxX := points[0].X, points[0].X
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range points {
		x := (p.X - minX) / rangeX * float64(width)
		y := float64(height) - (p.Y-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

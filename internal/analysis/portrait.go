package analysis

import (
	"strings"

	"github.com/san-kum/spirosim/internal/spiro"
)

// shades runs from one visit to the most visited cell.
const shades = ".:-=+*#%@"

// Portrait shades a width x height grid over the display square [-1, 1]²
// by how often the pen visited each cell. Points outside the square are
// dropped and the origin is marked with '+'.
func Portrait(points []spiro.Point, width, height int) string {
	if len(points) == 0 || width < 2 || height < 2 {
		return ""
	}

	counts := make([]int, width*height)
	peak := 0
	for _, p := range points {
		col, row, ok := cell(p, width, height)
		if !ok {
			continue
		}
		i := row*width + col
		counts[i]++
		peak = max(peak, counts[i])
	}

	ramp := []rune(shades)
	oc, or, _ := cell(spiro.Point{}, width, height)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			n := counts[row*width+col]
			switch {
			case n > 0:
				sb.WriteRune(ramp[(n-1)*(len(ramp)-1)/max(peak-1, 1)])
			case col == oc && row == or:
				sb.WriteRune('+')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// cell maps p to a grid cell, y up. ok is false outside [-1, 1]².
func cell(p spiro.Point, width, height int) (col, row int, ok bool) {
	if !(p.X >= -1 && p.X <= 1 && p.Y >= -1 && p.Y <= 1) {
		return 0, 0, false
	}
	col = int((p.X + 1) / 2 * float64(width-1))
	row = int((1 - (p.Y+1)/2) * float64(height-1))
	return col, row, true
}

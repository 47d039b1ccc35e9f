package viz

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	red := colorful.Color{R: 1}

	c.Set(0, 0, red)
	c.Set(1, 3, red)
	if c.Grid[0][0] != rune(blank|0x1|0x80) {
		t.Errorf("unexpected cell %U", c.Grid[0][0])
	}
	if !c.Lit(0, 0) || !c.Lit(1, 3) || c.Lit(0, 1) {
		t.Error("Lit does not match Set")
	}
	if c.Colors[0][0] != "#ff0000" {
		t.Errorf("expected red cell, got %q", c.Colors[0][0])
	}

	// Out of bounds is ignored.
	c.Set(-1, 0, red)
	c.Set(4, 0, red)
	c.Set(0, 4, red)
	if c.Grid[0][1] != blank {
		t.Error("out of bounds set leaked into the grid")
	}
}

func TestCanvasNewestColorWins(t *testing.T) {
	c := NewCanvas(1, 1)
	c.Set(0, 0, colorful.Color{R: 1})
	c.Set(1, 1, colorful.Color{B: 1})
	if c.Colors[0][0] != "#0000ff" {
		t.Errorf("expected last colour to win, got %q", c.Colors[0][0])
	}
}

func TestCanvasClearAndString(t *testing.T) {
	c := NewCanvas(3, 2)
	c.DrawLine(0, 0, 5, 7, colorful.Color{G: 1})
	if strings.Count(c.String(), "\n") != 2 {
		t.Errorf("expected 2 rows:\n%s", c.String())
	}
	if !c.Lit(0, 0) || !c.Lit(5, 7) {
		t.Error("line endpoints not set")
	}

	c.Clear()
	for i := range c.Grid {
		for j := range c.Grid[i] {
			if c.Grid[i][j] != blank || c.Colors[i][j] != "" {
				t.Fatalf("cell %d,%d not cleared", i, j)
			}
		}
	}
}

func TestCanvasRenderKeepsDots(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Set(0, 0, colorful.Color{R: 1})
	c.Set(2, 0, colorful.Color{R: 1})
	out := c.Render()
	if !strings.Contains(out, string(rune(blank|0x1))) {
		t.Errorf("rendered output lost dots: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Error("expected trailing newline")
	}
}

package metrics

import "github.com/san-kum/spirosim/internal/spiro"

// Coverage is the fraction of cells of a grid over [-1, 1]² that the
// curve has visited.
type Coverage struct {
	name    string
	cells   int
	visited []bool
	count   int
}

func NewCoverage(cells int) *Coverage {
	if cells < 1 {
		cells = 1
	}
	return &Coverage{
		name:    "coverage",
		cells:   cells,
		visited: make([]bool, cells*cells),
	}
}

func (c *Coverage) Name() string { return c.name }

func (c *Coverage) Observe(p spiro.Point) {
	col := int((p.X + 1) / 2 * float64(c.cells))
	row := int((p.Y + 1) / 2 * float64(c.cells))
	if col < 0 || row < 0 || col >= c.cells || row >= c.cells {
		return
	}
	idx := row*c.cells + col
	if !c.visited[idx] {
		c.visited[idx] = true
		c.count++
	}
}

func (c *Coverage) Value() float64 {
	return float64(c.count) / float64(len(c.visited))
}

func (c *Coverage) Reset() {
	for i := range c.visited {
		c.visited[i] = false
	}
	c.count = 0
}

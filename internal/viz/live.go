package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/spirosim/internal/analysis"
	"github.com/san-kum/spirosim/internal/spiro"
)

const (
	defaultWidth    = 60
	defaultHeight   = 24
	historyCapacity = 120
)

type TickMsg time.Time

// Options configures the live view.
type Options struct {
	Name          string
	Width, Height int
	FrameInterval time.Duration
	// TicksPerFrame is how many curve steps run per frame.
	TicksPerFrame int
	Palette       string
}

// param is one tunable field of spiro.CurveParams.
type param struct {
	name string
	get  func(p spiro.CurveParams) float64
	set  func(p *spiro.CurveParams, v float64)
}

var tunables = []param{
	{"base", func(p spiro.CurveParams) float64 { return p.BaseRadius }, func(p *spiro.CurveParams, v float64) { p.BaseRadius = v }},
	{"rolling", func(p spiro.CurveParams) float64 { return p.RollingRadius }, func(p *spiro.CurveParams, v float64) { p.RollingRadius = v }},
	{"pen", func(p spiro.CurveParams) float64 { return p.PenRadius }, func(p *spiro.CurveParams, v float64) { p.PenRadius = v }},
	{"dphi", func(p spiro.CurveParams) float64 { return p.DeltaPhi }, func(p *spiro.CurveParams, v float64) { p.DeltaPhi = v }},
}

// Model holds the spirograph, its canvas and the UI context.
type Model struct {
	spiro         *spiro.Spirograph
	opts          Options
	canvas        *Canvas
	running       bool
	initialParams spiro.CurveParams
	selected      int
	palettes      []string
	palette       int
	xHistory      []float64
	showHelp      bool
	status        string
}

// NewModel binds s to a canvas and fits its screen ratio to the canvas.
func NewModel(s *spiro.Spirograph, opts Options) Model {
	if opts.Width <= 0 {
		opts.Width = defaultWidth
	}
	if opts.Height <= 0 {
		opts.Height = defaultHeight
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 20 * time.Millisecond
	}
	if opts.TicksPerFrame <= 0 {
		opts.TicksPerFrame = 1
	}

	canvas := NewCanvas(opts.Width, opts.Height)
	p := s.Curve().Params()
	p.ScreenRatio = ScreenRatio(canvas)
	status := ""
	if err := s.SetCurveParams(p); err != nil {
		status = err.Error()
	}

	names := spiro.PaletteNames()
	idx := -1
	for i, n := range names {
		if n == opts.Palette {
			idx = i
		}
	}

	return Model{
		spiro:         s,
		opts:          opts,
		canvas:        canvas,
		running:       true,
		initialParams: s.Curve().Params(),
		palettes:      names,
		palette:       idx,
		xHistory:      make([]float64, 0, historyCapacity),
		status:        status,
	}
}

// ScreenRatio is the dot grid's height over width. Braille dots are
// roughly square, so this keeps circles round.
func ScreenRatio(c *Canvas) float64 {
	return float64(c.SubHeight()) / float64(c.SubWidth())
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.opts.FrameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and steps the curve.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.reset()
		case "e":
			p := m.spiro.Curve().Params()
			p.Epicycloid = !p.Epicycloid
			m.apply(p)
		case "p":
			m.cyclePalette()
		case "tab":
			m.selected = (m.selected + 1) % len(tunables)
		case "up", "k":
			m.adjustParam(1.05)
		case "down", "j":
			m.adjustParam(0.95)
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.step()
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) step() {
	for i := 0; i < m.opts.TicksPerFrame; i++ {
		p := m.spiro.Tick()
		m.xHistory = append(m.xHistory, p.X)
	}
	if over := len(m.xHistory) - historyCapacity; over > 0 {
		m.xHistory = m.xHistory[over:]
	}
}

func (m *Model) reset() {
	m.apply(m.initialParams)
	m.xHistory = m.xHistory[:0]
	m.status = ""
}

// apply swaps in new curve params; rejected values leave the curve as is.
func (m *Model) apply(p spiro.CurveParams) {
	if err := m.spiro.SetCurveParams(p); err != nil {
		m.status = err.Error()
		return
	}
	m.status = ""
	m.xHistory = m.xHistory[:0]
}

func (m *Model) adjustParam(factor float64) {
	p := m.spiro.Curve().Params()
	t := tunables[m.selected]
	t.set(&p, t.get(p)*factor)
	m.apply(p)
}

func (m *Model) cyclePalette() {
	if len(m.palettes) == 0 {
		return
	}
	m.palette = (m.palette + 1) % len(m.palettes)
	mode, err := spiro.Palette(m.palettes[m.palette])
	if err == nil {
		err = m.spiro.SetColorMode(mode)
	}
	if err != nil {
		m.status = err.Error()
	}
}

// paletteName is "custom" when the colour mode came from stops or a static
// colour rather than a named palette.
func (m *Model) paletteName() string {
	if m.palette < 0 || m.palette >= len(m.palettes) {
		return "custom"
	}
	return m.palettes[m.palette]
}

// project maps normalized display space [-1, 1]² onto canvas dots, y up.
func project(c *Canvas, x, y float64) (int, int) {
	cw, ch := c.SubWidth(), c.SubHeight()
	px := int((x + 1) / 2 * float64(cw-1))
	py := int((1 - (y+1)/2) * float64(ch-1))
	return px, py
}

// draw plots the trail oldest first so newer points win shared cells.
func (m *Model) draw() {
	m.canvas.Clear()
	verts := m.spiro.Trail().Vertices()
	for i := len(verts) - 1; i >= 0; i-- {
		v := verts[i]
		x, y := project(m.canvas, float64(v.X), float64(v.Y))
		m.canvas.Set(x, y, v.Color())
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	st := themeStyles(CurrentTheme)
	m.draw()
	canvasView := st.canvas.Render(m.canvas.Render())

	var s strings.Builder
	name := m.opts.Name
	if name == "" {
		name = "spirograph"
	}
	s.WriteString(st.header.Render(strings.ToUpper(name)) + "\n")
	if m.running {
		s.WriteString("RUNNING\n\n")
	} else {
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	}

	if len(m.xHistory) > 1 {
		chart := asciigraph.Plot(m.xHistory, asciigraph.Height(4), asciigraph.Width(30), asciigraph.Caption("x"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	p := m.spiro.Curve().Params()
	kind := "hypocycloid"
	if p.Epicycloid {
		kind = "epicycloid"
	}
	row := func(label, value string) {
		s.WriteString(st.label.Render(label) + st.value.Render(value) + "\n")
	}
	row("Curve", kind)
	row("Ticks", fmt.Sprintf("%d", m.spiro.Ticks()))
	row("Trail", fmt.Sprintf("%d/%d", m.spiro.Trail().Len(), m.spiro.Trail().Capacity()))
	row("Palette", m.paletteName())
	if c, err := analysis.Closure(p, 1000); err == nil && c.Closed {
		row("Closure", fmt.Sprintf("%d lobes / %d rev", c.Lobes, c.Revolutions))
	} else {
		row("Closure", "open")
	}

	s.WriteString("\nPARAMETERS\n")
	for i, t := range tunables {
		val := t.get(p)
		line := fmt.Sprintf("%-8s %s %.3f", t.name, paramBar(val, t.get(m.initialParams), 10), val)
		if i == m.selected {
			s.WriteString(st.activeParam.Render("> "+line) + "\n")
		} else {
			s.WriteString("  " + st.label.UnsetWidth().Render(line) + "\n")
		}
	}
	if m.status != "" {
		s.WriteString("\n" + st.paused.Render(m.status) + "\n")
	}
	s.WriteString(st.help.Render("─────────────────────\nSP:Pause R:Reset Q:Quit\nE:Epi P:Palette T:Theme\nTab ↑↓:Tune ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.stats.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + mainView
	}
	return mainView
}

const helpText = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  R        - Restart the curve        ║
║  Q        - Quit                     ║
║  E        - Epicycloid/hypocycloid   ║
║  P        - Cycle palettes           ║
║  Tab      - Cycle parameters         ║
║  Up/K     - Increase parameter (+5%) ║
║  Down/J   - Decrease parameter (-5%) ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝`

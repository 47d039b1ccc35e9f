package gui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/spirosim/internal/sim"
	"github.com/san-kum/spirosim/internal/spiro"
)

var (
	ColBg      = rl.NewColor(0, 0, 0, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

type Options struct {
	Title         string
	Width, Height int
	FrameInterval time.Duration
	Palette       string
}

type action int

const (
	actNone action = iota
	actPause
	actRestart
	actToggleEpi
	actPalette
	actHUD
)

type App struct {
	Spiro    *spiro.Spirograph
	Gate     *sim.FrameGate
	Renderer *Renderer
	Opts     Options
	Running  bool
	ShowHUD  bool
	Palettes []string
	Palette  int
	Status   string
}

// NewApp wires a spirograph to a frame gate. It does not touch the window,
// so it can be built before InitWindow.
func NewApp(s *spiro.Spirograph, opts Options) *App {
	if opts.Width <= 0 {
		opts.Width = 800
	}
	if opts.Height <= 0 {
		opts.Height = 600
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = 20 * time.Millisecond
	}
	if opts.Title == "" {
		opts.Title = "spirosim"
	}

	names := spiro.PaletteNames()
	idx := -1
	for i, n := range names {
		if n == opts.Palette {
			idx = i
		}
	}

	return &App{
		Spiro:    s,
		Gate:     sim.NewFrameGate(opts.FrameInterval),
		Renderer: NewRenderer(),
		Opts:     opts,
		Running:  true,
		ShowHUD:  true,
		Palettes: names,
		Palette:  idx,
	}
}

// Run opens the window and blocks until it is closed.
func Run(s *spiro.Spirograph, opts Options) error {
	app := NewApp(s, opts)

	rl.InitWindow(int32(app.Opts.Width), int32(app.Opts.Height), app.Opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	if err := app.Renderer.Init(); err != nil {
		return err
	}
	defer app.Renderer.Close()
	log.Debug("opengl renderer ready", "program", app.Renderer.Program)

	app.Spiro.Start()
	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	a.handle(pressedAction())
	if a.Running && a.Gate.Ready() {
		a.Spiro.Tick()
	}
}

func pressedAction() action {
	switch {
	case rl.IsKeyPressed(rl.KeySpace):
		return actPause
	case rl.IsKeyPressed(rl.KeyR):
		return actRestart
	case rl.IsKeyPressed(rl.KeyE):
		return actToggleEpi
	case rl.IsKeyPressed(rl.KeyP):
		return actPalette
	case rl.IsKeyPressed(rl.KeyH):
		return actHUD
	}
	return actNone
}

func (a *App) handle(act action) {
	switch act {
	case actPause:
		a.Running = !a.Running
	case actRestart:
		a.Spiro.Start()
		a.Gate.Reset()
	case actToggleEpi:
		p := a.Spiro.Curve().Params()
		p.Epicycloid = !p.Epicycloid
		a.report(a.Spiro.SetCurveParams(p))
	case actPalette:
		if len(a.Palettes) == 0 {
			return
		}
		a.Palette = (a.Palette + 1) % len(a.Palettes)
		mode, err := spiro.Palette(a.Palettes[a.Palette])
		if err == nil {
			err = a.Spiro.SetColorMode(mode)
		}
		a.report(err)
	case actHUD:
		a.ShowHUD = !a.ShowHUD
	}
}

func (a *App) report(err error) {
	if err != nil {
		a.Status = err.Error()
		log.Warn("gui action rejected", "err", err)
		return
	}
	a.Status = ""
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	// Flush raylib's batch so the raw GL draw lands on a clean state.
	rl.DrawRenderBatchActive()
	verts, n := a.Spiro.Snapshot()
	a.Renderer.Draw(verts, n)

	if a.ShowHUD {
		a.DrawHUD()
	}
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	for i, line := range a.hudLines() {
		col := ColText
		if i > 0 {
			col = ColTextDim
		}
		rl.DrawText(line, 10, int32(10+i*18), 16, col)
	}
}

func (a *App) hudLines() []string {
	p := a.Spiro.Curve().Params()
	kind := "hypocycloid"
	if p.Epicycloid {
		kind = "epicycloid"
	}
	state := "running"
	if !a.Running {
		state = "paused"
	}
	lines := []string{
		fmt.Sprintf("%s  %s", kind, state),
		fmt.Sprintf("R=%.3f r=%.3f d=%.3f", p.BaseRadius, p.RollingRadius, p.PenRadius),
		fmt.Sprintf("ticks %d  trail %d/%d", a.Spiro.Ticks(), a.Spiro.Trail().Len(), a.Spiro.Trail().Capacity()),
	}
	name := "custom"
	if a.Palette >= 0 && a.Palette < len(a.Palettes) {
		name = a.Palettes[a.Palette]
	}
	lines = append(lines, "palette "+name)
	if a.Status != "" {
		lines = append(lines, a.Status)
	}
	return append(lines, "SPACE pause  R restart  E epi  P palette  H hud  ESC quit")
}

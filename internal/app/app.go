//go:build ebiten

package app

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"

	"golife/internal/render"
	"golife/pkg/life"
)

// Game adapts a simulation run to the ebiten.Game interface. Space pauses,
// N steps once while paused, R reseeds from the initial state, Q quits.
type Game struct {
	initial *life.Grid
	grid    *life.Grid
	painter *render.GridPainter

	generation  int
	generations int
	scale       int
	paused      bool
	tickOnce    bool
}

// NewGame constructs a Game starting from the provided grid.
func NewGame(initial *life.Grid, generations, scale int) *Game {
	return &Game{
		initial:     initial,
		grid:        initial,
		painter:     render.NewGridPainter(initial.Width(), initial.Height()),
		generations: generations,
		scale:       scale,
	}
}

// Update handles key input and advances the simulation one generation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.grid = g.initial
		g.generation = 0
	}

	if (!g.paused || g.tickOnce) && g.generation < g.generations {
		g.grid = g.grid.NextGeneration()
		g.generation++
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.grid.Cells(), color.White, color.Black, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.grid.Width() * g.scale, g.grid.Height() * g.scale
}

// runGUI opens an ebiten window and plays the run at the configured
// interval until the window is closed.
func runGUI(cfg *Config, initial *life.Grid) error {
	tps := int(time.Second / cfg.Interval)
	if tps < 1 {
		tps = 1
	}

	game := NewGame(initial, cfg.Generations, cfg.Scale)
	ebiten.SetWindowTitle("life — " + cfg.Pattern)
	ebiten.SetTPS(tps)
	ebiten.SetWindowSize(initial.Width()*cfg.Scale, initial.Height()*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run gui")
	}
	return nil
}

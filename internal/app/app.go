//go:build ebiten

package app

import (
	"fmt"
	"time"

	"life-trick/internal/render"
	"life-trick/internal/trick"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a trick to the ebiten.Game interface.
type Game struct {
	trick   *trick.Trick
	painter *render.GridPainter

	scale    int
	paused   bool
	tickOnce bool
	showHUD  bool
}

// New constructs a Game for a trick that has already been set up.
func New(t *trick.Trick, scale int) *Game {
	size := t.Engine().Size()
	return &Game{
		trick:   t,
		painter: render.NewGridPainter(size.W, size.H),
		scale:   scale,
		showHUD: true,
	}
}

// Reset restarts the trick with the provided seed.
func (g *Game) Reset(seed int64) error {
	cfg := g.trick.Config()
	cfg.Seed = seed
	if err := g.trick.Setup(cfg); err != nil {
		return err
	}
	g.tickOnce = false
	return nil
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.Reset(g.trick.Config().Seed); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.Reset(time.Now().UnixNano()); err != nil {
			return err
		}
	}

	if (!g.paused) || g.tickOnce {
		if _, done := g.trick.Update(); done {
			return ebiten.Termination
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the latest generation.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.trick.Sim().Cells(), render.LiveColor, render.DeadColor, g.scale)
	if g.showHUD {
		e := g.trick.Engine()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("gen %d  visited %d  cycling %v  period %d",
			e.Generation(), e.VisitedCount(), e.IsCycling(), e.Period()))
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.trick.Engine().Size()
	return s.W * g.scale, s.H * g.scale
}

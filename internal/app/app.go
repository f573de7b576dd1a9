//go:build ebiten

package app

import (
	"wavesweep/internal/core"
	"wavesweep/internal/pde"
	"wavesweep/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a running integrator to the ebiten.Game interface, showing
// the absolute field on the mid-z plane as a live heatmap.
type Game struct {
	start   func() *pde.Integrator
	it      *pde.Integrator
	painter *render.SlicePainter
	pacer   *core.Pacer

	scale        int
	stepsPerTick int
	paused       bool
	tickOnce     bool
}

// New constructs a Game around a start function that builds a fresh
// integrator. The function is called once immediately and again on restart.
func New(start func() *pde.Integrator, cfg *Config) *Game {
	it := start()
	slice := it.Current().AbsMidplaneZ()
	return &Game{
		start:        start,
		it:           it,
		painter:      render.NewSlicePainter(slice.W, slice.H),
		pacer:        core.NewPacer(cfg.StepsPerSecond),
		scale:        cfg.Scale,
		stepsPerTick: cfg.StepsPerTick,
	}
}

// Restart rebuilds the integrator from scratch.
func (g *Game) Restart() {
	g.it = g.start()
	g.tickOnce = false
}

// Update handles per-frame input and advances the integration.
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
		g.Restart()
	}

	advance := (!g.paused && g.pacer.ShouldStep()) || g.tickOnce
	if advance && g.it.Status() == pde.Running {
		for i := 0; i < g.stepsPerTick; i++ {
			if g.it.Step() != pde.Running {
				break
			}
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current mid-plane slice.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.it.Current().AbsMidplaneZ(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

//go:build ebiten

package app

import (
	"image/color"

	"torlife/internal/core"
	"torlife/internal/render"
	"torlife/internal/ui"
	"torlife/pkg/universe"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a universe to the ebiten.Game interface. The window redraws at
// the display rate while the simulation advances at its own ticks-per-second
// pace.
type Game struct {
	uni     *universe.Universe
	painter *render.GridPainter
	hud     *ui.HUD
	pacer   *core.FixedStep
	reseed  SeedFunc

	onColor  color.Color
	offColor color.Color

	scale      int
	paused     bool
	tickOnce   bool
	generation int
}

// NewGame constructs a Game for the provided universe. The reseed function
// is replayed when the R key restarts the simulation; it may be nil.
func NewGame(uni *universe.Universe, scale, tps int, reseed SeedFunc) *Game {
	if scale < 1 {
		scale = 1
	}
	return &Game{
		uni:      uni,
		painter:  render.NewGridPainter(uni.Width(), uni.Height()),
		hud:      ui.NewHUD(),
		pacer:    core.NewFixedStep(tps),
		reseed:   reseed,
		onColor:  color.White,
		offColor: color.Black,
		scale:    scale,
	}
}

// Update handles input and advances the simulation at the configured rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		if !g.paused {
			g.pacer.Reset()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && g.reseed != nil {
		g.uni.Clear()
		if err := g.reseed(g.uni); err != nil {
			return err
		}
		g.generation = 0
		g.tickOnce = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.pacer.Faster()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.pacer.Slower()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.ToggleHelp()
	}

	if g.tickOnce {
		g.step()
		g.tickOnce = false
	}
	if g.paused {
		return nil
	}
	for g.pacer.ShouldStep() {
		g.step()
	}
	return nil
}

func (g *Game) step() {
	g.uni.Tick()
	g.generation++
}

// Draw renders the grid and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.uni.Cells(), g.onColor, g.offColor, g.scale)
	g.hud.Draw(screen, ui.Status{
		Generation: g.generation,
		Population: g.uni.Population(),
		TPS:        g.pacer.TPS(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	return w * g.scale, h * g.scale
}

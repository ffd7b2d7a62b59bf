//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 8
	lineHeight     = 16
	statusBaseline = 14
)

var statusColor = color.RGBA{R: 130, G: 220, B: 130, A: 255}

var helpLines = []string{
	"space  pause / resume",
	"n      step one generation",
	"r      restart from the seed",
	"+ / -  faster / slower",
	"h      toggle this help",
	"q      quit",
}

// Status carries the values the status line reports.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
}

// HUD draws a one-line simulation status and an optional key-binding panel
// over the rendered grid.
type HUD struct {
	showHelp bool
	pixel    *ebiten.Image
}

// NewHUD constructs a HUD with the help panel hidden.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// ToggleHelp flips the help panel on or off.
func (h *HUD) ToggleHelp() {
	if h == nil {
		return
	}
	h.showHelp = !h.showHelp
}

// Draw paints the status line and, when toggled, the help panel.
func (h *HUD) Draw(screen *ebiten.Image, s Status) {
	if h == nil {
		return
	}
	line := fmt.Sprintf("gen %d  pop %d  %d tps", s.Generation, s.Population, s.TPS)
	if s.Paused {
		line += "  paused"
	}
	drawShadowed(screen, line, panelPadding, statusBaseline, statusColor)

	if h.showHelp {
		h.drawHelp(screen)
	}
}

func (h *HUD) drawHelp(screen *ebiten.Image) {
	face := basicfont.Face7x13
	width := 0
	for _, line := range helpLines {
		if w := text.BoundString(face, line).Dx(); w > width {
			width = w
		}
	}
	panelW := width + 2*panelPadding
	panelH := len(helpLines)*lineHeight + 2*panelPadding
	panelTop := statusBaseline + panelPadding

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(panelW), float64(panelH))
	op.GeoM.Translate(panelPadding, float64(panelTop))
	op.ColorM.Scale(0.06, 0.06, 0.08, 0.85)
	screen.DrawImage(h.pixel, op)

	y := panelTop + panelPadding + 12
	for _, line := range helpLines {
		text.Draw(screen, line, face, 2*panelPadding, y, color.RGBA{R: 210, G: 210, B: 220, A: 255})
		y += lineHeight
	}
}

func drawShadowed(dst *ebiten.Image, line string, x, y int, col color.Color) {
	face := basicfont.Face7x13
	text.Draw(dst, line, face, x+1, y+1, color.RGBA{A: 230})
	text.Draw(dst, line, face, x, y, col)
}

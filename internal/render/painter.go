//go:build ebiten

package render

import (
	"image/color"
	"iter"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from streamed cell states and
// draws it scaled onto a destination.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a w×h cell grid. Dimensions below 1
// are clamped to 1.
func NewGridPainter(w, h int) *GridPainter {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the streamed cells into the painter image and draws it onto
// dst at the given integer scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells iter.Seq[bool], on, off color.Color, scale int) {
	fillBinaryRGBA(gp.buf, cells, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }

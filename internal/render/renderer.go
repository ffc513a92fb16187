//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"torus-life/internal/core"
)

// GridPainter uploads board cells into a single RGBA image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(size core.Size) *GridPainter {
	gp := &GridPainter{w: size.W, h: size.H, buf: make([]byte, 4*size.Cells())}
	gp.img = ebiten.NewImage(size.W, size.H)
	return gp
}

// Blit uploads the board into the painter image and draws it scaled onto dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, v core.View, scale int) {
	if v.Len() != gp.w*gp.h {
		return
	}
	fillRGBA(gp.buf, v)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

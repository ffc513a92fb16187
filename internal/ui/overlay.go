//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"torus-life/internal/core"
)

var gridColor = color.RGBA{R: 48, G: 48, B: 56, A: 255}

// Overlay draws optional cell grid lines on top of the board. It is toggled
// with the G key.
type Overlay struct {
	size     core.Size
	scale    int
	showGrid bool
	pixel    *ebiten.Image
}

// NewOverlay constructs an overlay for a board of the given size and scale.
func NewOverlay(size core.Size, scale int) *Overlay {
	o := &Overlay{size: size, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update polls the overlay key and reports whether the overlay changed, in
// which case the board must be re-presented.
func (o *Overlay) Update() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
		return true
	}
	return false
}

// Draw paints the grid lines. Lines are skipped at scales where they would
// cover the cells.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showGrid || o.scale < 4 {
		return
	}
	w := float64(o.size.W * o.scale)
	h := float64(o.size.H * o.scale)
	for x := 1; x < o.size.W; x++ {
		o.drawRect(screen, float64(x*o.scale), 0, 1, h)
	}
	for y := 1; y < o.size.H; y++ {
		o.drawRect(screen, 0, float64(y*o.scale), w, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(gridColor)
	screen.DrawImage(o.pixel, op)
}

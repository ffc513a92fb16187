//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const hudPadding = 4

var hudBackground = color.RGBA{R: 16, G: 16, B: 20, A: 255}

// HUD renders a one-line status strip below the simulation view.
type HUD struct {
	pixel *ebiten.Image
}

// NewHUD constructs a HUD.
func NewHUD() *HUD {
	h := &HUD{pixel: ebiten.NewImage(1, 1)}
	h.pixel.Fill(color.White)
	return h
}

// Draw paints the strip across the full screen width starting at offsetY,
// the bottom edge of the board.
func (h *HUD) Draw(screen *ebiten.Image, offsetY int, s Status) {
	if h == nil {
		return
	}
	width := screen.Bounds().Dx()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width), StripHeight)
	op.GeoM.Translate(0, float64(offsetY))
	op.ColorScale.ScaleWithColor(hudBackground)
	screen.DrawImage(h.pixel, op)

	text.Draw(screen, s.String(), basicfont.Face7x13, hudPadding, offsetY+StripHeight-hudPadding, color.White)
}

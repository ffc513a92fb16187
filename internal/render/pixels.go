package render

import (
	"image/color"

	"torus-life/internal/core"
)

// CellColor converts a cell sentinel, an ARGB8888 value, into an opaque RGBA
// color. The sentinel's alpha byte is ignored.
func CellColor(c core.Cell) color.RGBA {
	v := c.ARGB()
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// fillRGBA converts the board in v into RGBA pixels in buf, which must hold
// 4*v.Len() bytes.
func fillRGBA(buf []byte, v core.View) {
	for i := 0; i < v.Len(); i++ {
		col := CellColor(v.At(i))
		base := i * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	}
}

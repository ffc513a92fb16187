package render

import (
	"bufio"
	"fmt"
	"io"

	"torus-life/internal/core"
)

// Glyphs used by the text display.
const (
	AliveGlyph = '#'
	DeadGlyph  = '.'
)

// WriteText writes v as rows of '#' and '.' followed by a newline per row.
func WriteText(w io.Writer, v core.View) error {
	bw := bufio.NewWriter(w)
	size := v.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			glyph := byte(DeadGlyph)
			if v.At(y*size.W + x).IsAlive() {
				glyph = AliveGlyph
			}
			if err := bw.WriteByte(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// TextDisplay presents every frame to a writer, separated by a header line.
type TextDisplay struct {
	w      io.Writer
	frames int
}

// NewTextDisplay returns a display writing to w.
func NewTextDisplay(w io.Writer) *TextDisplay {
	return &TextDisplay{w: w}
}

// Present writes the frame.
func (d *TextDisplay) Present(v core.View) error {
	d.frames++
	if _, err := fmt.Fprintf(d.w, "-- frame %d (%s)\n", d.frames, v.Size()); err != nil {
		return err
	}
	return WriteText(d.w, v)
}

// Frames returns how many frames were presented.
func (d *TextDisplay) Frames() int { return d.frames }

// Discard is a display that drops every frame.
type Discard struct{}

// Present does nothing.
func (Discard) Present(core.View) error { return nil }

package ui

import (
	"fmt"
	"strings"

	"torus-life/internal/core"
)

// Status is the information shown on the HUD line.
type Status struct {
	State      string
	Generation uint64
	Population int
}

func (s Status) String() string {
	return fmt.Sprintf("%s  gen %d  pop %d", strings.ToUpper(s.State), s.Generation, s.Population)
}

const (
	// StripHeight is the height in pixels of the status strip below the board.
	StripHeight = 16
	// MinStripWidth fits the widest status line in the 7x13 font.
	MinStripWidth = 224
)

// ScreenSize returns the screen needed for a board of the given pixel size,
// with the status strip below it when withHUD is set. The board keeps the
// top-left corner; any extra area belongs to the strip.
func ScreenSize(board core.Size, withHUD bool) core.Size {
	if !withHUD {
		return board
	}
	w := board.W
	if w < MinStripWidth {
		w = MinStripWidth
	}
	return core.Size{W: w, H: board.H + StripHeight}
}

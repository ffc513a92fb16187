package core

// Cell is a cell sentinel. The value doubles as an ARGB8888 pixel so a board
// can be uploaded to a texture without conversion.
type Cell uint32

const (
	// Dead is the sentinel for an empty cell (opaque black once alpha is forced).
	Dead Cell = 0x00000000
	// Alive is the sentinel for a live cell (pure red).
	Alive Cell = 0x00FF0000
)

// IsAlive reports whether c holds the live sentinel.
func (c Cell) IsAlive() bool { return c != Dead }

// Flip returns the opposite sentinel.
func (c Cell) Flip() Cell {
	if c.IsAlive() {
		return Dead
	}
	return Alive
}

// ARGB returns the pixel value of the cell.
func (c Cell) ARGB() uint32 { return uint32(c) }

// normalize collapses any non-dead value onto Alive so that stored cells are
// always one of the two sentinels.
func (c Cell) normalize() Cell {
	if c == Dead {
		return Dead
	}
	return Alive
}

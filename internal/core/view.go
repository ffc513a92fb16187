package core

// View is a read-only window onto a board. It shares storage with the board,
// so it reflects later mutations; callers needing a stable copy use AppendARGB.
type View struct {
	size  Size
	cells []Cell
}

// Size returns the dimensions of the viewed board.
func (v View) Size() Size { return v.size }

// Len returns the number of cells, width*height.
func (v View) Len() int { return len(v.cells) }

// At returns the cell at row-major index i.
func (v View) At(i int) Cell { return v.cells[i] }

// Get returns the cell at (x, y) with toroidal wrapping.
func (v View) Get(x, y int) Cell {
	x, y = Mod(x, v.size.W), Mod(y, v.size.H)
	return v.cells[y*v.size.W+x]
}

// AppendARGB appends the row-major pixel values of the board to dst.
func (v View) AppendARGB(dst []uint32) []uint32 {
	for _, c := range v.cells {
		dst = append(dst, c.ARGB())
	}
	return dst
}

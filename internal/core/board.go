package core

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions is returned when a board is requested with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrBoardTooLarge is returned when width*height exceeds MaxCells.
	ErrBoardTooLarge = errors.New("board too large")
)

// MaxCells bounds the cells of one buffer (64 MiB of sentinels).
const MaxCells = 1 << 24

// CheckDimensions reports whether a w*h board can be allocated. The product
// is compared by division so it cannot overflow.
func CheckDimensions(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%dx%d: %w", w, h, ErrInvalidDimensions)
	}
	if w > MaxCells/h {
		return fmt.Errorf("%dx%d exceeds %d cells: %w", w, h, MaxCells, ErrBoardTooLarge)
	}
	return nil
}

// Board stores a 2D grid of cell sentinels in row-major order. All coordinate
// access wraps toroidally, so no access can be out of range.
type Board struct {
	w, h int
	data []Cell
}

// NewBoard allocates an all-dead board with the given dimensions.
func NewBoard(w, h int) (*Board, error) {
	if err := CheckDimensions(w, h); err != nil {
		return nil, fmt.Errorf("new board: %w", err)
	}
	return &Board{w: w, h: h, data: make([]Cell, w*h)}, nil
}

// Mod returns a modulo b in [0, b). The % operator truncates toward zero and
// yields negative remainders for negative a, so those are shifted by b.
func Mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}

// FloorDiv divides rounding toward negative infinity.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Size returns the board dimensions.
func (b *Board) Size() Size { return Size{W: b.w, H: b.h} }

// Wrap applies toroidal wrapping to the provided coordinates.
func (b *Board) Wrap(x, y int) (int, int) {
	return Mod(x, b.w), Mod(y, b.h)
}

// Index returns the linear slice index for coordinates (x, y) after wrapping.
func (b *Board) Index(x, y int) int {
	x, y = b.Wrap(x, y)
	return y*b.w + x
}

// Get returns the sentinel stored at (x, y).
func (b *Board) Get(x, y int) Cell { return b.data[b.Index(x, y)] }

// Set stores c at (x, y). Any non-dead value is stored as Alive.
func (b *Board) Set(x, y int, c Cell) { b.data[b.Index(x, y)] = c.normalize() }

// Toggle flips the cell at (x, y) and returns its new value.
func (b *Board) Toggle(x, y int) Cell {
	i := b.Index(x, y)
	b.data[i] = b.data[i].Flip()
	return b.data[i]
}

// Clear kills every cell.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = Dead
	}
}

// View returns a read-only view of the board.
func (b *Board) View() View { return View{size: b.Size(), cells: b.data} }

func (b *Board) copyFrom(src *Board) { copy(b.data, src.data) }

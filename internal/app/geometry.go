package app

import "torus-life/internal/core"

// onBoard reports whether screen pixel (x, y) lies on the board image. Pixels
// outside it belong to the status strip and do not edit cells.
func onBoard(x, y int, board core.Size) bool {
	return x >= 0 && y >= 0 && x < board.W && y < board.H
}

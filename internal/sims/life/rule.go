package life

import "torus-life/internal/core"

// Grid is read access to a wrapped board.
type Grid interface {
	Get(x, y int) core.Cell
}

// NeighborCount returns how many of the eight cells surrounding (x, y) are
// alive. Each neighbor coordinate wraps independently.
func NeighborCount(g Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.Get(x+dx, y+dy).IsAlive() {
				n++
			}
		}
	}
	return n
}

// NextState applies the B3/S23 rule: a live cell survives with two or three
// neighbors, a dead cell is born with exactly three.
func NextState(cur core.Cell, neighbors int) core.Cell {
	if cur.IsAlive() {
		if neighbors == 2 || neighbors == 3 {
			return core.Alive
		}
		return core.Dead
	}
	if neighbors == 3 {
		return core.Alive
	}
	return core.Dead
}

// Package life implements Conway's Game of Life on a toroidal board.
package life

import "torus-life/internal/core"

// Advance moves g forward one generation and returns how many cells changed.
//
// The next buffer starts as a copy of the current one, so only births and
// deaths are written. Neighbor counts are read from the current buffer only;
// the swap at the end is the single point where the new generation becomes
// visible.
func Advance(g *core.Generations) int {
	g.PrepareNext()
	cur, nxt := g.Current(), g.Next()
	size := cur.Size()
	changed := 0
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			c := cur.Get(x, y)
			next := NextState(c, NeighborCount(cur, x, y))
			if next != c {
				nxt.Set(x, y, next)
				changed++
			}
		}
	}
	g.Swap()
	return changed
}

// Population counts the live cells in v.
func Population(v core.View) int {
	n := 0
	for i := 0; i < v.Len(); i++ {
		if v.At(i).IsAlive() {
			n++
		}
	}
	return n
}

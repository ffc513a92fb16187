package core

import "fmt"

// Generations owns the current and next boards. Only the current board is
// authoritative; the next board is scratch space for a step in progress.
type Generations struct {
	cur *Board
	nxt *Board
}

// NewGenerations allocates both all-dead buffers sized from cfg.
func NewGenerations(cfg SimulationConfig) (*Generations, error) {
	cur, err := NewBoard(cfg.Width(), cfg.Height())
	if err != nil {
		return nil, fmt.Errorf("current generation: %w", err)
	}
	nxt, err := NewBoard(cfg.Width(), cfg.Height())
	if err != nil {
		return nil, fmt.Errorf("next generation: %w", err)
	}
	return &Generations{cur: cur, nxt: nxt}, nil
}

// Size returns the shared board dimensions.
func (g *Generations) Size() Size { return g.cur.Size() }

// Current returns the authoritative board.
func (g *Generations) Current() *Board { return g.cur }

// Next returns the scratch board.
func (g *Generations) Next() *Board { return g.nxt }

// PrepareNext seeds the scratch board with a copy of the current one.
func (g *Generations) PrepareNext() { g.nxt.copyFrom(g.cur) }

// Swap exchanges the roles of the two boards without copying cells.
func (g *Generations) Swap() { g.cur, g.nxt = g.nxt, g.cur }

// Get reads (x, y) from the current board.
func (g *Generations) Get(x, y int) Cell { return g.cur.Get(x, y) }

// Set writes (x, y) on the current board.
func (g *Generations) Set(x, y int, c Cell) { g.cur.Set(x, y, c) }

// Toggle flips (x, y) on the current board.
func (g *Generations) Toggle(x, y int) Cell { return g.cur.Toggle(x, y) }

// View returns a read-only view of the current board.
func (g *Generations) View() View { return g.cur.View() }

package core

import "math/rand/v2"

// RNG fills boards with reproducible noise for the Randomize command.
type RNG struct {
	src *rand.Rand
}

// NewRNG seeds a PCG source; equal seeds give equal fills.
func NewRNG(seed int64) *RNG {
	return &RNG{src: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Fill sets every cell of b alive or dead with equal probability. One 64-bit
// draw covers 64 cells.
func (r *RNG) Fill(b *Board) {
	var bits uint64
	for i := range b.data {
		if i%64 == 0 {
			bits = r.src.Uint64()
		}
		b.data[i] = Dead
		if bits&1 == 1 {
			b.data[i] = Alive
		}
		bits >>= 1
	}
}

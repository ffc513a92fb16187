package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
)

func newGenerations(t *testing.T, w, h int) *core.Generations {
	t.Helper()
	cfg, err := core.NewSimulationConfig(w, h, 0, 1)
	require.NoError(t, err)
	g, err := core.NewGenerations(cfg)
	require.NoError(t, err)
	return g
}

func seed(g *core.Generations, cells ...[2]int) {
	for _, c := range cells {
		g.Set(c[0], c[1], core.Alive)
	}
}

func requireAlive(t *testing.T, g *core.Generations, want map[[2]int]bool) {
	t.Helper()
	size := g.Size()
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			alive := g.Get(x, y).IsAlive()
			require.Equal(t, want[[2]int{x, y}], alive, "cell (%d,%d)", x, y)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	g := newGenerations(t, 5, 5)
	seed(g, [2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})

	Advance(g)
	requireAlive(t, g, map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	})

	Advance(g)
	requireAlive(t, g, map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	})
}

func TestBlockIsStillLife(t *testing.T) {
	for _, dims := range [][2]int{{4, 4}, {6, 5}, {10, 10}} {
		g := newGenerations(t, dims[0], dims[1])
		seed(g, [2]int{1, 1}, [2]int{2, 1}, [2]int{1, 2}, [2]int{2, 2})
		want := map[[2]int]bool{{1, 1}: true, {2, 1}: true, {1, 2}: true, {2, 2}: true}

		for i := 0; i < 3; i++ {
			require.Zero(t, Advance(g), "block on %v changed", dims)
			requireAlive(t, g, want)
		}
	}
}

func TestDeadBoardIsFixedPoint(t *testing.T) {
	g := newGenerations(t, 7, 9)
	for i := 0; i < 10; i++ {
		require.Zero(t, Advance(g))
	}
	require.Zero(t, Population(g.View()))
}

func TestLoneCellDies(t *testing.T) {
	g := newGenerations(t, 5, 5)
	seed(g, [2]int{2, 2})
	require.Equal(t, 1, Advance(g))
	require.Zero(t, Population(g.View()))
}

func TestBlinkerAcrossWrapEdge(t *testing.T) {
	g := newGenerations(t, 6, 6)
	// Vertical blinker straddling the top/bottom seam.
	seed(g, [2]int{0, 5}, [2]int{0, 0}, [2]int{0, 1})

	Advance(g)
	requireAlive(t, g, map[[2]int]bool{
		{5, 0}: true,
		{0, 0}: true,
		{1, 0}: true,
	})

	Advance(g)
	requireAlive(t, g, map[[2]int]bool{
		{0, 5}: true,
		{0, 0}: true,
		{0, 1}: true,
	})
}

func TestGliderReturnsAfterCrossingTorus(t *testing.T) {
	const n = 8
	g := newGenerations(t, n, n)
	glider := [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}
	seed(g, glider...)
	before := g.View().AppendARGB(nil)

	// A glider moves one cell diagonally every four generations.
	for i := 0; i < 4*n; i++ {
		Advance(g)
		require.Equal(t, 5, Population(g.View()), "generation %d", i+1)
	}
	require.Equal(t, before, g.View().AppendARGB(nil))
}

func TestAdvanceIsOrderIndependent(t *testing.T) {
	// Every cell reads the previous generation, whatever the scan order.
	g := newGenerations(t, 3, 3)
	seed(g, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
	Advance(g)
	// Each cell on a 3x3 torus with one full row alive sees 3 neighbors
	// (off-row cells) or 2 (on-row cells), so the whole board comes alive.
	require.Equal(t, 9, Population(g.View()))
}

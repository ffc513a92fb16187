package life

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
)

func TestNextStateTable(t *testing.T) {
	for n := 0; n <= 8; n++ {
		wantAlive := n == 2 || n == 3
		require.Equal(t, wantAlive, NextState(core.Alive, n).IsAlive(), "alive with %d neighbors", n)

		wantBorn := n == 3
		require.Equal(t, wantBorn, NextState(core.Dead, n).IsAlive(), "dead with %d neighbors", n)
	}
}

func TestNextStateReturnsSentinels(t *testing.T) {
	for n := 0; n <= 8; n++ {
		for _, c := range []core.Cell{core.Dead, core.Alive} {
			got := NextState(c, n)
			require.True(t, got == core.Dead || got == core.Alive)
		}
	}
}

func TestNeighborCount(t *testing.T) {
	b, err := core.NewBoard(5, 5)
	require.NoError(t, err)

	b.Set(1, 1, core.Alive)
	b.Set(1, 2, core.Alive)
	b.Set(2, 1, core.Alive)

	require.Equal(t, 3, NeighborCount(b, 2, 2))
	require.Equal(t, 1, NeighborCount(b, 0, 0))
	require.Equal(t, 2, NeighborCount(b, 1, 1), "the cell itself is not counted")
}

func TestNeighborCountWrapsCorners(t *testing.T) {
	b, err := core.NewBoard(4, 4)
	require.NoError(t, err)
	b.Set(3, 3, core.Alive)
	b.Set(3, 0, core.Alive)
	b.Set(0, 3, core.Alive)

	require.Equal(t, 3, NeighborCount(b, 0, 0))
}

func TestNeighborCountBounds(t *testing.T) {
	b, err := core.NewBoard(3, 3)
	require.NoError(t, err)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			b.Set(x, y, core.Alive)
		}
	}
	// On a 3x3 torus the eight neighbors are exactly the other eight cells.
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			n := NeighborCount(b, x, y)
			require.Equal(t, 8, n)
		}
	}

	b.Clear()
	require.Zero(t, NeighborCount(b, 1, 1))
}

func TestNeighborCountRotationSymmetry(t *testing.T) {
	const w, h = 7, 7
	b, err := core.NewBoard(w, h)
	require.NoError(t, err)
	// 180-degree rotationally symmetric pattern about (3, 3).
	pattern := [][2]int{{2, 3}, {3, 3}, {4, 3}, {1, 1}, {5, 5}, {2, 5}, {4, 1}}
	for _, p := range pattern {
		b.Set(p[0], p[1], core.Alive)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := NeighborCount(b, x, y)
			require.GreaterOrEqual(t, n, 0)
			require.LessOrEqual(t, n, 8)
			require.Equal(t, n, NeighborCount(b, w-1-x, h-1-y), "(%d,%d)", x, y)
		}
	}
}

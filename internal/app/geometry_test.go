package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"torus-life/internal/core"
)

func TestOnBoard(t *testing.T) {
	board := core.Size{W: 100, H: 60}
	tests := []struct {
		x, y int
		want bool
	}{
		{0, 0, true},
		{99, 59, true},
		{100, 10, false},
		{10, 60, false},
		{10, 70, false},
		{-1, 5, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, onBoard(tt.x, tt.y, board), "(%d,%d)", tt.x, tt.y)
	}
}

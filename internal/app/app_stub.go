//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"torus-life/internal/control"
)

// ErrNoGUI is returned by Run in builds without the ebiten tag.
var ErrNoGUI = errors.New("the GUI requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New returns a placeholder game in the headless build.
func New(*control.Controller, bool, *slog.Logger) *Game { return &Game{} }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrNoGUI }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }

// Run always fails in the headless build.
func Run(*Game, string, int) error { return ErrNoGUI }

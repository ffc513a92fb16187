//go:build !ebiten

package ui

import "torus-life/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Size, int) *Overlay { return &Overlay{} }

// Update never changes anything in headless builds.
func (o *Overlay) Update() bool { return false }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}

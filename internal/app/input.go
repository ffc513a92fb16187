//go:build ebiten

package app

import (
	"torus-life/internal/control"
	"torus-life/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyBindings = []struct {
	keys []ebiten.Key
	cmd  control.Key
}{
	{[]ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, control.KeyQuit},
	{[]ebiten.Key{ebiten.KeySpace}, control.KeyToggleRun},
	{[]ebiten.Key{ebiten.KeyN}, control.KeyStepOnce},
	{[]ebiten.Key{ebiten.KeyC}, control.KeyClear},
	{[]ebiten.Key{ebiten.KeyR}, control.KeyRandomize},
}

// inputDecoder turns polled ebiten input into controller events. A drag
// event is emitted only when the pointer enters a different cell, so a held
// button over one cell does not flicker it. Presses and drags over the
// status strip are dropped.
type inputDecoder struct {
	scale    int
	board    core.Size
	lastCell [2]int
}

func newInputDecoder(cfg core.SimulationConfig) *inputDecoder {
	return &inputDecoder{scale: cfg.Scale(), board: cfg.PixelSize()}
}

func (d *inputDecoder) poll() []control.Event {
	var evs []control.Event
	if ebiten.IsWindowBeingClosed() {
		evs = append(evs, control.WindowClose())
	}
	for _, b := range keyBindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				evs = append(evs, control.KeyPress(b.cmd))
				break
			}
		}
	}

	x, y := ebiten.CursorPosition()
	inside := onBoard(x, y, d.board)
	cell := [2]int{core.FloorDiv(x, d.scale), core.FloorDiv(y, d.scale)}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if inside {
			evs = append(evs, control.PointerDown(x, y))
		}
		d.lastCell = cell
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		if inside && cell != d.lastCell {
			evs = append(evs, control.PointerDrag(x, y))
			d.lastCell = cell
		}
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		evs = append(evs, control.PointerUp())
	}
	return evs
}

//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"log/slog"

	"torus-life/internal/control"
	"torus-life/internal/core"
	"torus-life/internal/logging"
	"torus-life/internal/render"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game adapts a controller to the ebiten.Game interface. Ebiten calls Update
// at a fixed tick rate; the controller's step delay is honored by a pacer
// rather than by sleeping inside Update.
type Game struct {
	ctrl    *control.Controller
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.Pacer
	input   *inputDecoder
	logger  *slog.Logger

	scale   int
	repaint bool
}

// New constructs a Game for the provided controller. A nil logger discards.
func New(ctrl *control.Controller, showHUD bool, logger *slog.Logger) *Game {
	cfg := ctrl.Config()
	g := &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(cfg.Size()),
		overlay: ui.NewOverlay(cfg.Size(), cfg.Scale()),
		pacer:   core.NewPacer(),
		input:   newInputDecoder(cfg),
		logger:  logging.OrDiscard(logger),
		scale:   cfg.Scale(),
	}
	if showHUD {
		g.hud = ui.NewHUD()
	}
	return g
}

// Update forwards input to the controller and advances the simulation when
// running and the step delay has elapsed.
func (g *Game) Update() error {
	for _, ev := range g.input.poll() {
		g.ctrl.Handle(ev)
	}
	if g.ctrl.Done() {
		g.logger.Info("simulation stopped", "generation", g.ctrl.Generation(), "population", g.ctrl.Population())
		return ebiten.Termination
	}
	if g.overlay.Update() {
		g.repaint = true
	}

	if g.ctrl.State() != control.Running {
		g.pacer.Reset()
		return nil
	}
	if !g.pacer.Ready() {
		return nil
	}
	if frame := g.ctrl.Tick(); frame.Stepped {
		g.pacer.Hold(frame.Delay)
	}
	return nil
}

// Draw presents the board when a redraw is owed. The screen is not cleared
// between frames, so skipping a draw keeps the previous image.
func (g *Game) Draw(screen *ebiten.Image) {
	owed := g.ctrl.TakeRedraw()
	if !owed && !g.repaint {
		return
	}
	g.repaint = false
	screen.Fill(color.Black)
	g.painter.Blit(screen, g.ctrl.View(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.ctrl.Config().PixelSize().H, ui.Status{
		State:      g.ctrl.State().String(),
		Generation: g.ctrl.Generation(),
		Population: g.ctrl.Population(),
	})
}

// Layout returns the logical screen size: the board plus the status strip
// when the HUD is shown.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.screenSize()
	return s.W, s.H
}

func (g *Game) screenSize() core.Size {
	return ui.ScreenSize(g.ctrl.Config().PixelSize(), g.hud != nil)
}

// Run opens the window and blocks until the controller quits.
func Run(g *Game, title string, tps int) error {
	size := g.screenSize()
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetTPS(tps)
	ebiten.SetScreenClearedEveryFrame(false)
	ebiten.SetWindowClosingHandled(true)

	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Package control turns decoded input events into board edits and run/pause
// transitions, and tells the host loop when to step and when to redraw.
package control

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"torus-life/internal/core"
	"torus-life/internal/logging"
	"torus-life/internal/sims/life"
)

// State is the run state of the controller.
type State int

const (
	// Paused is the initial, editable state. No generations are computed.
	Paused State = iota
	// Running advances one generation per host frame.
	Running
)

func (s State) String() string {
	switch s {
	case Paused:
		return "paused"
	case Running:
		return "running"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Frame reports what a Tick did.
type Frame struct {
	// Stepped is true when a generation was computed.
	Stepped bool
	// Delay is the pause the host should observe before the next step.
	Delay time.Duration
	// Changed is the number of cells that flipped in the step.
	Changed int
}

// Controller owns the generation pair and the engine state. It is not safe
// for concurrent use; the host loop drives it from a single goroutine.
type Controller struct {
	cfg    core.SimulationConfig
	gens   *core.Generations
	rng    *core.RNG
	logger *slog.Logger

	state      State
	redraw     bool
	quit       bool
	generation uint64
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger for state transitions.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithSeed sets the seed used by the Randomize command.
func WithSeed(seed int64) Option {
	return func(c *Controller) { c.rng = core.NewRNG(seed) }
}

// New allocates an all-dead board pair sized from cfg. The controller starts
// Paused with a redraw owed so the host presents the empty board.
func New(cfg core.SimulationConfig, opts ...Option) (*Controller, error) {
	gens, err := core.NewGenerations(cfg)
	if err != nil {
		return nil, fmt.Errorf("controller: %w", err)
	}
	c := &Controller{
		cfg:    cfg,
		gens:   gens,
		state:  Paused,
		redraw: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.rng == nil {
		c.rng = core.NewRNG(time.Now().UnixNano())
	}
	c.logger = logging.OrDiscard(c.logger)
	return c, nil
}

// Handle applies a single event. Events after quit, and unknown kinds, are
// ignored.
func (c *Controller) Handle(ev Event) {
	if c.quit {
		return
	}
	switch ev.Kind {
	case EventPointerDown, EventPointerDrag:
		c.toggleCell(ev.X, ev.Y)
	case EventWindowClose:
		c.stop(ev.Kind.String())
	case EventKeyPress:
		c.handleKey(ev.Key)
	}
}

func (c *Controller) handleKey(k Key) {
	switch k {
	case KeyQuit:
		c.stop(k.String())
	case KeyToggleRun:
		c.toggleRun()
	case KeyStepOnce:
		if c.state == Paused {
			c.step()
		}
	case KeyClear:
		c.gens.Current().Clear()
		c.redraw = true
		c.logger.Debug("board cleared", "generation", c.generation)
	case KeyRandomize:
		c.rng.Fill(c.gens.Current())
		c.redraw = true
		c.logger.Debug("board randomized", "population", c.Population())
	}
}

// toggleCell maps a display pixel to its cell and flips it. Pixels outside
// the canvas wrap onto the board like any other coordinate.
func (c *Controller) toggleCell(px, py int) {
	scale := c.cfg.Scale()
	x, y := core.FloorDiv(px, scale), core.FloorDiv(py, scale)
	v := c.gens.Toggle(x, y)
	c.redraw = true
	c.logger.Log(context.Background(), logging.LevelTrace, "cell toggled", "x", x, "y", y, "alive", v.IsAlive())
}

func (c *Controller) toggleRun() {
	if c.state == Paused {
		c.state = Running
	} else {
		c.state = Paused
		c.redraw = true
	}
	c.logger.Debug("state changed", "state", c.state, "generation", c.generation)
}

func (c *Controller) stop(reason string) {
	c.quit = true
	c.logger.Debug("quit requested", "reason", reason, "generation", c.generation)
}

func (c *Controller) step() int {
	changed := life.Advance(c.gens)
	c.generation++
	c.redraw = true
	c.logger.Log(context.Background(), logging.LevelTrace, "generation advanced", "generation", c.generation, "changed", changed)
	return changed
}

// Tick performs the per-frame work. While Running it advances one generation,
// marks a redraw owed and asks the host to pause for the configured delay.
// Otherwise it does nothing.
func (c *Controller) Tick() Frame {
	if c.quit || c.state != Running {
		return Frame{}
	}
	changed := c.step()
	return Frame{Stepped: true, Delay: c.cfg.StepDelay(), Changed: changed}
}

// TakeRedraw reports whether a redraw is owed and clears the flag.
func (c *Controller) TakeRedraw() bool {
	owed := c.redraw
	c.redraw = false
	return owed
}

// RedrawOwed reports whether the displayed board is stale.
func (c *Controller) RedrawOwed() bool { return c.redraw }

// State returns the current run state.
func (c *Controller) State() State { return c.state }

// Done reports whether quit was requested.
func (c *Controller) Done() bool { return c.quit }

// Generation returns the number of generations computed so far.
func (c *Controller) Generation() uint64 { return c.generation }

// Population returns the number of live cells on the current board.
func (c *Controller) Population() int { return life.Population(c.gens.View()) }

// View returns a read-only view of the current board for presentation.
func (c *Controller) View() core.View { return c.gens.View() }

// Config returns the simulation parameters.
func (c *Controller) Config() core.SimulationConfig { return c.cfg }

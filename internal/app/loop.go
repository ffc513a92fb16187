package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"torus-life/internal/control"
	"torus-life/internal/core"
	"torus-life/internal/logging"
)

// EventSource supplies decoded input events to the host loop.
type EventSource interface {
	// Wait blocks until an event is available or ctx is done.
	Wait(ctx context.Context) (control.Event, error)
	// Poll returns a pending event without blocking.
	Poll() (control.Event, bool)
}

// Display presents a board. The view is only valid for the duration of the
// call.
type Display interface {
	Present(v core.View) error
}

// Loop is a single-goroutine host: it blocks for events while paused, drains
// pending events while running, presents owed redraws and honors the step
// delay requested by the controller.
type Loop struct {
	ctrl    *control.Controller
	events  EventSource
	display Display
	sleep   func(context.Context, time.Duration) error
	logger  *slog.Logger
	limit   uint64
}

// LoopOption configures a Loop.
type LoopOption func(*Loop)

// WithLoopLogger sets the loop logger.
func WithLoopLogger(l *slog.Logger) LoopOption {
	return func(lp *Loop) { lp.logger = l }
}

// WithSleeper replaces the delay function, mostly for tests.
func WithSleeper(fn func(context.Context, time.Duration) error) LoopOption {
	return func(lp *Loop) { lp.sleep = fn }
}

// WithGenerationLimit quits once the controller has computed n generations.
func WithGenerationLimit(n uint64) LoopOption {
	return func(lp *Loop) { lp.limit = n }
}

// NewLoop wires a controller to an event source and a display.
func NewLoop(ctrl *control.Controller, events EventSource, display Display, opts ...LoopOption) *Loop {
	l := &Loop{ctrl: ctrl, events: events, display: display, sleep: sleepContext}
	for _, opt := range opts {
		opt(l)
	}
	l.logger = logging.OrDiscard(l.logger)
	return l
}

// Run drives the controller until it quits or ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for !l.ctrl.Done() {
		if l.ctrl.TakeRedraw() {
			if err := l.display.Present(l.ctrl.View()); err != nil {
				return fmt.Errorf("present generation %d: %w", l.ctrl.Generation(), err)
			}
		}

		if l.ctrl.State() == control.Paused {
			ev, err := l.events.Wait(ctx)
			if err != nil {
				return err
			}
			l.ctrl.Handle(ev)
		} else {
			for {
				ev, ok := l.events.Poll()
				if !ok {
					break
				}
				l.ctrl.Handle(ev)
			}
		}

		frame := l.ctrl.Tick()
		if !frame.Stepped {
			continue
		}
		if l.limit > 0 && l.ctrl.Generation() >= l.limit {
			l.logger.Debug("generation limit reached", "generation", l.ctrl.Generation())
			l.ctrl.Handle(control.KeyPress(control.KeyQuit))
			break
		}
		if err := l.sleep(ctx, frame.Delay); err != nil {
			return err
		}
	}
	l.logger.Info("simulation stopped", "generation", l.ctrl.Generation(), "population", l.ctrl.Population())
	return nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// ScriptSource replays a fixed list of events. Once exhausted, Wait reports a
// quit so a paused loop terminates, and Poll reports nothing.
type ScriptSource struct {
	events []control.Event
}

// NewScriptSource returns a source replaying events in order.
func NewScriptSource(events ...control.Event) *ScriptSource {
	return &ScriptSource{events: events}
}

// Wait returns the next scripted event, or a quit key once the script ends.
func (s *ScriptSource) Wait(ctx context.Context) (control.Event, error) {
	if err := ctx.Err(); err != nil {
		return control.Event{}, err
	}
	if ev, ok := s.Poll(); ok {
		return ev, nil
	}
	return control.KeyPress(control.KeyQuit), nil
}

// Poll returns the next scripted event, if any.
func (s *ScriptSource) Poll() (control.Event, bool) {
	if len(s.events) == 0 {
		return control.Event{}, false
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev, true
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"torus-life/internal/app"
	"torus-life/internal/control"
	"torus-life/internal/render"
)

func newHeadlessCmd() *cobra.Command {
	var (
		cells       []string
		generations uint64
		randomize   bool
		printFrames bool
	)

	cmd := &cobra.Command{
		Use:   "headless",
		Short: "Run without a window and print the final board",
		Long: `Seed the board with --cell x,y (repeatable) or --randomize, run the given
number of generations at the configured step delay, then print the board
('#' alive, '.' dead) and its population.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			ctrl, err := s.newController(cmd)
			if err != nil {
				return err
			}

			scale := s.sim.Scale()
			var events []control.Event
			if randomize {
				events = append(events, control.KeyPress(control.KeyRandomize))
			}
			for _, raw := range cells {
				x, y, err := parseCell(raw)
				if err != nil {
					return err
				}
				events = append(events, control.PointerDown(x*scale, y*scale), control.PointerUp())
			}
			var opts []app.LoopOption
			opts = append(opts, app.WithLoopLogger(s.logger))
			if generations > 0 {
				events = append(events, control.KeyPress(control.KeyToggleRun))
				opts = append(opts, app.WithGenerationLimit(generations))
			}

			var display app.Display = render.Discard{}
			if printFrames {
				display = render.NewTextDisplay(cmd.OutOrStdout())
			}

			loop := app.NewLoop(ctrl, app.NewScriptSource(events...), display, opts...)
			if err := loop.Run(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := render.WriteText(out, ctrl.View()); err != nil {
				return err
			}
			_, err = fmt.Fprintf(out, "generation %d population %d\n", ctrl.Generation(), ctrl.Population())
			return err
		},
	}

	cmd.Flags().StringArrayVar(&cells, "cell", nil, "cell to bring alive as x,y (repeatable)")
	cmd.Flags().Uint64Var(&generations, "generations", 10, "generations to run before stopping")
	cmd.Flags().BoolVar(&randomize, "randomize", false, "fill the board randomly before running")
	cmd.Flags().BoolVar(&printFrames, "print-frames", false, "print every presented frame")
	return cmd
}

// parseCell parses "x,y" grid coordinates. Out-of-range values wrap.
func parseCell(s string) (int, int, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("invalid cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return x, y, nil
}
